package summary

import (
	"sort"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-analyzer/internal/entity/expense"
)

// Summary is the derived view of one analyzed expense set. It holds no
// identity of its own and is recomputed whenever the expense set changes.
type Summary struct {
	TotalByCategory map[expense.Category]decimal.Decimal `json:"totalByCategory"`
	TotalByPeriod   map[string]decimal.Decimal           `json:"totalByPeriod"`
	TotalByMerchant map[string]decimal.Decimal           `json:"totalByMerchant"`
	Total           decimal.Decimal                      `json:"total"`
	// Income is the statement's deposit total. It is carried alongside
	// the expense totals for the income advice rules and the charts.
	Income decimal.Decimal `json:"income"`
	Count  int             `json:"count"`
}

func New() *Summary {
	return &Summary{
		TotalByCategory: make(map[expense.Category]decimal.Decimal),
		TotalByPeriod:   make(map[string]decimal.Decimal),
		TotalByMerchant: make(map[string]decimal.Decimal),
		Total:           decimal.Zero,
		Income:          decimal.Zero,
	}
}

func (s *Summary) Empty() bool {
	return s == nil || s.Count == 0
}

type MerchantTotal struct {
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
}

// TopMerchants returns merchant totals in descending amount order,
// at most n entries (all of them when n <= 0).
func (s *Summary) TopMerchants(n int) []MerchantTotal {
	res := make([]MerchantTotal, 0, len(s.TotalByMerchant))
	for m, am := range s.TotalByMerchant {
		res = append(res, MerchantTotal{Merchant: m, Amount: am})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Amount.Equal(res[j].Amount) {
			return res[i].Merchant < res[j].Merchant
		}
		return res[i].Amount.GreaterThan(res[j].Amount)
	})
	if n > 0 && len(res) > n {
		res = res[:n]
	}
	return res
}

// Periods returns the period labels in ascending order. Labels are
// fixed-width date prefixes, so lexicographic order is chronological
// order.
func (s *Summary) Periods() []string {
	res := make([]string, 0, len(s.TotalByPeriod))
	for p := range s.TotalByPeriod {
		res = append(res, p)
	}
	sort.Strings(res)
	return res
}
