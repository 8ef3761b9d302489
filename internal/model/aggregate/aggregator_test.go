package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-analyzer/internal/entity/expense"
)

func classified(day time.Time, amount string, desc string, cat expense.Category) expense.Record {
	am, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	return expense.Record{Date: day, Amount: am, Description: desc, Category: cat}
}

func Test_OnBuild_ShouldReconcileAllTotals(t *testing.T) {
	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)

	sum := Build([]expense.Record{
		classified(jan, "100.50", "rent", expense.Essential),
		classified(jan, "19.99", "coffee", expense.NonEssential),
		classified(feb, "42.01", "cinema", expense.NonEssential),
	}, BucketMonth)

	total := decimal.RequireFromString("162.50")
	require.True(t, total.Equal(sum.Total))

	byCategory := sum.TotalByCategory[expense.Essential].
		Add(sum.TotalByCategory[expense.NonEssential])
	assert.True(t, total.Equal(byCategory))

	byPeriod := decimal.Zero
	for _, p := range sum.Periods() {
		byPeriod = byPeriod.Add(sum.TotalByPeriod[p])
	}
	assert.True(t, total.Equal(byPeriod))

	byMerchant := decimal.Zero
	for _, m := range sum.TopMerchants(0) {
		byMerchant = byMerchant.Add(m.Amount)
	}
	assert.True(t, total.Equal(byMerchant))
}

func Test_OnBuild_ShouldSumSmallAmountsExactly(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	recs := make([]expense.Record, 0, 10)
	for i := 0; i < 10; i++ {
		recs = append(recs, classified(day, "0.10", "coffee", expense.NonEssential))
	}

	sum := Build(recs, BucketMonth)

	assert.True(t, decimal.NewFromInt(1).Equal(sum.Total))
	assert.Equal(t, "1.00", sum.Total.StringFixed(2))
}

func Test_OnBuild_ShouldBucketByCalendarMonth(t *testing.T) {
	sum := Build([]expense.Record{
		classified(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "10", "a", expense.Essential),
		classified(time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC), "10", "b", expense.Essential),
		classified(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "10", "c", expense.Essential),
	}, BucketMonth)

	assert.Equal(t, []string{"2024-01", "2024-02"}, sum.Periods())
	assert.True(t, decimal.NewFromInt(20).Equal(sum.TotalByPeriod["2024-01"]))
	assert.True(t, decimal.NewFromInt(10).Equal(sum.TotalByPeriod["2024-02"]))
}

func Test_OnBuild_ShouldBucketByCalendarWeek(t *testing.T) {
	wed := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	sat := time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)
	sun := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)

	sum := Build([]expense.Record{
		classified(wed, "10", "a", expense.Essential),
		classified(sat, "10", "b", expense.Essential),
		classified(sun, "10", "c", expense.Essential),
	}, BucketWeek)

	assert.Equal(t, []string{"2024-01-07", "2024-01-14"}, sum.Periods())
	assert.True(t, decimal.NewFromInt(20).Equal(sum.TotalByPeriod["2024-01-07"]))
	assert.True(t, decimal.NewFromInt(10).Equal(sum.TotalByPeriod["2024-01-14"]))
}

func Test_OnBuild_ShouldBucketByCalendarYear(t *testing.T) {
	sum := Build([]expense.Record{
		classified(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), "10", "a", expense.Essential),
		classified(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "10", "b", expense.Essential),
	}, BucketYear)

	assert.Equal(t, []string{"2023", "2024"}, sum.Periods())
}

func Test_OnParseBucket_ShouldFallBackToMonth(t *testing.T) {
	assert.Equal(t, BucketWeek, ParseBucket("week"))
	assert.Equal(t, BucketYear, ParseBucket("year"))
	assert.Equal(t, BucketMonth, ParseBucket("month"))
	assert.Equal(t, BucketMonth, ParseBucket(""))
	assert.Equal(t, BucketMonth, ParseBucket("quarter"))
}

func Test_OnBuild_ShouldReturnZeroSummaryForEmptyInput(t *testing.T) {
	sum := Build(nil, BucketMonth)

	assert.True(t, sum.Empty())
	assert.True(t, sum.Total.IsZero())
	assert.Empty(t, sum.TotalByCategory)
	assert.Empty(t, sum.TotalByPeriod)
	assert.Empty(t, sum.TotalByMerchant)
}

func Test_OnTopMerchants_ShouldOrderByAmountDescending(t *testing.T) {
	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	sum := Build([]expense.Record{
		classified(day, "10", "coffee", expense.NonEssential),
		classified(day, "500", "rent", expense.Essential),
		classified(day, "60", "grocery", expense.Essential),
	}, BucketMonth)

	top := sum.TopMerchants(2)

	assert.Len(t, top, 2)
	assert.Equal(t, "rent", top[0].Merchant)
	assert.Equal(t, "grocery", top[1].Merchant)
}
