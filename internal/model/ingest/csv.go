package ingest

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/expense-analyzer/internal/entity/expense"
	"max.ks1230/expense-analyzer/internal/logger"
)

var dateLayouts = []string{"2006-01-02", "02.01.2006", "01/02/2006"}

// Statement column names. TRANSACTION_DETAILS and WITHDRAWAL_AMT come
// from bank exports, DESCRIPTION and AMOUNT from plain expense files.
const (
	colDate        = "DATE"
	colDetails     = "TRANSACTION_DETAILS"
	colDescription = "DESCRIPTION"
	colWithdrawal  = "WITHDRAWAL_AMT"
	colAmount      = "AMOUNT"
	colDeposit     = "DEPOSIT_AMT"
	colCategory    = "CATEGORY"
)

// Result is the outcome of one import. Malformed rows are skipped with
// a warning and counted, never fatal. Income is the deposit total of the
// statement; deposits are not expenses but feed the income advice rules.
type Result struct {
	Records []expense.Record
	Skipped int
	Income  decimal.Decimal
}

// ReadCSV imports a tabular expense statement. The first row is a
// header; column order is free. Deposit-only rows are not expenses and
// are dropped silently.
func ReadCSV(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return Result{Records: []expense.Record{}}, nil
	}
	if err != nil {
		return Result{}, errors.Wrap(err, "reading header row")
	}

	cols := mapHeader(header)
	if err = checkColumns(cols); err != nil {
		return Result{}, err
	}

	res := Result{Records: make([]expense.Record, 0), Income: decimal.Zero}
	line := 1
	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("skipping unreadable row", zap.Int("line", line), zap.Error(err))
			res.Skipped++
			continue
		}

		rec, deposit, err := parseRow(row, cols)
		if err != nil {
			logger.Warn("skipping malformed expense", zap.Int("line", line), zap.Error(err))
			res.Skipped++
			continue
		}
		res.Income = res.Income.Add(deposit)
		if rec == nil {
			continue
		}
		res.Records = append(res.Records, *rec)
	}
	return res, nil
}

type columns struct {
	date        int
	description int
	amount      int
	deposit     int
	category    int
}

func mapHeader(header []string) columns {
	cols := columns{date: -1, description: -1, amount: -1, deposit: -1, category: -1}
	for i, name := range header {
		normalized := strings.ToUpper(strings.TrimSpace(name))
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.ReplaceAll(normalized, " ", "_")
		switch normalized {
		case colDate:
			cols.date = i
		case colDetails, colDescription:
			cols.description = i
		case colWithdrawal, colAmount:
			cols.amount = i
		case colDeposit:
			cols.deposit = i
		case colCategory:
			cols.category = i
		}
	}
	return cols
}

func checkColumns(cols columns) error {
	if cols.date < 0 {
		return errors.New("missing required column: DATE")
	}
	if cols.description < 0 {
		return errors.New("missing required column: DESCRIPTION or TRANSACTION_DETAILS")
	}
	if cols.amount < 0 {
		return errors.New("missing required column: AMOUNT or WITHDRAWAL_AMT")
	}
	return nil
}

// parseRow turns a statement row into an expense record, a deposit
// amount, or both zero for rows that carry neither. A nil record means
// the row is not an expense.
func parseRow(row []string, cols columns) (*expense.Record, decimal.Decimal, error) {
	get := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	deposit := decimal.Zero
	if rawDeposit := get(cols.deposit); rawDeposit != "" {
		var err error
		deposit, err = decimal.NewFromString(rawDeposit)
		if err != nil {
			return nil, decimal.Zero, errors.Wrapf(err, "deposit %q", rawDeposit)
		}
	}

	rawAmount := get(cols.amount)
	if rawAmount == "" && deposit.IsPositive() {
		return nil, deposit, nil
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return nil, decimal.Zero, errors.Wrapf(err, "amount %q", rawAmount)
	}
	if amount.IsNegative() {
		return nil, decimal.Zero, errors.Errorf("negative amount %s", amount)
	}
	if amount.IsZero() {
		return nil, deposit, nil
	}

	date, err := parseDate(get(cols.date))
	if err != nil {
		return nil, decimal.Zero, err
	}

	desc := get(cols.description)
	cat, _ := expense.ParseCategory(get(cols.category))

	return &expense.Record{
		Date:        date,
		Amount:      amount,
		Description: desc,
		Category:    cat,
	}, deposit, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unparsable date %q", raw)
}
