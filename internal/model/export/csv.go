package export

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"max.ks1230/expense-analyzer/internal/entity/expense"
	"max.ks1230/expense-analyzer/internal/entity/summary"
)

const (
	categoryFile = "category_summary.csv"
	monthlyFile  = "monthly_summary.csv"
	merchantFile = "merchant_summary.csv"
)

// WriteSummary saves the derived summaries as CSV files under dir.
func WriteSummary(dir string, s *summary.Summary) error {
	if err := writeFile(filepath.Join(dir, categoryFile), func(w *csv.Writer) error {
		return WriteCategories(w, s)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, monthlyFile), func(w *csv.Writer) error {
		return WritePeriods(w, s)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, merchantFile), func(w *csv.Writer) error {
		return WriteMerchants(w, s, 0)
	})
}

func WriteCategories(w *csv.Writer, s *summary.Summary) error {
	if err := w.Write([]string{"CATEGORY", "TOTAL"}); err != nil {
		return errors.Wrap(err, "category summary")
	}
	for _, cat := range expense.Categories {
		total, ok := s.TotalByCategory[cat]
		if !ok {
			continue
		}
		if err := w.Write([]string{string(cat), total.StringFixed(2)}); err != nil {
			return errors.Wrap(err, "category summary")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "category summary")
}

func WritePeriods(w *csv.Writer, s *summary.Summary) error {
	if err := w.Write([]string{"MONTH", "TOTAL"}); err != nil {
		return errors.Wrap(err, "monthly summary")
	}
	for _, p := range s.Periods() {
		if err := w.Write([]string{p, s.TotalByPeriod[p].StringFixed(2)}); err != nil {
			return errors.Wrap(err, "monthly summary")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "monthly summary")
}

func WriteMerchants(w *csv.Writer, s *summary.Summary, top int) error {
	if err := w.Write([]string{"MERCHANT", "TOTAL"}); err != nil {
		return errors.Wrap(err, "merchant summary")
	}
	for _, m := range s.TopMerchants(top) {
		if err := w.Write([]string{m.Merchant, m.Amount.StringFixed(2)}); err != nil {
			return errors.Wrap(err, "merchant summary")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "merchant summary")
}

func writeFile(path string, write func(w *csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating summary file")
	}
	defer closeQuietly(f)

	return write(csv.NewWriter(f))
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
