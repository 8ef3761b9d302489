package aggregate

import (
	"time"

	"github.com/jinzhu/now"
	"max.ks1230/expense-analyzer/internal/entity/expense"
	"max.ks1230/expense-analyzer/internal/entity/summary"
)

// Bucket selects the calendar granularity of period totals.
type Bucket string

const (
	BucketWeek  Bucket = "week"
	BucketMonth Bucket = "month"
	BucketYear  Bucket = "year"
)

// ParseBucket falls back to monthly buckets for unknown or empty names.
func ParseBucket(s string) Bucket {
	switch Bucket(s) {
	case BucketWeek, BucketYear:
		return Bucket(s)
	}
	return BucketMonth
}

// Build folds classified expenses into a Summary in a single pass.
// Sums are exact decimals, so per-category, per-period and per-merchant
// totals all reconcile to the same grand total.
func Build(recs []expense.Record, bucket Bucket) *summary.Summary {
	s := summary.New()
	for _, rec := range recs {
		s.TotalByCategory[rec.Category] = s.TotalByCategory[rec.Category].Add(rec.Amount)
		key := PeriodKey(rec.Date, bucket)
		s.TotalByPeriod[key] = s.TotalByPeriod[key].Add(rec.Amount)
		s.TotalByMerchant[rec.Description] = s.TotalByMerchant[rec.Description].Add(rec.Amount)
		s.Total = s.Total.Add(rec.Amount)
		s.Count++
	}
	return s
}

// PeriodKey labels the bucket a date falls into. Weekly buckets are
// keyed by the date the week begins on, so all labels stay sortable
// as plain strings.
func PeriodKey(t time.Time, bucket Bucket) string {
	n := now.New(t)
	switch bucket {
	case BucketWeek:
		return n.BeginningOfWeek().Format("2006-01-02")
	case BucketYear:
		return n.BeginningOfYear().Format("2006")
	default:
		return n.BeginningOfMonth().Format("2006-01")
	}
}
