package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	Essential    Category = "essential"
	NonEssential Category = "non-essential"
	Unclassified Category = ""
)

var Categories = []Category{Essential, NonEssential}

// Record is a single expense as it came off the statement. Immutable after
// ingestion; Category is filled in by the classifier when Unclassified.
type Record struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Category    Category
}

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case Essential:
		return Essential, true
	case NonEssential:
		return NonEssential, true
	}
	return Unclassified, false
}
