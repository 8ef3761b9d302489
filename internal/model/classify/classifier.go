package classify

import (
	"max.ks1230/expense-analyzer/internal/entity/expense"
)

type matcher interface {
	Match(description string) expense.Category
}

// Classifier assigns a definite category to every expense. It is
// deterministic and never fails: the rule set's default category covers
// unmatched descriptions.
type Classifier struct {
	rules matcher
}

func New(rules matcher) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the record with its category filled in. A record
// that already carries a definite category keeps it.
func (c *Classifier) Classify(rec expense.Record) expense.Record {
	if rec.Category != expense.Unclassified {
		return rec
	}
	rec.Category = c.rules.Match(rec.Description)
	return rec
}

func (c *Classifier) ClassifyAll(recs []expense.Record) []expense.Record {
	res := make([]expense.Record, 0, len(recs))
	for _, rec := range recs {
		res = append(res, c.Classify(rec))
	}
	return res
}
