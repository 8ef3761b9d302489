package rules

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"max.ks1230/expense-analyzer/internal/entity/expense"
)

// Rule maps a merchant keyword to a category. Matching is a
// case-insensitive substring test against the expense description.
type Rule struct {
	Keyword  string `yaml:"keyword"`
	Category string `yaml:"category"`
}

type ruleSet struct {
	DefaultCategory string `yaml:"default-category"`
	Rules           []Rule `yaml:"rules"`
}

// Set is the static classification configuration, loaded once at startup.
type Set struct {
	rules           []Rule
	defaultCategory expense.Category
}

func Load(path string) (*Set, error) {
	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading rules file")
	}

	var rs ruleSet
	if err = yaml.Unmarshal(rawYAML, &rs); err != nil {
		return nil, errors.Wrap(err, "parsing rules yaml")
	}
	return New(rs.Rules, rs.DefaultCategory)
}

func New(rr []Rule, defaultCategory string) (*Set, error) {
	def := expense.NonEssential
	if defaultCategory != "" {
		parsed, ok := expense.ParseCategory(defaultCategory)
		if !ok {
			return nil, errors.Errorf("unknown default category %q", defaultCategory)
		}
		def = parsed
	}

	for _, r := range rr {
		if strings.TrimSpace(r.Keyword) == "" {
			return nil, errors.New("rule with empty keyword")
		}
		if _, ok := expense.ParseCategory(r.Category); !ok {
			return nil, errors.Errorf("rule %q: unknown category %q", r.Keyword, r.Category)
		}
	}
	return &Set{rules: rr, defaultCategory: def}, nil
}

// Match returns the category of the first rule whose keyword occurs in
// the description, or the default category. Absence of a match is not
// a failure.
func (s *Set) Match(description string) expense.Category {
	desc := strings.ToLower(description)
	for _, r := range s.rules {
		if strings.Contains(desc, strings.ToLower(r.Keyword)) {
			cat, _ := expense.ParseCategory(r.Category)
			return cat
		}
	}
	return s.defaultCategory
}

func (s *Set) DefaultCategory() expense.Category {
	return s.defaultCategory
}

func (s *Set) Len() int {
	return len(s.rules)
}
