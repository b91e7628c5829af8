// Package barem manages assessment criteria: the per-job mapping of skill
// categories and languages to integer percentage weights. A criteria record is
// usable for analysis only when its weights sum to exactly 100; distribution
// helpers guarantee that by construction, interactive edits are re-validated
// on every save.
package barem

import (
	"fmt"
	"sort"
	"time"
)

// LanguagesCategory is the reserved category whose members carry individual
// weights instead of one group weight.
const LanguagesCategory = "Languages"

// TotalBudget is the percentage budget every criteria must account for.
const TotalBudget = 100

// Default split between skill categories and individually weighted languages.
const (
	DefaultCategoryBudget = 80
	DefaultLanguageBudget = 20
)

// Criteria is the assessment record for one job title. Only the latest copy
// per title is retained; saves replace, nothing is versioned.
type Criteria struct {
	JobTitle          string              `json:"jobTitle"`
	CategorizedSkills map[string][]string `json:"categorizedSkills"`
	Weights           map[string]int      `json:"weights"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// SumError reports a weight total different from 100. It is a rejected-action
// outcome, not an exceptional condition: callers block the save or analysis
// and show the delta.
type SumError struct {
	Sum int
}

func (e *SumError) Error() string {
	return fmt.Sprintf("weights sum to %d, expected %d (delta %+d)", e.Sum, TotalBudget, e.Delta())
}

// Delta is the signed adjustment needed to reach 100.
func (e *SumError) Delta() int {
	return TotalBudget - e.Sum
}

// Validate is the acceptance gate for save and analyze actions.
func (c *Criteria) Validate() error {
	sum := 0
	for _, w := range c.Weights {
		sum += w
	}
	if sum != TotalBudget {
		return &SumError{Sum: sum}
	}
	return nil
}

// Distribute spreads total across names: everyone gets floor(total/count) and
// the first remainder names in input order get one extra point, so the values
// always sum to total exactly. Empty names yields an empty map.
func Distribute(names []string, total int) map[string]int {
	out := make(map[string]int, len(names))
	if len(names) == 0 {
		return out
	}
	base := total / len(names)
	remainder := total - base*len(names)
	for i, name := range names {
		w := base
		if i < remainder {
			w++
		}
		out[name] = w
	}
	return out
}

// DistributeSplit distributes two disjoint pools independently: skill
// categories against catBudget and languages against langBudget. With the
// default 80/20 budgets the merged map sums to 100 by construction.
func DistributeSplit(categories, languages []string, catBudget, langBudget int) map[string]int {
	out := Distribute(categories, catBudget)
	for name, w := range Distribute(languages, langBudget) {
		out[name] = w
	}
	return out
}

// AutoDistribute builds a criteria with weights spread over the categorized
// skills: languages individually, the remaining categories as groups. When
// there are no languages the whole budget goes to the categories.
func AutoDistribute(jobTitle string, categorized map[string][]string) *Criteria {
	var categories []string
	for name := range categorized {
		if name != LanguagesCategory {
			categories = append(categories, name)
		}
	}
	// Map iteration order is random; distribution is order-dependent, so the
	// category pool is sorted to keep auto-distribution reproducible.
	sort.Strings(categories)
	languages := append([]string(nil), categorized[LanguagesCategory]...)

	var weights map[string]int
	if len(languages) == 0 {
		weights = Distribute(categories, TotalBudget)
	} else if len(categories) == 0 {
		weights = Distribute(languages, TotalBudget)
	} else {
		weights = DistributeSplit(categories, languages, DefaultCategoryBudget, DefaultLanguageBudget)
	}

	return &Criteria{
		JobTitle:          jobTitle,
		CategorizedSkills: categorized,
		Weights:           weights,
	}
}
