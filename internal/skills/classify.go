// Package skills infers a candidate skill set from a job title using ordered
// keyword rules. The mapping is intentionally shallow: it exists to give mock
// candidates plausible skills for display, not to model real competencies.
package skills

import "strings"

// MaxSkills is the hard display cap on a classified skill list. Items beyond
// the cap are dropped, not ranked.
const MaxSkills = 6

// rule maps a job-title keyword to its skill category. Rules are evaluated in
// order and the first match wins, so priority is positional.
type rule struct {
	keyword string
	skills  []string
}

var rules = []rule{
	{"hr", []string{"Recruitment", "Employee Relations", "Onboarding", "HRIS", "Payroll"}},
	{"sap", []string{"SAP ERP", "SAP FICO", "SAP MM", "Data Migration"}},
	{"bi", []string{"Power BI", "SQL", "Data Modeling", "DAX", "ETL"}},
	{"analyst", []string{"Data Analysis", "Excel", "SQL", "Reporting", "Statistics"}},
	{"account", []string{"Financial Reporting", "Bookkeeping", "Tax Compliance", "Reconciliation"}},
}

// genericSkills is the fallback category for titles no rule matches.
var genericSkills = []string{"Communication", "Problem Solving", "Teamwork", "Leadership"}

// supplement is appended to every classification regardless of category.
var supplement = []string{"English", "Attention to Detail"}

// Classify returns the skill list for a job title: the first matching keyword
// category (or the generic fallback), plus the universal supplement,
// deduplicated and capped at MaxSkills.
func Classify(jobTitle string) []string {
	title := strings.ToLower(jobTitle)

	base := genericSkills
	for _, r := range rules {
		if strings.Contains(title, r.keyword) {
			base = r.skills
			break
		}
	}

	seen := make(map[string]bool, len(base)+len(supplement))
	out := make([]string, 0, MaxSkills)
	for _, s := range append(append([]string{}, base...), supplement...) {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == MaxSkills {
			break
		}
	}
	return out
}
