// Package candidates synthesizes deterministic candidate records from CV
// filenames. Records stand in for real applicant data until the scoring
// backend has produced results: every field is derived from the candidate's
// ordinal through the seeded generator, so repeated synthesis of the same
// inputs is field-for-field identical.
package candidates

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/andrei/hirescope/internal/mockrand"
	"github.com/andrei/hirescope/internal/skills"
	"github.com/andrei/hirescope/internal/slug"
)

// Record is a synthesized candidate. IDs are assigned by enumeration order and
// are not stable across re-scans; nothing here is persisted.
type Record struct {
	ID              int      `json:"id"`
	DisplayName     string   `json:"displayName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	AppliedJobTitle string   `json:"appliedJobTitle"`
	JobSlug         string   `json:"jobSlug"`
	CVFilename      string   `json:"cvFilename"`
	Skills          []string `json:"skills"`
	Experience      string   `json:"experience"`
	Location        string   `json:"location"`
	Availability    string   `json:"availability"`
	SalaryRange     string   `json:"salaryRange"`
	Score           float64  `json:"score"`
	Status          string   `json:"status"`
	AppliedDate     string   `json:"appliedDate"`
}

// ScorePercent renders the canonical 0-10 score on the percent scale used by
// the dashboard's score widgets.
func (r Record) ScorePercent() int {
	return int(math.Round(r.Score * 10))
}

// Statuses is the fixed application-status enumeration.
var Statuses = []string{"pending", "reviewed", "interview", "accepted", "rejected"}

var (
	experienceBrackets = []string{"0-2 years", "2-5 years", "5-8 years", "8+ years"}
	locations          = []string{"Bucharest", "Cluj-Napoca", "Timisoara", "Iasi", "Remote"}
	availabilities     = []string{"Immediate", "2 weeks", "1 month", "Negotiable"}
	salaryRanges       = []string{"€800-€1200", "€1200-€1800", "€1800-€2500", "€2500-€3500"}
	phonePrefixes      = []string{"+40", "+44", "+49", "+33", "+1"}
)

// appliedWindowStart bounds the earliest synthesized application date.
var appliedWindowStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Clock supplies "now" for the applied-date window; tests pin it.
var Clock = time.Now

// Field salts. Each field multiplies the base seed by its own constant so the
// generator outputs are uncorrelated across fields of one record.
const (
	saltPrefix = iota + 1
	saltDigits
	saltExperience
	saltLocation
	saltAvailability
	saltSalary
	saltScore
	saltStatus
	saltDate
)

// Synthesize produces the candidate record for a CV filename within a job.
// ordinal is the 1-based enumeration position and doubles as the base seed.
func Synthesize(filename, jobTitle, jobSlug string, ordinal int) Record {
	seed := float64(ordinal)
	name := slug.DisplayName(filename)

	return Record{
		ID:              ordinal,
		DisplayName:     name,
		Email:           emailFor(name),
		Phone:           phoneFor(seed),
		AppliedJobTitle: jobTitle,
		JobSlug:         jobSlug,
		CVFilename:      filename,
		Skills:          skills.Classify(jobTitle),
		Experience:      experienceBrackets[mockrand.Index(seed*saltExperience, len(experienceBrackets))],
		Location:        locations[mockrand.Index(seed*saltLocation, len(locations))],
		Availability:    availabilities[mockrand.Index(seed*saltAvailability, len(availabilities))],
		SalaryRange:     salaryRanges[mockrand.Index(seed*saltSalary, len(salaryRanges))],
		Score:           scoreFor(seed),
		Status:          Statuses[mockrand.Index(seed*saltStatus, len(Statuses))],
		AppliedDate:     appliedDateFor(seed),
	}
}

// scoreFor draws the canonical 0-10 score. Synthesized values land in
// [6.0, 10.0] with one decimal of precision; percent display is score*10.
func scoreFor(seed float64) float64 {
	return float64(mockrand.IntBetween(seed*saltScore, 60, 100)) / 10
}

func emailFor(displayName string) string {
	parts := strings.Fields(strings.ToLower(displayName))
	if len(parts) == 0 {
		return "candidate@email.com"
	}
	return strings.Join(parts, ".") + "@email.com"
}

func phoneFor(seed float64) string {
	prefix := phonePrefixes[mockrand.Index(seed*saltPrefix, len(phonePrefixes))]
	digits := int(mockrand.Next(seed*saltDigits) * 1e9)
	return fmt.Sprintf("%s %09d", prefix, digits)
}

func appliedDateFor(seed float64) string {
	return mockrand.DateBetween(seed*saltDate, appliedWindowStart, Clock()).Format("2006-01-02")
}
