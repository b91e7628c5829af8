// Package slug converts between the human-readable job folder names on disk
// and the lowercase hyphenated identifiers used in routes and lookups, and
// derives candidate display names from CV filenames.
//
// Identifiers and display titles are two projections of one canonical stored
// name. The round trip is lossy: a folder named "SAP hr" derives id "sap-hr"
// which reverse-maps to "Sap Hr". Code must never try to reconstruct the
// canonical name from the id alone.
package slug

import (
	"regexp"
	"strings"
)

// CVSuffix is the filename suffix that marks a file as a candidate CV.
const CVSuffix = "-cv.pdf"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Make derives the routing identifier for a job folder name: lowercase, every
// run of whitespace collapsed to a single hyphen.
func Make(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// Title is the reverse display projection of an identifier: hyphens become
// spaces and each word gets its first letter capitalized. Lossy with respect
// to the original name's casing and spacing.
func Title(id string) string {
	return capitalizeWords(strings.ReplaceAll(id, "-", " "))
}

// DisplayName derives a candidate's display name from a CV filename.
// The -cv.pdf suffix is stripped when present; parsing proceeds either way, so
// malformed names degrade to a best-effort result rather than failing.
func DisplayName(filename string) string {
	base := strings.TrimSuffix(filename, CVSuffix)
	return capitalizeWords(strings.ReplaceAll(base, "-", " "))
}

func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
