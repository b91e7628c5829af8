// Package jobdesc turns free-text job description files into the structured
// section/category/item form the dashboard renders. Parsing is heuristic line
// scanning, tuned for the short recruiter-written documents found in job
// folders; it never fails, it only degrades to a single catch-all section.
package jobdesc

import "strings"

// maxHeaderLen bounds how long a line may be and still count as a section
// header.
const maxHeaderLen = 50

// Document is the normalized structured form of a job description.
type Document struct {
	Sections []Section `json:"sections"`
}

// Section groups categories under an optional title.
type Section struct {
	Title      string     `json:"title,omitempty"`
	Categories []Category `json:"categories"`
}

// Category holds an ordered list of display items under an optional title.
type Category struct {
	Title string   `json:"title,omitempty"`
	Items []string `json:"items"`
}

// headerKeywords mark a short line as a section header regardless of casing.
var headerKeywords = []string{
	"responsibilities",
	"qualifications",
	"skills",
	"benefits",
	"about",
	"overview",
	"description",
	"duties",
	"experience",
	"education",
	"what you'll do",
	"what we offer",
	"who we are",
	"key requirements",
	"nice to have",
}

// FilterSections is the normalized-input path: the document already has
// structure and only sections whose exact title is "requirements" (after
// trimming and lowercasing) are removed, since requirements render separately.
func FilterSections(doc Document) Document {
	out := Document{Sections: make([]Section, 0, len(doc.Sections))}
	for _, s := range doc.Sections {
		if strings.ToLower(strings.TrimSpace(s.Title)) == "requirements" {
			continue
		}
		out.Sections = append(out.Sections, s)
	}
	return out
}

// StructureText parses free text into sections. Lines are scanned in order
// against a current section (initially "Overview"); header lines flush the
// section and open a new one, other lines become bullet-stripped items.
// Zero parsed sections fall back to one "Job Description" section holding
// every non-blank line. Sections whose title contains "requirement" are
// filtered from the result -- note substring containment here, broader than
// the exact match FilterSections applies on the normalized path.
func StructureText(text string) Document {
	var sections []Section

	current := Section{Title: "Overview"}
	var items []string

	flush := func() {
		if len(items) > 0 {
			current.Categories = []Category{{Items: items}}
			sections = append(sections, current)
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if isHeader(line) {
			flush()
			current = Section{Title: strings.TrimSpace(strings.TrimSuffix(line, ":"))}
			items = nil
			continue
		}
		items = append(items, stripBullet(line))
	}
	flush()

	if len(sections) == 0 {
		var all []string
		for _, raw := range strings.Split(text, "\n") {
			line := strings.TrimSpace(raw)
			if line != "" {
				all = append(all, stripBullet(line))
			}
		}
		if len(all) > 0 {
			sections = []Section{{Title: "Job Description", Categories: []Category{{Items: all}}}}
		}
	}

	kept := make([]Section, 0, len(sections))
	for _, s := range sections {
		if strings.Contains(strings.ToLower(s.Title), "requirement") {
			continue
		}
		kept = append(kept, s)
	}
	return Document{Sections: kept}
}

func isHeader(line string) bool {
	if len(line) >= maxHeaderLen {
		return false
	}
	if isAllUpper(line) {
		return true
	}
	lower := strings.ToLower(line)
	for _, kw := range headerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return strings.HasSuffix(line, ":")
}

// isAllUpper reports whether a line is entirely uppercase. Lines with no
// letters at all don't qualify.
func isAllUpper(line string) bool {
	hasLetter := false
	for _, r := range line {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

// stripBullet removes a single leading bullet marker and any whitespace that
// follows it.
func stripBullet(line string) string {
	for _, marker := range []string{"-", "•", "*"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimLeft(strings.TrimPrefix(line, marker), " \t")
		}
	}
	return line
}
