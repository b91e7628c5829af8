package jobdesc

import (
	"strings"
	"unicode"
)

// MaxRequirements caps the extracted requirements list.
const MaxRequirements = 8

// sectionTriggers flip the extractor into requirements mode.
var sectionTriggers = []string{"requirement", "skill", "qualification"}

// fallbackKeywords select requirement-looking lines when no bullet list was
// found under a trigger.
var fallbackKeywords = []string{"experience", "knowledge", "skills", "proficient", "degree"}

// ExtractRequirements pulls a flat requirements list out of free description
// text. A line mentioning a trigger word opens the requirements section (the
// trigger line itself is consumed, not emitted); from then on bullet or
// numbered lines are emitted with their markers stripped. The section flag is
// never turned off once set, so bullets after later headers still count --
// kept as-is until product intent says otherwise. If nothing was collected,
// lines containing any fallback keyword are emitted verbatim. Output is
// capped at MaxRequirements, keeping the first matches in document order.
func ExtractRequirements(text string) []string {
	var reqs []string
	inSection := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !inSection {
			if containsAny(strings.ToLower(line), sectionTriggers) {
				inSection = true
			}
			continue
		}
		if item, ok := stripListMarker(line); ok {
			reqs = append(reqs, item)
		}
	}

	if len(reqs) == 0 {
		for _, raw := range strings.Split(text, "\n") {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			if containsAny(strings.ToLower(line), fallbackKeywords) {
				reqs = append(reqs, line)
			}
		}
	}

	if len(reqs) > MaxRequirements {
		reqs = reqs[:MaxRequirements]
	}
	return reqs
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// stripListMarker recognizes "•", "-" and "<digits>." list items and returns
// the item text without the marker.
func stripListMarker(line string) (string, bool) {
	for _, marker := range []string{"•", "-"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	i := 0
	for i < len(line) && unicode.IsDigit(rune(line[i])) {
		i++
	}
	if i > 0 && i < len(line) && line[i] == '.' {
		return strings.TrimSpace(line[i+1:]), true
	}
	return "", false
}
