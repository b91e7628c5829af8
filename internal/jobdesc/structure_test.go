package jobdesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructureTextHeaders(t *testing.T) {
	text := `We are hiring a data analyst to join our team.

RESPONSIBILITIES
- Build dashboards
- Maintain reports

Qualifications:
- Degree in statistics
`
	doc := StructureText(text)
	require.Len(t, doc.Sections, 3)

	assert.Equal(t, "Overview", doc.Sections[0].Title)
	assert.Equal(t, []string{"We are hiring a data analyst to join our team."}, doc.Sections[0].Categories[0].Items)

	assert.Equal(t, "RESPONSIBILITIES", doc.Sections[1].Title)
	assert.Equal(t, []string{"Build dashboards", "Maintain reports"}, doc.Sections[1].Categories[0].Items)

	assert.Equal(t, "Qualifications", doc.Sections[2].Title, "trailing colon stripped")
	assert.Equal(t, []string{"Degree in statistics"}, doc.Sections[2].Categories[0].Items)
}

func TestStructureTextEmptySectionNotFlushed(t *testing.T) {
	text := "BENEFITS\nOVERVIEW\n- Health insurance\n"
	doc := StructureText(text)
	// BENEFITS had no items before the next header, so it is dropped.
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "OVERVIEW", doc.Sections[0].Title)
}

func TestStructureTextFallback(t *testing.T) {
	// Only headers, no items anywhere: every section is dropped as empty and
	// the fallback section carries all non-blank lines instead.
	text := "SKILLS\n\nBENEFITS\n"
	doc := StructureText(text)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Job Description", doc.Sections[0].Title)
	assert.Equal(t, []string{"SKILLS", "BENEFITS"}, doc.Sections[0].Categories[0].Items)
}

func TestStructureTextRequirementsFiltered(t *testing.T) {
	text := `OVERVIEW
Great role.
Key Requirements:
- 3+ years with SQL
BENEFITS
- Remote work
`
	doc := StructureText(text)
	require.Len(t, doc.Sections, 2)
	for _, s := range doc.Sections {
		assert.NotContains(t, s.Title, "Requirements")
	}
}

func TestStructureTextBulletKeywordLineIsHeader(t *testing.T) {
	// Header detection ignores bullet markers: a short bullet line carrying a
	// header keyword opens a new section, marker and all, like any other
	// header line.
	text := "DUTIES\nFirst item\n- 3+ years experience with SQL\nSecond item\n"
	doc := StructureText(text)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "DUTIES", doc.Sections[0].Title)
	assert.Equal(t, []string{"First item"}, doc.Sections[0].Categories[0].Items)
	assert.Equal(t, "- 3+ years experience with SQL", doc.Sections[1].Title)
	assert.Equal(t, []string{"Second item"}, doc.Sections[1].Categories[0].Items)
}

func TestStructureTextLongLineNotHeader(t *testing.T) {
	long := "ABOUT THE COMPANY AND WHAT WE DO EVERY SINGLE DAY FOR OUR CUSTOMERS WORLDWIDE"
	require.GreaterOrEqual(t, len(long), maxHeaderLen)
	doc := StructureText("OVERVIEW\n" + long + "\n")
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, []string{long}, doc.Sections[0].Categories[0].Items)
}

func TestFilterSectionsExactTitle(t *testing.T) {
	doc := Document{Sections: []Section{
		{Title: "Overview"},
		{Title: "  Requirements "},
		{Title: "Key Requirements"}, // substring only, survives the exact-match filter
	}}
	got := FilterSections(doc)
	require.Len(t, got.Sections, 2)
	assert.Equal(t, "Overview", got.Sections[0].Title)
	assert.Equal(t, "Key Requirements", got.Sections[1].Title)
}
