package jobdesc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRequirementsBasic(t *testing.T) {
	text := `About the role.

Requirements:
- 3+ years SQL
• Power BI
2. English fluency
Not a bullet line, skipped.
`
	got := ExtractRequirements(text)
	assert.Equal(t, []string{"3+ years SQL", "Power BI", "English fluency"}, got)
}

func TestExtractRequirementsTriggerConsumed(t *testing.T) {
	got := ExtractRequirements("Required skills below\n- Excel\n")
	assert.Equal(t, []string{"Excel"}, got)
}

func TestExtractRequirementsCap(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Qualifications\n")
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&sb, "- item %d\n", i)
	}
	got := ExtractRequirements(sb.String())
	require.Len(t, got, MaxRequirements)
	assert.Equal(t, "item 1", got[0])
	assert.Equal(t, "item 8", got[7])
}

func TestExtractRequirementsFlagStaysOn(t *testing.T) {
	// Once the requirements section opens, the flag never resets: bullets
	// under the later BENEFITS header are still collected. Current behavior,
	// possibly unintended, documented here on purpose.
	text := `Requirements:
- SQL

BENEFITS
- Free coffee
`
	got := ExtractRequirements(text)
	assert.Equal(t, []string{"SQL", "Free coffee"}, got)
}

func TestExtractRequirementsBlankLinesSkipped(t *testing.T) {
	got := ExtractRequirements("Skills\n\n- one\n\n- two\n")
	assert.Equal(t, []string{"one", "two"}, got)
}

func TestExtractRequirementsFallback(t *testing.T) {
	// No trigger section at all: keyword-bearing lines are emitted verbatim.
	text := `We value proficient engineers.
A degree is a plus.
Nothing relevant here.
`
	got := ExtractRequirements(text)
	assert.Equal(t, []string{"We value proficient engineers.", "A degree is a plus."}, got)
}

func TestExtractRequirementsEmpty(t *testing.T) {
	assert.Empty(t, ExtractRequirements("Just a plain description.\nNothing else.\n"))
}
