package barem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(m map[string]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

func TestDistributeConservesTotal(t *testing.T) {
	cases := []struct {
		names []string
		total int
	}{
		{[]string{"a"}, 100},
		{[]string{"a", "b", "c"}, 100},
		{[]string{"a", "b", "c", "d", "e", "f", "g"}, 100},
		{[]string{"a", "b", "c"}, 80},
		{[]string{"x", "y"}, 20},
		{[]string{"a", "b", "c", "d"}, 7},
	}
	for _, tc := range cases {
		got := Distribute(tc.names, tc.total)
		assert.Equal(t, tc.total, sum(got), "names=%v total=%d", tc.names, tc.total)
		for name, w := range got {
			assert.GreaterOrEqual(t, w, 0, "weight for %s", name)
		}
	}
}

func TestDistributeFrontLoadsRemainder(t *testing.T) {
	got := Distribute([]string{"a", "b", "c"}, 100)
	assert.Equal(t, 34, got["a"])
	assert.Equal(t, 33, got["b"])
	assert.Equal(t, 33, got["c"])
}

func TestDistributeValuesWithinOne(t *testing.T) {
	got := Distribute([]string{"a", "b", "c", "d", "e", "f"}, 100)
	min, max := 101, -1
	for _, w := range got {
		if w < min {
			min = w
		}
		if w > max {
			max = w
		}
	}
	assert.LessOrEqual(t, max-min, 1)
}

func TestDistributeEmpty(t *testing.T) {
	assert.Empty(t, Distribute(nil, 100))
}

func TestDistributeSplit(t *testing.T) {
	got := DistributeSplit(
		[]string{"Technical", "Soft Skills", "Domain"},
		[]string{"English", "German"},
		DefaultCategoryBudget, DefaultLanguageBudget,
	)
	assert.Equal(t, 100, sum(got))
	assert.Equal(t, 27, got["Technical"])
	assert.Equal(t, 10, got["English"])
	assert.Equal(t, 10, got["German"])
}

func TestValidate(t *testing.T) {
	c := &Criteria{JobTitle: "Data Analyst", Weights: map[string]int{"a": 60, "b": 40}}
	assert.NoError(t, c.Validate())

	c.Weights["b"] = 30
	err := c.Validate()
	require.Error(t, err)
	sumErr, ok := err.(*SumError)
	require.True(t, ok)
	assert.Equal(t, 90, sumErr.Sum)
	assert.Equal(t, 10, sumErr.Delta())

	c.Weights["b"] = 55
	err = c.Validate()
	require.Error(t, err)
	assert.Equal(t, -15, err.(*SumError).Delta())
}

func TestAutoDistribute(t *testing.T) {
	c := AutoDistribute("Data Analyst", map[string][]string{
		"Technical":       {"SQL", "Excel"},
		"Soft Skills":     {"Communication"},
		LanguagesCategory: {"English", "French"},
	})
	assert.NoError(t, c.Validate())
	assert.Equal(t, 10, c.Weights["English"])
	assert.Equal(t, 10, c.Weights["French"])
	assert.Equal(t, 40, c.Weights["Soft Skills"])
	assert.Equal(t, 40, c.Weights["Technical"])
}

func TestAutoDistributeNoLanguages(t *testing.T) {
	c := AutoDistribute("Data Analyst", map[string][]string{
		"Technical": {"SQL"},
		"Domain":    {"Finance"},
	})
	assert.NoError(t, c.Validate())
	assert.Equal(t, 50, c.Weights["Technical"])
	assert.Equal(t, 50, c.Weights["Domain"])
}
