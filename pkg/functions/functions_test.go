package functions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		found    bool
		family   Family
		required int
	}{
		{"exact uppercase", "SUMX", true, FamilyAggregation, 2},
		{"lowercase", "sumx", true, FamilyAggregation, 2},
		{"mixed case", "CaLcUlAtE", true, FamilyFilter, 1},
		{"dotted name", "STDEV.P", true, FamilyStatistical, 1},
		{"zero-arg", "TODAY", true, FamilyDateTime, 0},
		{"time intelligence", "DATESYTD", true, FamilyTimeIntelligence, 1},
		{"visual", "RUNNINGSUM", true, FamilyVisual, 1},
		{"unknown", "SUMMARIZEROWS", false, "", 0},
		{"empty", "", false, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, ok := Lookup(tt.query)
			assert.Equal(t, tt.found, ok)
			if !tt.found {
				assert.Nil(t, sig)
				return
			}
			require.NotNil(t, sig)
			assert.Equal(t, tt.family, sig.Family)
			assert.Equal(t, tt.required, sig.RequiredParameters())
			assert.Equal(t, strings.ToUpper(tt.query), sig.Name)
		})
	}
}

func TestAll(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	assert.Equal(t, Count(), len(all))

	// Sorted by name, no duplicates.
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name, all[i].Name)
	}

	// Every entry is complete.
	for _, s := range all {
		assert.NotEmpty(t, s.Name, "name")
		assert.NotEmpty(t, s.Description, "description for %s", s.Name)
		assert.NotEmpty(t, s.Returns, "return type for %s", s.Name)
		assert.NotEmpty(t, s.Family, "family for %s", s.Name)
	}
}

func TestSearch(t *testing.T) {
	t.Run("prefix match", func(t *testing.T) {
		results := Search("DATES")
		require.NotEmpty(t, results)
		for _, s := range results {
			assert.True(t, strings.HasPrefix(s.Name, "DATES"), s.Name)
		}
		names := make([]string, len(results))
		for i, s := range results {
			names[i] = s.Name
		}
		assert.Contains(t, names, "DATESYTD")
		assert.Contains(t, names, "DATESBETWEEN")
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, len(Search("SUM")), len(Search("sum")))
	})

	t.Run("empty prefix returns all", func(t *testing.T) {
		assert.Equal(t, Count(), len(Search("")))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Search("ZZZ"))
	})
}

func TestSignatureString(t *testing.T) {
	sumx, ok := Lookup("SUMX")
	require.True(t, ok)
	assert.Equal(t, "SUMX(table, expression) -> number", sumx.String())

	today, ok := Lookup("TODAY")
	require.True(t, ok)
	assert.Equal(t, "TODAY() -> datetime", today.String())

	ifSig, ok := Lookup("IF")
	require.True(t, ok)
	assert.Equal(t, "IF(logical_test, value_if_true, [value_if_false]) -> variant", ifSig.String())
}

func TestRequiredParameters(t *testing.T) {
	tests := []struct {
		fn       string
		required int
		total    int
	}{
		{"SUM", 1, 1},
		{"DIVIDE", 2, 3},
		{"SWITCH", 3, 6},
		{"NOW", 0, 0},
		{"LOOKUPVALUE", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.fn, func(t *testing.T) {
			sig, ok := Lookup(tt.fn)
			require.True(t, ok)
			assert.Equal(t, tt.required, sig.RequiredParameters())
			assert.Equal(t, tt.total, len(sig.Parameters))
		})
	}
}

func TestCatalogCoverage(t *testing.T) {
	// A spot check that the well-known functions from every family made
	// it into the catalog.
	for _, name := range []string{
		"SUM", "CALCULATE", "FILTER", "RELATED", "IF", "ISBLANK",
		"ROUND", "MEDIAN", "FV", "FORMAT", "SUMMARIZE", "TOTALYTD",
		"RUNNINGSUM",
	} {
		_, ok := Lookup(name)
		assert.True(t, ok, "missing %s", name)
	}
	assert.GreaterOrEqual(t, Count(), 250)
}
