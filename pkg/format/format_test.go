package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple call", `SUM(Sales[Amount])`, `SUM(Sales[Amount])`},
		{"normalizes whitespace", `SUM(  Sales[Amount]  )`, `SUM(Sales[Amount])`},
		{"comma spacing", `SUMX(Sales,Sales[Qty]*Sales[Price])`, `SUMX(Sales, Sales[Qty] * Sales[Price])`},
		{"function casing", `sum(Sales[Amount])`, `SUM(Sales[Amount])`},
		{"operator spacing", `1+2*3`, `1 + 2 * 3`},
		{"unary sign", `-1 + -2`, `-1 + -2`},
		{"quoted table", `'Sales Data'[Amount]+1`, `'Sales Data'[Amount] + 1`},
		{"brace constructor", `{1,2,3}`, `{1, 2, 3}`},
		{"empty", ``, ``},
		{"whitespace only", "   \t ", ``},
	}

	opts := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.input, opts))
		})
	}
}

func TestFormatBreaksLongCall(t *testing.T) {
	opts := Default()
	opts.MaxLineLength = 30
	opts.CompactShortExpressions = false

	got := Format(`SUMX(Sales,Sales[Qty]*Sales[Price])`, opts)
	want := "SUMX(\n" +
		"    Sales,\n" +
		"    Sales[Qty] * Sales[Price]\n" +
		")"
	assert.Equal(t, want, got)
}

func TestFormatAlignedParameters(t *testing.T) {
	opts := Default()
	opts.MaxLineLength = 30
	opts.CompactShortExpressions = false
	opts.AlignFunctionParameters = true

	got := Format(`SUMX(Sales,Sales[Qty]*Sales[Price])`, opts)
	want := "SUMX(Sales,\n" +
		"     Sales[Qty] * Sales[Price])"
	assert.Equal(t, want, got)
}

func TestFormatVarReturn(t *testing.T) {
	t.Run("default profile", func(t *testing.T) {
		got := Format(`VAR x = 1 RETURN x + 1`, Default())
		want := "VAR x = 1\n" +
			"RETURN\n" +
			"    x + 1"
		assert.Equal(t, want, got)
	})

	t.Run("no break after return", func(t *testing.T) {
		opts := Default()
		opts.BreakAfterReturn = false
		got := Format(`VAR x = 1 RETURN x + 1`, opts)
		assert.Equal(t, "VAR x = 1\nRETURN x + 1", got)
	})

	t.Run("sibling vars stay level", func(t *testing.T) {
		got := Format(`VAR a = 1 VAR b = 2 RETURN a + b`, Default())
		want := "VAR a = 1\n" +
			"VAR b = 2\n" +
			"RETURN\n" +
			"    a + b"
		assert.Equal(t, want, got)
	})

	t.Run("tabs", func(t *testing.T) {
		opts := Default()
		opts.UseTabs = true
		got := Format(`VAR x = 1 RETURN x + 1`, opts)
		assert.Equal(t, "VAR x = 1\nRETURN\n\tx + 1", got)
	})
}

func TestFormatScript(t *testing.T) {
	got := Format(`DEFINE MEASURE Sales[Total] = SUM(Sales[Amount]) EVALUATE Sales`, Default())
	want := "DEFINE\n" +
		"    MEASURE Sales[Total] = SUM(Sales[Amount])\n" +
		"EVALUATE Sales"
	assert.Equal(t, want, got)
}

func TestFormatKeywordCasing(t *testing.T) {
	got := Format(`var x = 1 return x`, Default())
	assert.Equal(t, "VAR x = 1\nRETURN\n    x", got)

	opts := Default()
	opts.UppercaseKeywords = false
	opts.UppercaseFunctions = false
	got = Format(`var x = sum(Sales[A]) return x`, opts)
	assert.Equal(t, "var x = sum(Sales[A])\nreturn\n    x", got)
}

func TestFormatComments(t *testing.T) {
	t.Run("preserved", func(t *testing.T) {
		got := Format("SUM(Sales[Amount]) -- total", Default())
		assert.Equal(t, "SUM(Sales[Amount]) -- total", got)
	})

	t.Run("block comment inline", func(t *testing.T) {
		got := Format(`SUM(Sales[Amount]) /* note */`, Default())
		assert.Equal(t, "SUM(Sales[Amount]) /* note */", got)
	})

	t.Run("dropped", func(t *testing.T) {
		opts := Default()
		opts.PreserveComments = false
		got := Format("SUM(Sales[Amount]) -- total", opts)
		assert.Equal(t, "SUM(Sales[Amount])", got)
	})
}

func TestFormatCompactProfile(t *testing.T) {
	got := Format(`VAR x = 1 RETURN x + 1`, Compact())
	assert.Equal(t, "VAR x = 1\nRETURN x + 1", got)
}

func TestFormatMalformedInput(t *testing.T) {
	// The formatter never fails; it renders whatever the tokens allow.
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed paren", `SUM(Sales[Amount]`},
		{"stray close", `SUM(Sales[Amount]))`},
		{"dangling operator", `x + `},
		{"illegal character", `1 ; 2`},
		{"unterminated string", `"never ends`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() { Format(tt.input, Default()) })
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		`SUM(Sales[Amount])`,
		`SUMX(Sales,Sales[Qty]*Sales[Price])`,
		`VAR x = 1 RETURN x + 1`,
		`VAR a = SUM(Sales[Amount]) VAR b = COUNTROWS(Sales) RETURN DIVIDE(a, b)`,
		`DEFINE MEASURE Sales[Total] = SUM(Sales[Amount]) EVALUATE Sales`,
		`EVALUATE FILTER(Sales, Sales[Qty] > 0)`,
		`CALCULATE(SUM(Sales[Amount]), ALL(Sales), Sales[Qty] > 10, Product[Color] = "Red")`,
		"SUM(Sales[Amount]) -- total\n+ 1",
		`{1, 2, 3}`,
		`-1 + -2 ^ 3`,
		`SUM(Sales[Amount]`,
		`x + `,
		``,
	}
	profiles := map[string]Options{
		"default": Default(),
		"compact": Compact(),
	}
	narrow := Default()
	narrow.MaxLineLength = 30
	narrow.CompactShortExpressions = false
	profiles["narrow"] = narrow

	aligned := narrow
	aligned.AlignFunctionParameters = true
	profiles["aligned"] = aligned

	tabs := Default()
	tabs.UseTabs = true
	profiles["tabs"] = tabs

	noSpace := Default()
	noSpace.SpaceAroundOperators = false
	noSpace.SpaceAfterComma = false
	profiles["dense"] = noSpace

	for pname, opts := range profiles {
		for _, input := range inputs {
			once := Format(input, opts)
			twice := Format(once, opts)
			assert.Equal(t, once, twice, "profile %s, input %q", pname, input)
		}
	}
}
