package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garydbutler/TabularForge-sub001/pkg/model"
)

const testModelYAML = `
name: Contoso
tables:
  - name: Sales
    columns:
      - name: Amount
      - name: Quantity
      - name: OrderDate
    measures:
      - name: Total Sales
  - name: Product
    columns:
      - name: ProductKey
      - name: Color
`

func contosoModel(t *testing.T) *model.ModelInfo {
	t.Helper()
	m, err := model.Parse([]byte(testModelYAML))
	require.NoError(t, err)
	return m
}

func messages(diags []Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Message
	}
	return out
}

func TestAnalyzeClean(t *testing.T) {
	m := contosoModel(t)
	tests := []struct {
		name  string
		input string
	}{
		{"simple aggregation", `SUM(Sales[Amount])`},
		{"qualified ref casing", `SUM(sales[amount])`},
		{"measure reference", `[Total Sales] + 1`},
		{"calculate with filter", `CALCULATE(SUM(Sales[Amount]), Product[Color] = "Red")`},
		{"var chain", `VAR x = SUM(Sales[Amount]) RETURN x * 2`},
		{"evaluate", `EVALUATE FILTER(Sales, Sales[Quantity] > 0)`},
		{"define measure", `DEFINE MEASURE Sales[Margin] = SUM(Sales[Amount]) EVALUATE Sales`},
		{"comments and trivia", "-- total\nSUM(Sales[Amount]) /* inline */"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Analyze(tt.input, m, "test.dax")
			assert.Empty(t, diags, "unexpected: %v", messages(diags))
		})
	}
}

func TestAnalyzeFindings(t *testing.T) {
	m := contosoModel(t)
	tests := []struct {
		name     string
		input    string
		severity Severity
		contains string
	}{
		{"unknown table", `SUM(Customer[Amount])`, SeverityError, `unknown table "Customer"`},
		{"unknown column", `SUM(Sales[Margin])`, SeverityError, `unknown column "Margin" on table "Sales"`},
		{"unknown unqualified", `[Profit] * 2`, SeverityWarning, `column "Profit" not found`},
		{"unknown function", `SUMMARIZEROWS(Sales)`, SeverityWarning, `unknown function "SUMMARIZEROWS"`},
		{"too few arguments", `SUMX(Sales)`, SeverityError, "SUMX expects at least 2 argument(s), got 1"},
		{"quoted table ref", `COUNTROWS('Inventory')`, SeverityError, `unknown table "Inventory"`},
		{"illegal character", `SUM(Sales[Amount]) ; 1`, SeverityError, "unexpected character"},
		{"define bad table", `DEFINE MEASURE Missing[M] = 1 EVALUATE Sales`, SeverityError, `unknown table "Missing"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Analyze(tt.input, m, "test.dax")
			require.NotEmpty(t, diags)
			found := false
			for _, d := range diags {
				if strings.Contains(d.Message, tt.contains) {
					found = true
					assert.Equal(t, tt.severity, d.Severity)
					assert.Equal(t, "test.dax", d.Source)
					assert.True(t, d.Pos.IsValid(), "position should be set")
				}
			}
			assert.True(t, found, "no diagnostic containing %q in %v", tt.contains, messages(diags))
		})
	}
}

func TestAnalyzeBracketBalance(t *testing.T) {
	m := contosoModel(t)
	tests := []struct {
		name   string
		input  string
		errors int
	}{
		{"balanced", `SUM(Sales[Amount])`, 0},
		{"one unclosed", `SUM(Sales[Amount]`, 1},
		{"one stray close", `SUM(Sales[Amount]))`, 1},
		{"mismatched pair", `{SUM(Sales[Amount])`, 1},
		{"crossed pairs", `({)}`, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Analyze(tt.input, m, "")
			count := 0
			for _, d := range diags {
				if strings.Contains(d.Message, "unmatched") || strings.Contains(d.Message, "unclosed") {
					count++
				}
			}
			assert.Equal(t, tt.errors, count, "messages: %v", messages(diags))
		})
	}
}

func TestAnalyzeNilModel(t *testing.T) {
	// Without a model, reference checks are skipped but catalog checks
	// still run.
	diags := Analyze(`SUM(Unknown[Column]) + NOSUCHFUNC()`, nil, "")
	require.Len(t, diags, 1)
	assert.Equal(t, SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, `unknown function "NOSUCHFUNC"`)
}

func TestAnalyzeVarNotFlagged(t *testing.T) {
	m := contosoModel(t)
	diags := Analyze(`VAR Total = SUM(Sales[Amount]) RETURN Total`, m, "")
	assert.Empty(t, diags, "messages: %v", messages(diags))
}

func TestAnalyzeVarShadowingKeepsArityCheck(t *testing.T) {
	// A variable named after a catalog function suppresses the
	// unknown-function warning only; calling the function with too few
	// arguments is still an error.
	diags := Analyze(`VAR SUMX = 1 RETURN SUMX(Sales)`, nil, "")
	require.Len(t, diags, 1, "messages: %v", messages(diags))
	assert.Equal(t, SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "SUMX expects at least 2")
}

func TestAnalyzePercentInMessages(t *testing.T) {
	// Diagnostic text derived from source containing '%' must pass
	// through verbatim, without picking up formatting artifacts.
	diags := Analyze(`1 % 2`, nil, "")
	require.NotEmpty(t, diags)
	for _, d := range diags {
		assert.NotContains(t, d.Message, "%!", "message: %s", d.Message)
	}
}

func TestAnalyzeParseErrorsReported(t *testing.T) {
	m := contosoModel(t)
	diags := Analyze(`SUM(Sales[Amount]) + `, m, "")
	require.NotEmpty(t, diags)
	hasError := false
	for _, d := range diags {
		if d.Severity == SeverityError {
			hasError = true
			assert.True(t, d.Pos.IsValid())
		}
	}
	assert.True(t, hasError)
}

func TestAnalyzeOrdering(t *testing.T) {
	m := contosoModel(t)
	diags := Analyze("SUM(Missing[A])\nSUM(Sales[Nope])", m, "")
	require.Len(t, diags, 2)
	assert.LessOrEqual(t, diags[0].Pos.Offset, diags[1].Pos.Offset)
	assert.Equal(t, 1, diags[0].Pos.Line)
	assert.Equal(t, 2, diags[1].Pos.Line)
}

func TestAnalyzeDiscoveryOrder(t *testing.T) {
	// The bracket scan runs before the model walk, so its finding comes
	// first even though the unknown table sits earlier in the source.
	m := contosoModel(t)
	diags := Analyze(`SUM(Missing[Amount]) + COUNTROWS(Sales`, m, "")

	bracket, table := -1, -1
	for i, d := range diags {
		if strings.Contains(d.Message, `unclosed "("`) && bracket == -1 {
			bracket = i
		}
		if strings.Contains(d.Message, `unknown table "Missing"`) && table == -1 {
			table = i
		}
	}
	require.GreaterOrEqual(t, bracket, 0, "messages: %v", messages(diags))
	require.GreaterOrEqual(t, table, 0, "messages: %v", messages(diags))
	assert.Less(t, bracket, table, "messages: %v", messages(diags))
}

func TestSeverityRoundTrip(t *testing.T) {
	for _, sev := range []Severity{SeverityError, SeverityWarning, SeverityInfo} {
		parsed, ok := ParseSeverity(sev.String())
		assert.True(t, ok)
		assert.Equal(t, sev, parsed)
	}

	parsed, ok := ParseSeverity("nonsense")
	assert.False(t, ok)
	assert.Equal(t, SeverityWarning, parsed)

	parsed, ok = ParseSeverity("ERROR")
	assert.True(t, ok)
	assert.Equal(t, SeverityError, parsed)
}
