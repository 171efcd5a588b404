package format

// Options controls every styling decision the formatter makes. Options
// values are treated as immutable for the duration of a Format call; the
// formatter keeps no state between calls.
type Options struct {
	// UseTabs indents with tab characters instead of spaces.
	UseTabs bool
	// IndentSize is the number of spaces per indent level when UseTabs
	// is false.
	IndentSize int
	// MaxLineLength is the budget used when deciding whether a bracket
	// group breaks onto multiple lines.
	MaxLineLength int

	// IndentAfterKeywords nests the lines following VAR one level deeper.
	IndentAfterKeywords bool
	// AlignFunctionParameters aligns broken arguments with the column
	// after the opening parenthesis instead of using indent levels.
	AlignFunctionParameters bool
	// BreakBeforeComma places the comma at the start of the next line in
	// a breaking argument list.
	BreakBeforeComma bool
	// BreakAfterComma starts a new line after each comma in a breaking
	// argument list.
	BreakAfterComma bool
	// SpaceAfterComma emits a space after commas that do not break.
	SpaceAfterComma bool
	// SpaceAroundOperators pads binary operators with spaces.
	SpaceAroundOperators bool

	// UppercaseKeywords renders structural keywords in uppercase.
	UppercaseKeywords bool
	// UppercaseFunctions renders known catalog function names in their
	// canonical uppercase spelling.
	UppercaseFunctions bool
	// PreserveComments keeps comments in the output; otherwise they are
	// dropped.
	PreserveComments bool

	// BreakAfterReturn places the returned expression on its own
	// indented line below RETURN.
	BreakAfterReturn bool
	// NewLineAfterVar starts each VAR on its own line.
	NewLineAfterVar bool

	// CompactShortExpressions renders an expression on a single line
	// when it fits within CompactThreshold characters.
	CompactShortExpressions bool
	// CompactThreshold is the single-line budget used when
	// CompactShortExpressions is set.
	CompactThreshold int
}

// Default returns the standard formatting profile.
func Default() Options {
	return Options{
		IndentSize:              4,
		MaxLineLength:           100,
		IndentAfterKeywords:     true,
		BreakAfterComma:         true,
		SpaceAfterComma:         true,
		SpaceAroundOperators:    true,
		UppercaseKeywords:       true,
		UppercaseFunctions:      true,
		PreserveComments:        true,
		BreakAfterReturn:        true,
		NewLineAfterVar:         true,
		CompactShortExpressions: true,
		CompactThreshold:        40,
	}
}

// Compact returns a profile that keeps expressions dense: a wider line
// budget, no parameter alignment and no forced breaks.
func Compact() Options {
	o := Default()
	o.MaxLineLength = 120
	o.CompactThreshold = 80
	o.BreakAfterComma = false
	o.BreakAfterReturn = false
	o.NewLineAfterVar = false
	return o
}
