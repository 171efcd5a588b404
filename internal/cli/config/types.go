// Package config provides configuration management for the TabularForge
// CLI. Values are layered from defaults, an optional tabularforge.yaml,
// TABULARFORGE_ environment variables, and explicitly set flags, in
// rising priority.
package config

import "github.com/garydbutler/TabularForge-sub001/pkg/format"

// Config holds all CLI configuration options.
type Config struct {
	// ModelPath points to the YAML model snapshot used by lint and the
	// REPL. Empty disables reference validation.
	ModelPath string `koanf:"model"`
	// Severity is the minimum severity reported by lint.
	Severity string `koanf:"severity"`
	// Verbose enables progress chatter on stderr.
	Verbose bool `koanf:"verbose"`
	// Format holds the formatting profile.
	Format FormatConfig `koanf:"format"`
}

// FormatConfig mirrors format.Options with koanf tags so every styling
// rule can come from the config file or environment.
type FormatConfig struct {
	UseTabs                 bool `koanf:"use_tabs"`
	IndentSize              int  `koanf:"indent_size"`
	MaxLineLength           int  `koanf:"max_line_length"`
	IndentAfterKeywords     bool `koanf:"indent_after_keywords"`
	AlignFunctionParameters bool `koanf:"align_function_parameters"`
	BreakBeforeComma        bool `koanf:"break_before_comma"`
	BreakAfterComma         bool `koanf:"break_after_comma"`
	SpaceAfterComma         bool `koanf:"space_after_comma"`
	SpaceAroundOperators    bool `koanf:"space_around_operators"`
	UppercaseKeywords       bool `koanf:"uppercase_keywords"`
	UppercaseFunctions      bool `koanf:"uppercase_functions"`
	PreserveComments        bool `koanf:"preserve_comments"`
	BreakAfterReturn        bool `koanf:"break_after_return"`
	NewLineAfterVar         bool `koanf:"new_line_after_var"`
	CompactShortExpressions bool `koanf:"compact_short_expressions"`
	CompactThreshold        int  `koanf:"compact_threshold"`
}

// Options converts the config to formatter options.
func (f FormatConfig) Options() format.Options {
	return format.Options{
		UseTabs:                 f.UseTabs,
		IndentSize:              f.IndentSize,
		MaxLineLength:           f.MaxLineLength,
		IndentAfterKeywords:     f.IndentAfterKeywords,
		AlignFunctionParameters: f.AlignFunctionParameters,
		BreakBeforeComma:        f.BreakBeforeComma,
		BreakAfterComma:         f.BreakAfterComma,
		SpaceAfterComma:         f.SpaceAfterComma,
		SpaceAroundOperators:    f.SpaceAroundOperators,
		UppercaseKeywords:       f.UppercaseKeywords,
		UppercaseFunctions:      f.UppercaseFunctions,
		PreserveComments:        f.PreserveComments,
		BreakAfterReturn:        f.BreakAfterReturn,
		NewLineAfterVar:         f.NewLineAfterVar,
		CompactShortExpressions: f.CompactShortExpressions,
		CompactThreshold:        f.CompactThreshold,
	}
}

// defaultFormat returns the FormatConfig matching format.Default().
func defaultFormat() FormatConfig {
	o := format.Default()
	return FormatConfig{
		UseTabs:                 o.UseTabs,
		IndentSize:              o.IndentSize,
		MaxLineLength:           o.MaxLineLength,
		IndentAfterKeywords:     o.IndentAfterKeywords,
		AlignFunctionParameters: o.AlignFunctionParameters,
		BreakBeforeComma:        o.BreakBeforeComma,
		BreakAfterComma:         o.BreakAfterComma,
		SpaceAfterComma:         o.SpaceAfterComma,
		SpaceAroundOperators:    o.SpaceAroundOperators,
		UppercaseKeywords:       o.UppercaseKeywords,
		UppercaseFunctions:      o.UppercaseFunctions,
		PreserveComments:        o.PreserveComments,
		BreakAfterReturn:        o.BreakAfterReturn,
		NewLineAfterVar:         o.NewLineAfterVar,
		CompactShortExpressions: o.CompactShortExpressions,
		CompactThreshold:        o.CompactThreshold,
	}
}
