package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultSeverity is the minimum severity lint reports when nothing is
// configured.
const DefaultSeverity = "warning"

var configFileUsed string

// GetConfigFileUsed returns the path of the config file the last
// LoadConfig call read, or empty when none was found.
func GetConfigFileUsed() string {
	return configFileUsed
}

// findConfigFile finds the config file to use.
// Priority: explicit path > tabularforge.yaml > tabularforge.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"tabularforge.yaml", "tabularforge.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// LoadConfig loads configuration from file, environment variables, and
// flags. Precedence (highest to lowest): flags > env vars > config file
// > defaults.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults.
	df := defaultFormat()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"model":    "",
		"severity": DefaultSeverity,
		"verbose":  false,

		"format.use_tabs":                  df.UseTabs,
		"format.indent_size":               df.IndentSize,
		"format.max_line_length":           df.MaxLineLength,
		"format.indent_after_keywords":     df.IndentAfterKeywords,
		"format.align_function_parameters": df.AlignFunctionParameters,
		"format.break_before_comma":        df.BreakBeforeComma,
		"format.break_after_comma":         df.BreakAfterComma,
		"format.space_after_comma":         df.SpaceAfterComma,
		"format.space_around_operators":    df.SpaceAroundOperators,
		"format.uppercase_keywords":        df.UppercaseKeywords,
		"format.uppercase_functions":       df.UppercaseFunctions,
		"format.preserve_comments":         df.PreserveComments,
		"format.break_after_return":        df.BreakAfterReturn,
		"format.new_line_after_var":        df.NewLineAfterVar,
		"format.compact_short_expressions": df.CompactShortExpressions,
		"format.compact_threshold":         df.CompactThreshold,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file.
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables (TABULARFORGE_ prefix). A double
	// underscore separates nesting levels:
	// TABULARFORGE_FORMAT__INDENT_SIZE -> format.indent_size
	if err := k.Load(env.Provider("TABULARFORGE_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "TABULARFORGE_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority). Only flags explicitly set on the
	// command line are loaded.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
