// Package config loads and validates the tidy configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dotcommander/tidy/internal/cue"
	"github.com/spf13/viper"
)

// DefaultFileName is the config file looked up in the project root.
const DefaultFileName = ".tidy.toml"

// DefaultInclude checks all Go files in all directories but nothing else.
var DefaultInclude = []string{"**/*.go"}

// ErrNotFound is returned by Load when the config file does not exist.
var ErrNotFound = errors.New("config file not found")

// ErrPatternNotRelative is returned for globs that are absolute or climb
// out of the root with "..".
var ErrPatternNotRelative = errors.New("patterns must be relative to the root")

// Raw is the configuration document as written by the user.
type Raw struct {
	Include          []string `mapstructure:"include"`
	Exclude          []string `mapstructure:"exclude"`
	MaxLineLength    uint64   `mapstructure:"max_line_length"`
	ForbiddenContent []string `mapstructure:"forbidden_content"`
	IndentationStyle *string  `mapstructure:"indentation_style"`
}

// ForbiddenContent pairs the compiled forbidden-content regexes with the
// text they were compiled from. Both slices are index-aligned.
type ForbiddenContent struct {
	Patterns []*regexp.Regexp
	Sources  []string
}

// Len returns the number of forbidden patterns.
func (f ForbiddenContent) Len() int {
	return len(f.Patterns)
}

// Config is the validated parameter set for a checking run.
// It is built once by New or Load and must not be modified afterwards.
type Config struct {
	// Include lists the globs of files to check, relative to the root.
	Include []string
	// Exclude lists globs of files to skip even if they match Include.
	Exclude []string
	// MaxLineLength is the maximum number of runes in a single line.
	MaxLineLength uint64
	// ForbiddenContent lists regexes that no line may match. Useful for
	// trailing whitespace, CRLF line endings or tab characters.
	ForbiddenContent ForbiddenContent
	// IndentationStyle is the style to enforce; nil disables the check.
	IndentationStyle *IndentationStyle
}

// SchemaError reports a config document that does not match the schema.
type SchemaError struct {
	Errors []cue.ValidationError
}

func (e *SchemaError) Error() string {
	msg := "config does not match schema"
	for _, ve := range e.Errors {
		msg += "\n  " + ve.Error()
	}
	return msg
}

// New validates raw and builds a Config from it.
func New(raw Raw) (*Config, error) {
	include := raw.Include
	if include == nil {
		include = DefaultInclude
	}

	if err := validatePatterns("include", include); err != nil {
		return nil, err
	}
	if err := validatePatterns("exclude", raw.Exclude); err != nil {
		return nil, err
	}

	forbidden, err := compileForbidden(raw.ForbiddenContent)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Include:          append([]string(nil), include...),
		Exclude:          append([]string(nil), raw.Exclude...),
		MaxLineLength:    raw.MaxLineLength,
		ForbiddenContent: forbidden,
	}

	if raw.IndentationStyle != nil {
		style, err := ParseIndentationStyle(*raw.IndentationStyle)
		if err != nil {
			return nil, err
		}
		cfg.IndentationStyle = &style
	}

	return cfg, nil
}

// Load reads the config file at path, validates it against the embedded
// schema and builds a Config. The format is taken from the file extension;
// files without one are read as TOML.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("cannot access config file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("toml")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	validator := cue.NewValidator()
	if err := validator.LoadSchemas(); err != nil {
		return nil, fmt.Errorf("error loading config schema: %w", err)
	}

	schemaErrs, err := validator.ValidateConfig(path, normalizeNumbers(v.AllSettings()))
	if err != nil {
		return nil, fmt.Errorf("error validating config file %s: %w", path, err)
	}
	if len(schemaErrs) > 0 {
		return nil, &SchemaError{Errors: schemaErrs}
	}

	var raw Raw
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg, err := New(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	return cfg, nil
}

// normalizeNumbers turns whole float64 values into int64. The JSON decoder
// reads every number as float64, which the schema's int constraint rejects.
func normalizeNumbers(settings map[string]any) map[string]any {
	for k, val := range settings {
		settings[k] = normalizeValue(val)
	}
	return settings
}

func normalizeValue(val any) any {
	switch tv := val.(type) {
	case float64:
		if tv == math.Trunc(tv) && math.Abs(tv) < math.MaxInt64 {
			return int64(tv)
		}
	case []any:
		for i := range tv {
			tv[i] = normalizeValue(tv[i])
		}
	case map[string]any:
		return normalizeNumbers(tv)
	}
	return val
}

// validatePatterns rejects globs doublestar cannot parse and globs that do
// not stay below the root.
func validatePatterns(field string, patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid %s pattern %q: %w", field, p, doublestar.ErrBadPattern)
		}
		if !isRelativePattern(p) {
			return fmt.Errorf("invalid %s pattern %q: %w", field, p, ErrPatternNotRelative)
		}
	}
	return nil
}

func isRelativePattern(p string) bool {
	if strings.HasPrefix(p, "/") || filepath.IsAbs(p) {
		return false
	}
	for _, elem := range strings.Split(p, "/") {
		if elem == ".." {
			return false
		}
	}
	return true
}

// compileForbidden compiles every source, keeping the source text alongside.
func compileForbidden(sources []string) (ForbiddenContent, error) {
	fc := ForbiddenContent{
		Patterns: make([]*regexp.Regexp, 0, len(sources)),
		Sources:  make([]string, 0, len(sources)),
	}

	for _, src := range sources {
		re, err := regexp.Compile(src)
		if err != nil {
			return ForbiddenContent{}, fmt.Errorf("invalid forbidden_content regex %q: %w", src, err)
		}
		fc.Patterns = append(fc.Patterns, re)
		fc.Sources = append(fc.Sources, src)
	}

	return fc, nil
}
