package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/alnah/go-md2adf/adf"
	"github.com/alnah/go-md2adf/internal/fileutil"
	"github.com/alnah/go-md2adf/internal/hints"
	"github.com/alnah/go-md2adf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Field length limits for multi-tenant safety.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxLanguageLength = 64   // "objective-c", "powershell"
	MaxLayoutLength   = 20   // "full-width", "align-start"
	MaxPrefixLength   = 32   // Sequence id prefix
	MaxURLLength      = 2048
)

// Front matter handling.
const (
	FrontMatterKeep  = "keep"
	FrontMatterStrip = "strip"
)

// Task id modes.
const (
	IDModeUUID     = "uuid"
	IDModeSequence = "sequence"
)

// languagePattern matches fence info words such as "go", "c++", "f#".
var languagePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_+#.-]*$`)

// Config holds all configuration for document conversion.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Code   CodeConfig   `yaml:"code"`
	Media  MediaConfig  `yaml:"media"`
	IDs    IDsConfig    `yaml:"ids"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir  string `yaml:"defaultDir"`  // Default input directory (empty = must specify)
	FrontMatter string `yaml:"frontMatter"` // "keep" or "strip" (default: "keep")
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Indent     bool   `yaml:"indent"`     // Pretty-print JSON
}

// CodeConfig defines code block language options.
type CodeConfig struct {
	DefaultLanguage string `yaml:"defaultLanguage"` // Used when a fence declares none (default: "text")
	Normalize       bool   `yaml:"normalize"`       // "js" -> "javascript"
	Detect          bool   `yaml:"detect"`          // Guess undeclared languages from content
}

// MediaConfig defines image node options.
type MediaConfig struct {
	Layout  string `yaml:"layout"`  // mediaSingle layout (default: "center")
	BaseURL string `yaml:"baseURL"` // Resolves relative image and link targets (empty = keep as written)
}

// IDsConfig defines task list identifier generation.
type IDsConfig struct {
	Mode   string `yaml:"mode"`   // "uuid" or "sequence" (default: "uuid")
	Prefix string `yaml:"prefix"` // Prefix for sequence ids
}

// StripFrontMatter reports whether front matter is removed before conversion.
func (c *Config) StripFrontMatter() bool {
	return strings.EqualFold(c.Input.FrontMatter, FrontMatterStrip)
}

// SequentialIDs reports whether task ids come from a counter.
func (c *Config) SequentialIDs() bool {
	return strings.EqualFold(c.IDs.Mode, IDModeSequence)
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., API adapters, library users).
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"code.defaultLanguage", c.Code.DefaultLanguage, MaxLanguageLength},
		{"media.layout", c.Media.Layout, MaxLayoutLength},
		{"ids.prefix", c.IDs.Prefix, MaxPrefixLength},
		{"media.baseURL", c.Media.BaseURL, MaxURLLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	layouts := make([]any, len(adf.Layouts))
	for i, l := range adf.Layouts {
		layouts[i] = l
	}

	checks := []struct {
		field string
		err   error
	}{
		{"input.frontMatter", validation.Validate(strings.ToLower(c.Input.FrontMatter),
			validation.In(FrontMatterKeep, FrontMatterStrip))},
		{"code.defaultLanguage", validation.Validate(c.Code.DefaultLanguage,
			validation.Match(languagePattern))},
		{"media.layout", validation.Validate(c.Media.Layout,
			validation.In(layouts...))},
		{"media.baseURL", validation.Validate(c.Media.BaseURL,
			is.RequestURL)},
		{"ids.mode", validation.Validate(strings.ToLower(c.IDs.Mode),
			validation.In(IDModeUUID, IDModeSequence))},
	}
	for _, ch := range checks {
		if ch.err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, ch.field, ch.err)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration. Empty values let the
// converter apply its own defaults.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultDir: "", FrontMatter: FrontMatterKeep},
		Output: OutputConfig{DefaultDir: ""},
		Code:   CodeConfig{},
		Media:  MediaConfig{},
		IDs:    IDsConfig{Mode: IDModeUUID},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2adf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2adf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s%s", ErrConfigNotFound, strings.Join(triedPaths, ", "), hints.ForConfigNotFound(triedPaths))
}
