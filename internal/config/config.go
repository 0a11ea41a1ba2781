package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Defaults of the legacy user_stories script.
const (
	DefaultInputPath = "user_stories.md"
	DefaultRuleWidth = 80
	DefaultBoldSize  = 12
	DefaultCodeFont  = "Courier New"
)

// Bounds for numeric and free-form fields.
const (
	MinRuleWidth  = 1
	MaxRuleWidth  = 500
	MinBoldSize   = 1
	MaxBoldSize   = 96
	MaxFontLength = 64
	MaxPathLength = 4096
	MaxColorLen   = 20 // "#RRGGBB" or "#RGB"
	MaxThemeLen   = 50
)

// configDirName is the per-user config directory under os.UserConfigDir().
const configDirName = "go-md2docx"

// Config holds all configuration for document generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Headings HeadingsConfig `yaml:"headings"`
	Rule     RuleConfig     `yaml:"rule"`
	Emphasis EmphasisConfig `yaml:"emphasis"`
	Code     CodeConfig     `yaml:"code"`
}

// InputConfig defines the input source.
type InputConfig struct {
	Path string `yaml:"path"` // File or directory; empty = user_stories.md
}

// OutputConfig defines the output destination.
type OutputConfig struct {
	Path string `yaml:"path"` // File (.docx) or directory; empty = next to the input
}

// HeadingsConfig controls heading rendering.
type HeadingsConfig struct {
	// LegacyLevel3 reproduces the legacy script's defect: "### " lines
	// emit the text of the last "## " heading instead of their own.
	LegacyLevel3 bool `yaml:"legacyLevel3"`
}

// RuleConfig controls how "---" separators render.
type RuleConfig struct {
	Width int `yaml:"width"` // number of underscores (default 80)
}

// EmphasisConfig controls standalone bold paragraphs.
type EmphasisConfig struct {
	Size float64 `yaml:"size"` // points (default 12)
}

// CodeConfig controls inline code runs.
type CodeConfig struct {
	Font  string `yaml:"font"`  // default "Courier New"
	Color string `yaml:"color"` // hex; wins over theme
	Theme string `yaml:"theme"` // chroma style name
}

// DefaultConfig returns the legacy script's settings with level 3 headings fixed.
func DefaultConfig() *Config {
	return &Config{
		Input:    InputConfig{Path: ""},
		Output:   OutputConfig{Path: ""},
		Headings: HeadingsConfig{LegacyLevel3: false},
		Rule:     RuleConfig{Width: DefaultRuleWidth},
		Emphasis: EmphasisConfig{Size: DefaultBoldSize},
		Code:     CodeConfig{Font: DefaultCodeFont},
	}
}

// Validate checks ranges and field lengths.
// Called automatically by LoadConfig; CLI overrides are validated again by the caller.
func (c *Config) Validate() error {
	if c.Rule.Width < MinRuleWidth || c.Rule.Width > MaxRuleWidth {
		return fmt.Errorf("%w: rule.width must be between %d and %d, got %d",
			ErrInvalidValue, MinRuleWidth, MaxRuleWidth, c.Rule.Width)
	}
	if c.Emphasis.Size < MinBoldSize || c.Emphasis.Size > MaxBoldSize {
		return fmt.Errorf("%w: emphasis.size must be between %d and %d, got %.1f",
			ErrInvalidValue, MinBoldSize, MaxBoldSize, c.Emphasis.Size)
	}
	if strings.TrimSpace(c.Code.Font) == "" {
		return fmt.Errorf("%w: code.font cannot be empty", ErrInvalidValue)
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.path", c.Input.Path, MaxPathLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"code.font", c.Code.Font, MaxFontLength},
		{"code.color", c.Code.Color, MaxColorLen},
		{"code.theme", c.Code.Theme, MaxThemeLen},
	}
	for _, f := range fields {
		if len(f.value) > f.max {
			return fmt.Errorf("%w: %s too long (%d chars, max %d)", ErrInvalidValue, f.name, len(f.value), f.max)
		}
	}

	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Missing keys keep their defaults. Returns error if the file is not found.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
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
	if err := yamlutil.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations LoadConfig tries for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations:
// the current directory first, then ~/.config/go-md2docx/.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
