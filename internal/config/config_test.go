package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.Path != "" {
		t.Errorf("Input.Path = %q, want empty", cfg.Input.Path)
	}
	if cfg.Output.Path != "" {
		t.Errorf("Output.Path = %q, want empty", cfg.Output.Path)
	}
	if cfg.Headings.LegacyLevel3 {
		t.Error("Headings.LegacyLevel3 = true, want false")
	}
	if cfg.Rule.Width != 80 {
		t.Errorf("Rule.Width = %d, want 80", cfg.Rule.Width)
	}
	if cfg.Emphasis.Size != 12 {
		t.Errorf("Emphasis.Size = %v, want 12", cfg.Emphasis.Size)
	}
	if cfg.Code.Font != "Courier New" {
		t.Errorf("Code.Font = %q, want Courier New", cfg.Code.Font)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "rule width zero",
			mutate:  func(c *Config) { c.Rule.Width = 0 },
			wantErr: true,
			errMsg:  "rule.width",
		},
		{
			name:    "rule width too large",
			mutate:  func(c *Config) { c.Rule.Width = MaxRuleWidth + 1 },
			wantErr: true,
			errMsg:  "rule.width",
		},
		{
			name:   "rule width at max",
			mutate: func(c *Config) { c.Rule.Width = MaxRuleWidth },
		},
		{
			name:    "emphasis size too small",
			mutate:  func(c *Config) { c.Emphasis.Size = 0.5 },
			wantErr: true,
			errMsg:  "emphasis.size",
		},
		{
			name:    "empty code font",
			mutate:  func(c *Config) { c.Code.Font = "  " },
			wantErr: true,
			errMsg:  "code.font",
		},
		{
			name:    "code font too long",
			mutate:  func(c *Config) { c.Code.Font = strings.Repeat("f", MaxFontLength+1) },
			wantErr: true,
			errMsg:  "code.font too long",
		},
		{
			name:    "code color too long",
			mutate:  func(c *Config) { c.Code.Color = strings.Repeat("0", MaxColorLen+1) },
			wantErr: true,
			errMsg:  "code.color",
		},
		{
			name:    "output path too long",
			mutate:  func(c *Config) { c.Output.Path = strings.Repeat("p", MaxPathLength+1) },
			wantErr: true,
			errMsg:  "output.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("error should wrap ErrInvalidValue, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %q, want containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		content := `input:
  path: "docs/user_stories.md"
headings:
  legacyLevel3: true
rule:
  width: 40
code:
  theme: "monokai"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.Path != "docs/user_stories.md" {
			t.Errorf("Input.Path = %q", cfg.Input.Path)
		}
		if !cfg.Headings.LegacyLevel3 {
			t.Error("Headings.LegacyLevel3 = false, want true")
		}
		if cfg.Rule.Width != 40 {
			t.Errorf("Rule.Width = %d, want 40", cfg.Rule.Width)
		}
		if cfg.Code.Theme != "monokai" {
			t.Errorf("Code.Theme = %q, want monokai", cfg.Code.Theme)
		}
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "partial.yaml")
		if err := os.WriteFile(configPath, []byte("rule:\n  width: 10\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Code.Font != DefaultCodeFont {
			t.Errorf("Code.Font = %q, want default", cfg.Code.Font)
		}
		if cfg.Emphasis.Size != DefaultBoldSize {
			t.Errorf("Emphasis.Size = %v, want default", cfg.Emphasis.Size)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("rule: [unclosed"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "unknown.yaml")
		if err := os.WriteFile(configPath, []byte("watermark:\n  text: DRAFT\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("out of range value fails validation", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "range.yaml")
		if err := os.WriteFile(configPath, []byte("rule:\n  width: 0\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("config name resolves in current directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		if err := os.WriteFile("team.yml", []byte("rule:\n  width: 20\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig("team")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Rule.Width != 20 {
			t.Errorf("Rule.Width = %d, want 20", cfg.Rule.Width)
		}
	})

	t.Run("unknown config name lists searched paths", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		_, err := LoadConfig("nope")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nope.yaml") {
			t.Errorf("error should list tried paths, got %q", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	paths := SearchPaths("work")

	if len(paths) < 2 {
		t.Fatalf("expected at least 2 paths, got %v", paths)
	}
	if paths[0] != "work.yaml" || paths[1] != "work.yml" {
		t.Errorf("local paths should come first, got %v", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, configDirName) {
			t.Errorf("user path %q should live under %s", p, configDirName)
		}
	}
}
