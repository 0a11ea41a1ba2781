package main

// Notes:
// - Generated scripts are checked for the commands and flags they must
//   mention; shell syntax is not executed.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell Shell
		want  []string
	}{
		{ShellBash, []string{"complete -o filenames -F _md2docx md2docx", "convert", "--legacy-h3", "--code-theme", "monokai"}},
		{ShellZsh, []string{"#compdef md2docx", "'convert:", "--rule-width", "inspect"}},
		{ShellFish, []string{"complete -c md2docx", "-a check", "-l code-color", "-s o"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_Unsupported(t *testing.T) {
	t.Parallel()

	err := GenerateCompletion(&bytes.Buffer{}, "powershell")
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("error = %v, want ErrUnsupportedShell", err)
	}
}

func TestExtractFlagsFromFlagSet(t *testing.T) {
	t.Parallel()

	flags := extractFlagsFromFlagSet(buildConvertFlagSet(&convertFlags{}))

	byName := make(map[string]flagDef)
	for _, f := range flags {
		byName[f.Long] = f
	}

	if f := byName["output"]; f.Short != "o" || !f.IsDir {
		t.Errorf("output = %+v", f)
	}
	if f := byName["legacy-h3"]; !f.IsBool {
		t.Errorf("legacy-h3 should be bool: %+v", f)
	}
	if f := byName["code-theme"]; len(f.Values) == 0 {
		t.Error("code-theme should list theme names")
	}
	if f := byName["config"]; f.FileGlob == "" {
		t.Error("config should complete yaml files")
	}
}
