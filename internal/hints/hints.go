// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// installCommand is suggested when the DOCX backend cannot be initialized.
const installCommand = "go install github.com/alnah/go-md2docx/cmd/md2docx@latest"

// ForMissingCapability returns guidance when the document backend fails its startup probe.
func ForMissingCapability() string {
	return format("the DOCX writer failed to initialize; reinstall with: " + installCommand)
}

// ForMissingInput suggests how to point the converter at an input file.
// defaultName is the file looked up when no input argument is given.
func ForMissingInput(defaultName string) string {
	if defaultName == "" {
		return format("pass a markdown file or directory: md2docx convert <input>")
	}
	return format("pass a markdown file (md2docx convert <input>) or create " + defaultName + " in the current directory")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in ~/.config/go-md2docx/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2docx") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnknownTheme lists a few valid theme names.
func ForUnknownTheme(available []string) string {
	const shown = 8
	if len(available) == 0 {
		return ""
	}
	names := available
	suffix := ""
	if len(names) > shown {
		names = names[:shown]
		suffix = ", ..."
	}
	return format("available: " + strings.Join(names, ", ") + suffix)
}

// ForUnsupportedConstructs points at the check command.
func ForUnsupportedConstructs() string {
	return format("these render as plain text in the DOCX output")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
