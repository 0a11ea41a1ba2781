package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/fileutil"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string      `json:"status"` // "ready", "warnings", "errors"
	Backend  backendInfo `json:"backend"`
	Env      envInfo     `json:"environment"`
	System   systemInfo  `json:"system"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// backendInfo holds the DOCX writer probe result.
type backendInfo struct {
	Ready      bool   `json:"ready"`
	Error      string `json:"error,omitempty"`
	CodeThemes int    `json:"code_themes"`
}

// envInfo holds runtime details.
type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	GoVersion  string `json:"go_version"`
	GOMAXPROCS int    `json:"gomaxprocs"`
	Workers    int    `json:"default_workers"`
}

// systemInfo holds filesystem check results.
type systemInfo struct {
	TempWritable     bool   `json:"temp_writable"`
	DefaultInput     string `json:"default_input"`
	DefaultInputSeen bool   `json:"default_input_found"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 4 = backend unavailable.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	switch {
	case !result.Backend.Ready:
		return ExitCapability
	case result.Status == statusErrors:
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			GoVersion:  runtime.Version(),
			GOMAXPROCS: runtime.GOMAXPROCS(0),
			Workers:    md2docx.ResolvePoolSize(0),
		},
	}

	checkBackend(result, env)
	checkSystem(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

func checkBackend(result *doctorResult, env *Environment) {
	result.Backend.CodeThemes = len(md2docx.CodeThemes())

	if err := env.probe(); err != nil {
		result.Backend.Error = err.Error()
		result.Errors = append(result.Errors, fmt.Sprintf("DOCX backend: %v", err))
		return
	}
	result.Backend.Ready = true

	if result.Backend.CodeThemes == 0 {
		result.Warnings = append(result.Warnings, "No code themes registered; --code-theme will reject every name")
	}
}

func checkSystem(result *doctorResult) {
	// Check temp directory is writable
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "md2docx-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}

	result.System.DefaultInput = config.DefaultInputPath
	result.System.DefaultInputSeen = fileutil.FileExists(config.DefaultInputPath)
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "md2docx doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "DOCX backend")
	if r.Backend.Ready {
		fmt.Fprintln(w, "  [OK] Writer: styles, numbering and save verified")
	} else {
		fmt.Fprintln(w, "  [ERROR] Writer: unavailable")
	}
	fmt.Fprintf(w, "  [OK] Code themes: %d\n", r.Backend.CodeThemes)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	fmt.Fprintf(w, "  [OK] Go: %s\n", r.Env.GoVersion)
	fmt.Fprintf(w, "  [OK] GOMAXPROCS: %d (default workers: %d)\n", r.Env.GOMAXPROCS, r.Env.Workers)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	if r.System.DefaultInputSeen {
		fmt.Fprintf(w, "  [OK] %s: found\n", r.System.DefaultInput)
	} else {
		fmt.Fprintf(w, "  [--] %s: not in current directory\n", r.System.DefaultInput)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to convert")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	default:
		fmt.Fprintln(w, "Status: Not ready")
	}
}
