package main

import (
	"io"
	"os"
	"time"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Config *config.Config // base settings when no --config is given
	Probe  func() error   // DOCX backend check; nil = md2docx.Probe
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: config.DefaultConfig(),
		Probe:  md2docx.Probe,
	}
}

func (e *Environment) probe() error {
	if e.Probe == nil {
		return md2docx.Probe()
	}
	return e.Probe()
}

// baseConfig returns a copy of the configured base, or the defaults.
func (e *Environment) baseConfig() *config.Config {
	if e.Config == nil {
		return config.DefaultConfig()
	}
	cfg := *e.Config
	return &cfg
}
