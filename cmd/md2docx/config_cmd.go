package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// runConfigCmd prints the effective configuration as YAML, or with
// --paths the locations searched for a config name.
func runConfigCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	name := fs.StringP("config", "c", "", "config file name or path")
	paths := fs.Bool("paths", false, "list the locations searched for --config")
	fs.Usage = func() { printConfigUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, errHelp) {
			return ExitSuccess
		}
		printError(env, err)
		return ExitUsage
	}

	if *paths {
		lookup := *name
		if lookup == "" {
			lookup = "md2docx"
		}
		for _, p := range config.SearchPaths(lookup) {
			fmt.Fprintln(env.Stdout, p)
		}
		return ExitSuccess
	}

	cfg, err := loadConfig(*name, env)
	if err != nil {
		printError(env, err)
		return exitCodeFor(err)
	}

	out, err := yamlutil.Encode(cfg)
	if err != nil {
		printError(env, err)
		return ExitGeneral
	}
	_, _ = env.Stdout.Write(out)
	return ExitSuccess
}
