/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command duckgen generates typed wrappers around duck views.
//
// For each named interface I it writes an IView struct implementing I and
// an AsI constructor, so a view can be handed to code that expects I:
//
//	duckgen -pkg ./birds Quacker Turducken
//	duckgen -config duckgen.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes duckgen and returns the process exit code.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("duckgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML file listing targets")
	dir := fs.String("pkg", ".", "directory of the package declaring the interfaces")
	output := fs.String("o", "", "output file (default duck_gen.go in -pkg)")
	outPkg := fs.String("output-pkg", "", "package clause of the output (default: the loaded package)")
	verbose := fs.Bool("v", false, "log debug output")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: duckgen [flags] Interface...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	targets, err := targetsFrom(*configPath, Target{
		Dir:        *dir,
		Output:     *output,
		Package:    *outPkg,
		Interfaces: fs.Args(),
	})
	if err != nil {
		log.Error("invalid arguments", slog.Any("err", err))
		fs.Usage()
		return 2
	}

	for _, t := range targets {
		if err := generate(t, log); err != nil {
			log.Error("generation failed", slog.String("dir", t.Dir), slog.Any("err", err))
			return 1
		}
	}
	return 0
}

// targetsFrom returns the config file's targets, or flagTarget when no
// config file is given.
func targetsFrom(configPath string, flagTarget Target) ([]Target, error) {
	if configPath != "" {
		if len(flagTarget.Interfaces) > 0 {
			return nil, errors.New("duckgen: interfaces given with -config")
		}
		cfg, err := loadConfig(configPath)
		if err != nil {
			return nil, err
		}
		return cfg.Targets, nil
	}
	if err := flagTarget.normalize(); err != nil {
		return nil, err
	}
	return []Target{flagTarget}, nil
}

// generate loads one target and writes its wrappers.
func generate(t Target, log *slog.Logger) error {
	log.Debug("loading package", slog.String("dir", t.Dir))
	tpkg, err := load(t.Dir)
	if err != nil {
		return err
	}
	f, err := buildFile(tpkg, t.Package, t.Interfaces)
	if err != nil {
		return err
	}
	src, err := render(f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(t.Output, src, 0o644); err != nil {
		return fmt.Errorf("duckgen: write: %w", err)
	}
	log.Info("wrote wrappers",
		slog.String("package", tpkg.Path()),
		slog.Any("interfaces", t.Interfaces),
		slog.String("output", t.Output))
	return nil
}
