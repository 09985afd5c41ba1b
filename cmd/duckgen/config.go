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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// defaultOutput is the file name used when a target names no output.
const defaultOutput = "duck_gen.go"

var errNoInterfaces = errors.New("duckgen: no interfaces named")

// Config is the file form of a duckgen run.
//
//	targets:
//	  - dir: ./birds
//	    output: ./birds/views_gen.go
//	    package: birds
//	    interfaces: [Quacker, Turducken]
type Config struct {
	Targets []Target `yaml:"targets"`
}

// Target is one package to load and the interfaces to wrap from it.
type Target struct {
	// Dir is the directory of the package declaring the interfaces.
	Dir string `yaml:"dir"`
	// Output is the generated file. Defaults to duck_gen.go in Dir.
	Output string `yaml:"output"`
	// Package is the package clause of the generated file. Defaults to the
	// loaded package's name.
	Package string `yaml:"package"`
	// Interfaces lists the interface type names to wrap.
	Interfaces []string `yaml:"interfaces"`
}

// loadConfig reads and validates a YAML config. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("duckgen: read config: %w", err)
	}
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("duckgen: parse %s: %w", path, err)
	}
	if len(cfg.Targets) == 0 {
		return Config{}, fmt.Errorf("duckgen: %s: no targets", path)
	}
	for i := range cfg.Targets {
		if err := cfg.Targets[i].normalize(); err != nil {
			return Config{}, fmt.Errorf("%w (target %d in %s)", err, i, path)
		}
	}
	return cfg, nil
}

// normalize fills defaults and checks that t names something to generate.
func (t *Target) normalize() error {
	if len(t.Interfaces) == 0 {
		return errNoInterfaces
	}
	if t.Dir == "" {
		t.Dir = "."
	}
	if t.Output == "" {
		t.Output = filepath.Join(t.Dir, defaultOutput)
	}
	return nil
}
