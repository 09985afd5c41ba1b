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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(tb testing.TB, body string) string {
	tb.Helper()
	p := filepath.Join(tb.TempDir(), "duckgen.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		tb.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadConfig_Defaults(t *testing.T) {
	p := writeConfig(t, `
targets:
  - dir: ./birds
    interfaces: [Quacker]
  - output: views.go
    package: views
    interfaces: [Layer, Quacker]
`)
	cfg, err := loadConfig(p)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if len(cfg.Targets) != 2 {
		t.Fatalf("targets = %+v", cfg.Targets)
	}
	if got := cfg.Targets[0].Output; got != filepath.Join("birds", defaultOutput) {
		t.Fatalf("default output = %q", got)
	}
	second := cfg.Targets[1]
	if second.Dir != "." || second.Output != "views.go" || second.Package != "views" || len(second.Interfaces) != 2 {
		t.Fatalf("second target = %+v", second)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "targets:\n  - dir: .\n    interfaces: [A]\n    extra: 1\n",
		"no targets":    "targets: []\n",
		"no interfaces": "targets:\n  - dir: .\n",
		"bad yaml":      "targets: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, body)); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}

	_, err := loadConfig(writeConfig(t, cases["no interfaces"]))
	if !errors.Is(err, errNoInterfaces) {
		t.Fatalf("err = %v, want errNoInterfaces", err)
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing file must fail")
	}
}

func TestTargetsFrom(t *testing.T) {
	ts, err := targetsFrom("", Target{Dir: "x", Interfaces: []string{"A"}})
	if err != nil || len(ts) != 1 || ts[0].Output != filepath.Join("x", defaultOutput) {
		t.Fatalf("targets = %+v, %v", ts, err)
	}
	if _, err := targetsFrom("", Target{Dir: "."}); !errors.Is(err, errNoInterfaces) {
		t.Fatalf("err = %v, want errNoInterfaces", err)
	}
	p := writeConfig(t, "targets:\n  - interfaces: [A]\n")
	if _, err := targetsFrom(p, Target{Interfaces: []string{"B"}}); err == nil {
		t.Fatalf("interfaces together with -config must fail")
	}
}

func TestRun_Usage(t *testing.T) {
	var buf bytes.Buffer
	if code := run([]string{"-h"}, &buf); code != 0 {
		t.Fatalf("-h exit = %d", code)
	}
	if !strings.Contains(buf.String(), "usage: duckgen") {
		t.Fatalf("usage not printed: %q", buf.String())
	}

	buf.Reset()
	if code := run(nil, &buf); code != 2 {
		t.Fatalf("no interfaces exit = %d", code)
	}
	if code := run([]string{"-nope"}, &buf); code != 2 {
		t.Fatalf("bad flag exit = %d", code)
	}
}
