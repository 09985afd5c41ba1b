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
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"strings"
	"testing"
)

const birdsSrc = `package birds

type Egg struct{ Size int }

type Quacker interface {
	Quack() string
}

type Layer interface {
	Lay(n int) (Egg, error)
	Sing(prefix string, notes ...string)
	Close() error
}

type Empty interface{}

type Box[T any] interface{ Get() T }

type private interface{ hidden() int }

type NotIface struct{}
`

func typecheck(tb testing.TB, src string) *types.Package {
	tb.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "birds.go", src, 0)
	if err != nil {
		tb.Fatalf("parse: %v", err)
	}
	var conf types.Config
	pkg, err := conf.Check("example.com/birds", fset, []*ast.File{f}, nil)
	if err != nil {
		tb.Fatalf("check: %v", err)
	}
	return pkg
}

func TestBuildFile_SamePackage(t *testing.T) {
	pkg := typecheck(t, birdsSrc)
	f, err := buildFile(pkg, "", []string{"Quacker", "private"})
	if err != nil {
		t.Fatalf("buildFile: %v", err)
	}
	if f.Package != "birds" || len(f.Imports) != 0 {
		t.Fatalf("file = %+v", f)
	}
	if f.Views[0].Iface != "Quacker" {
		t.Fatalf("iface = %q", f.Views[0].Iface)
	}
	want := method{Name: "Quack", Results: []string{"string"}}
	if got := f.Views[0].Methods[0]; !reflect.DeepEqual(got, want) {
		t.Fatalf("method = %+v, want %+v", got, want)
	}
	if f.Views[1].Methods[0].Name != "hidden" {
		t.Fatalf("unexported methods must be kept in the same package")
	}
}

func TestBuildFile_OtherPackage(t *testing.T) {
	pkg := typecheck(t, birdsSrc)
	f, err := buildFile(pkg, "views", []string{"Layer"})
	if err != nil {
		t.Fatalf("buildFile: %v", err)
	}
	if want := []imp{{Name: "birds", Path: "example.com/birds"}}; !reflect.DeepEqual(f.Imports, want) {
		t.Fatalf("imports = %+v", f.Imports)
	}
	v := f.Views[0]
	if v.Iface != "birds.Layer" || v.Name != "Layer" {
		t.Fatalf("view = %+v", v)
	}

	byName := map[string]method{}
	for _, m := range v.Methods {
		byName[m.Name] = m
	}
	lay := byName["Lay"]
	if !lay.ReturnsError || !reflect.DeepEqual(lay.Results, []string{"birds.Egg", "error"}) {
		t.Fatalf("Lay = %+v", lay)
	}
	sing := byName["Sing"]
	if !sing.Variadic || !reflect.DeepEqual(sing.Params, []string{"string", "...string"}) || sing.ReturnsError {
		t.Fatalf("Sing = %+v", sing)
	}
	if !byName["Close"].ReturnsError {
		t.Fatalf("Close must return error")
	}
}

func TestBuildFile_Errors(t *testing.T) {
	pkg := typecheck(t, birdsSrc)
	cases := []struct {
		name   string
		outPkg string
		want   error
	}{
		{"Missing", "", errNotFound},
		{"NotIface", "", errNotInterface},
		{"Egg", "", errNotInterface},
		{"Box", "", errGeneric},
		{"private", "views", errUnexported},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := buildFile(pkg, c.outPkg, []string{c.name})
			if !errors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
			if !strings.Contains(err.Error(), c.name) {
				t.Fatalf("error %q does not name %s", err, c.name)
			}
		})
	}
}
