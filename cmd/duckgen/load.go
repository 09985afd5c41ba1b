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
	"fmt"
	"go/types"
	"regexp"
	"sort"
	"strconv"

	"golang.org/x/tools/go/packages"
)

var (
	errNotFound     = errors.New("duckgen: interface not found")
	errNotInterface = errors.New("duckgen: not an interface type")
	errGeneric      = errors.New("duckgen: generic interfaces are not supported")
	errUnexported   = errors.New("duckgen: unexported method cannot be forwarded from another package")
)

// load type-checks the package in dir.
func load(dir string) (*types.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("duckgen: load %s: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("duckgen: load %s: got %d packages, want 1", dir, len(pkgs))
	}
	p := pkgs[0]
	if len(p.Errors) > 0 {
		errs := make([]error, len(p.Errors))
		for i, e := range p.Errors {
			errs[i] = e
		}
		return nil, fmt.Errorf("duckgen: load %s: %w", dir, errors.Join(errs...))
	}
	return p.Types, nil
}

// file is the render model of one generated file.
type file struct {
	Package string
	Imports []imp
	Views   []view
}

type imp struct {
	Name string
	Path string
}

type view struct {
	// Iface is the interface type as written in the generated file.
	Iface string
	// Name is the interface's bare name.
	Name    string
	Methods []method
}

type method struct {
	Name     string
	Params   []string
	Results  []string
	Variadic bool
	// ReturnsError is set when the last result is the error type.
	ReturnsError bool
}

// buildFile collects the named interfaces of tpkg into a render model for a
// file in package outPkg. An empty outPkg means tpkg's own package.
func buildFile(tpkg *types.Package, outPkg string, names []string) (*file, error) {
	if outPkg == "" {
		outPkg = tpkg.Name()
	}
	same := outPkg == tpkg.Name()

	f := &file{Package: outPkg}
	taken := map[string]bool{}
	for _, n := range reserved {
		taken[n] = true
	}
	if same {
		for _, n := range tpkg.Scope().Names() {
			taken[n] = true
		}
	}
	seen := map[string]string{}
	qual := func(p *types.Package) string {
		if same && p == tpkg {
			return ""
		}
		if name, ok := seen[p.Path()]; ok {
			return name
		}
		name := importName(p.Name(), taken)
		taken[name] = true
		seen[p.Path()] = name
		f.Imports = append(f.Imports, imp{Name: name, Path: p.Path()})
		return name
	}

	for _, name := range names {
		obj, ok := tpkg.Scope().Lookup(name).(*types.TypeName)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", errNotFound, tpkg.Path(), name)
		}
		if named, ok := obj.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
			return nil, fmt.Errorf("%w: %s", errGeneric, name)
		}
		it, ok := obj.Type().Underlying().(*types.Interface)
		if !ok {
			return nil, fmt.Errorf("%w: %s", errNotInterface, name)
		}

		v := view{Iface: types.TypeString(obj.Type(), qual), Name: name}
		for i := 0; i < it.NumMethods(); i++ {
			fn := it.Method(i)
			if !fn.Exported() && !same {
				return nil, fmt.Errorf("%w: %s.%s", errUnexported, name, fn.Name())
			}
			v.Methods = append(v.Methods, methodOf(fn, qual))
		}
		f.Views = append(f.Views, v)
	}

	sort.Slice(f.Imports, func(i, j int) bool { return f.Imports[i].Path < f.Imports[j].Path })
	return f, nil
}

// reserved are the identifiers a generated file binds itself: its own
// imports and the receiver and locals of forwarding methods.
var reserved = []string{"duck", "apis", "w", "v", "out", "err"}

// localName matches the generated parameter and zero-value names.
var localName = regexp.MustCompile(`^[pr][0-9]+$`)

// importName returns base, or base2, base3, ... when base is taken. Names
// that look like generated locals get a "pkg" suffix first.
func importName(base string, taken map[string]bool) string {
	if localName.MatchString(base + "0") {
		base += "pkg"
	}
	if !taken[base] {
		return base
	}
	for i := 2; ; i++ {
		if n := base + strconv.Itoa(i); !taken[n] {
			return n
		}
	}
}

func methodOf(fn *types.Func, qual types.Qualifier) method {
	sig := fn.Type().(*types.Signature)
	m := method{Name: fn.Name(), Variadic: sig.Variadic()}

	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		t := params.At(i).Type()
		if m.Variadic && i == params.Len()-1 {
			m.Params = append(m.Params, "..."+types.TypeString(t.(*types.Slice).Elem(), qual))
			continue
		}
		m.Params = append(m.Params, types.TypeString(t, qual))
	}

	results := sig.Results()
	for i := 0; i < results.Len(); i++ {
		m.Results = append(m.Results, types.TypeString(results.At(i).Type(), qual))
	}
	if n := results.Len(); n > 0 && types.Identical(results.At(n-1).Type(), types.Universe.Lookup("error").Type()) {
		m.ReturnsError = true
	}
	return m
}
