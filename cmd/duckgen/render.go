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
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

const (
	duckPath = "dirpx.dev/duck"
	apisPath = "dirpx.dev/duck/apis"
)

var fileTmpl = template.Must(template.New("file").Funcs(template.FuncMap{
	"params":  params,
	"results": results,
	"body":    body,
}).Parse(`// Code generated by duckgen. DO NOT EDIT.

package {{.Package}}

import (
{{- if .NeedDuck}}
	"` + duckPath + `"
{{- end}}
	"` + apisPath + `"
{{- range .Imports}}
	{{.Name}} "{{.Path}}"
{{- end}}
)
{{range $v := .Views}}
// {{$v.Name}}View forwards {{$v.Iface}} to a duck view.
type {{$v.Name}}View struct{ v apis.View }

var _ {{$v.Iface}} = {{$v.Name}}View{}

// As{{$v.Name}} returns v as a {{$v.Iface}}. Methods no delegate answers
// return the lookup error when they end in error, and panic otherwise.
func As{{$v.Name}}(v apis.View) {{$v.Iface}} { return {{$v.Name}}View{v: v} }
{{range $m := $v.Methods}}
func (w {{$v.Name}}View) {{$m.Name}}({{params $m}}) {{results $m}} {
{{body $m}}
}
{{end}}{{end}}`))

// render produces the gofmt-ed source of f.
func render(f *file) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("duckgen: render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("duckgen: format: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}

// NeedDuck reports whether any view has a method to forward.
func (f *file) NeedDuck() bool {
	for _, v := range f.Views {
		if len(v.Methods) > 0 {
			return true
		}
	}
	return false
}

func params(m method) string {
	ps := make([]string, len(m.Params))
	for i, t := range m.Params {
		ps[i] = fmt.Sprintf("p%d %s", i, t)
	}
	return strings.Join(ps, ", ")
}

func results(m method) string {
	switch len(m.Results) {
	case 0:
		return ""
	case 1:
		return m.Results[0]
	}
	return "(" + strings.Join(m.Results, ", ") + ")"
}

// body writes the statements forwarding m through duck.Call or duck.MustCall.
// A variadic tail is passed as its slice; views accept it packed.
func body(m method) string {
	args := fmt.Sprintf("w.v, %q", m.Name)
	for i := range m.Params {
		args += fmt.Sprintf(", p%d", i)
	}

	var b strings.Builder
	if !m.ReturnsError {
		if len(m.Results) == 0 {
			fmt.Fprintf(&b, "\tduck.MustCall(%s)", args)
			return b.String()
		}
		fmt.Fprintf(&b, "\tout := duck.MustCall(%s)\n", args)
		fmt.Fprintf(&b, "\treturn %s", strings.Join(extract(m.Results, false), ", "))
		return b.String()
	}

	last := len(m.Results) - 1
	fmt.Fprintf(&b, "\tout, err := duck.Call(%s)\n", args)
	b.WriteString("\tif err != nil {\n")
	zeros := make([]string, 0, len(m.Results))
	for i, t := range m.Results[:last] {
		fmt.Fprintf(&b, "\t\tvar r%d %s\n", i, t)
		zeros = append(zeros, fmt.Sprintf("r%d", i))
	}
	zeros = append(zeros, "err")
	fmt.Fprintf(&b, "\t\treturn %s\n", strings.Join(zeros, ", "))
	b.WriteString("\t}\n")
	fmt.Fprintf(&b, "\treturn %s", strings.Join(extract(m.Results, true), ", "))
	return b.String()
}

// extract returns the expressions reading each result out of out.
func extract(rs []string, lastIsErr bool) []string {
	exprs := make([]string, len(rs))
	for i, t := range rs {
		if lastIsErr && i == len(rs)-1 {
			exprs[i] = fmt.Sprintf("duck.Err(out, %d)", i)
			continue
		}
		exprs[i] = fmt.Sprintf("duck.Result[%s](out, %d)", t, i)
	}
	return exprs
}
