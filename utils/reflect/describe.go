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

package reflect

import (
	"errors"
	"path"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/duck/apis"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("duck(reflect): nil reflect.Type provided")
	// ErrReflectNotInterface indicates that the provided type is not an
	// interface type and cannot describe a target interface.
	ErrReflectNotInterface = errors.New("duck(reflect): type is not an interface")
)

// descriptorCache memoizes descriptors per interface type. Descriptors are
// immutable, so sharing them between callers is safe.
var descriptorCache sync.Map // key: reflect.Type, val: apis.Interface

// Describe builds the apis.Interface descriptor for the interface type t.
//
// Methods are listed in the order reflect reports them (sorted by name) and
// include methods promoted from embedded interfaces. The result is computed
// once per type.
func Describe(t reflect.Type) (apis.Interface, error) {
	if t == nil {
		return apis.Interface{}, ErrReflectNilType
	}
	if t.Kind() != reflect.Interface {
		return apis.Interface{}, ErrReflectNotInterface
	}
	if v, ok := descriptorCache.Load(t); ok {
		return v.(apis.Interface), nil
	}

	methods := make([]apis.Signature, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		methods = append(methods, SignatureOf(m.Name, m.Type))
	}
	iface := apis.Interface{Name: Name(t), Type: t, Methods: methods}

	v, _ := descriptorCache.LoadOrStore(t, iface)
	return v.(apis.Interface), nil
}

// SignatureOf forms the signature of a method named name with func type ft.
// ft must not include a receiver.
func SignatureOf(name string, ft reflect.Type) apis.Signature {
	sig := apis.Signature{
		Name:     name,
		In:       make([]reflect.Type, ft.NumIn()),
		Out:      make([]reflect.Type, ft.NumOut()),
		Variadic: ft.IsVariadic(),
	}
	for i := range sig.In {
		sig.In[i] = ft.In(i)
	}
	for i := range sig.Out {
		sig.Out[i] = ft.Out(i)
	}
	return sig
}

// Name returns a stable "pkg.Type" name for t. Pointers are unwrapped and
// generic instantiation parameters stripped. Unnamed types fall back to
// t.String().
func Name(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Ptr && t.Name() == "" {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	name := stripTypeParams(t.Name())
	if p := t.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}
	return name
}

// TypeName returns Name of v's dynamic type, or "nil".
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return Name(reflect.TypeOf(v))
}

// IsNil reports whether v is an untyped nil or a nil pointer. Nil slices,
// maps, funcs and chans of a named type are usable receivers and are not
// nil here.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
