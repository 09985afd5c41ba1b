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

// Package bind turns a view into ordinary Go funcs.
//
// A target is a pointer to a struct whose func-typed fields are named after
// interface methods:
//
//	var d struct {
//	    Quack func() string
//	    Swim  func(meters int) (int, error)
//	}
//	err := bind.Into(view, &d)
//	d.Quack()
//
// Every field call dispatches through the view when it is made. When the
// method cannot be resolved, a func whose last result is error returns the
// *apis.NoMatchingMethodError there; any other func panics with it.
//
// Fields are matched by name, or by the name in a `duck:"Name"` tag.
// `duck:"-"` skips a field, as do untagged fields that are not funcs.
package bind

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/duck/apis"
	uref "dirpx.dev/duck/utils/reflect"
)

var (
	// ErrNilView is returned when a nil view is bound.
	ErrNilView = errors.New("duck(bind): nil view provided")
	// ErrNotStructPtr is returned when the target is not a non-nil pointer to a struct.
	ErrNotStructPtr = errors.New("duck(bind): target must be a non-nil pointer to a struct")
	// ErrUndeclaredField is returned for a func field the interface does not declare.
	ErrUndeclaredField = errors.New("duck(bind): field names no declared method")
	// ErrFieldType is returned when a field's type differs from the declared signature.
	ErrFieldType = errors.New("duck(bind): field type does not match declared signature")
)

// tagKey is the struct tag consulted for method names.
const tagKey = "duck"

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Into fills the func fields of target with forwarders to view. Only the
// field declarations are checked here; delegates are consulted per call.
func Into(view apis.View, target any) error {
	if view == nil {
		return ErrNilView
	}
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPtr
	}

	iface := view.Interface()
	sv := rv.Elem()
	st := sv.Type()

	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		name, ok := methodName(f)
		if !ok {
			continue
		}
		sig, declared := iface.Lookup(name)
		if !declared {
			return fmt.Errorf("%w: %s.%s", ErrUndeclaredField, st, f.Name)
		}
		if err := sig.Validate(); err != nil {
			return err
		}
		if f.Type != sig.FuncType() {
			return fmt.Errorf("%w: %s.%s is %s, want %s", ErrFieldType, st, f.Name, f.Type, sig.FuncType())
		}
		sv.Field(i).Set(forwarder(view, sig, f.Type))
	}
	return nil
}

// Describe derives an interface descriptor from the func fields of the
// struct type t (or a pointer to it), using the same field rules as Into.
func Describe(t reflect.Type) (apis.Interface, error) {
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return apis.Interface{}, ErrNotStructPtr
	}
	var methods []apis.Signature
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, ok := methodName(f)
		if !ok {
			continue
		}
		if f.Type.Kind() != reflect.Func {
			return apis.Interface{}, fmt.Errorf("%w: %s.%s is not a func", ErrFieldType, t, f.Name)
		}
		methods = append(methods, uref.SignatureOf(name, f.Type))
	}
	return apis.Interface{Name: uref.Name(t), Methods: methods}, nil
}

// methodName returns the method a field binds to, or false to skip it.
func methodName(f reflect.StructField) (string, bool) {
	tag, tagged := f.Tag.Lookup(tagKey)
	if tag == "-" || !f.IsExported() {
		return "", false
	}
	if !tagged && f.Type.Kind() != reflect.Func {
		return "", false
	}
	if tag != "" {
		return tag, true
	}
	return f.Name, true
}

// forwarder builds a func of type ft that dispatches sig through view.
func forwarder(view apis.View, sig apis.Signature, ft reflect.Type) reflect.Value {
	returnsError := ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == errorType
	return reflect.MakeFunc(ft, func(args []reflect.Value) []reflect.Value {
		out, err := view.CallValues(sig, args)
		if err == nil {
			return out
		}
		if !returnsError {
			panic(err)
		}
		res := make([]reflect.Value, ft.NumOut())
		for i := range res {
			res[i] = reflect.Zero(ft.Out(i))
		}
		ev := reflect.New(errorType).Elem()
		ev.Set(reflect.ValueOf(err))
		res[len(res)-1] = ev
		return res
	})
}
