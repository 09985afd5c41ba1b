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

// Package call holds the argument and result plumbing shared by views.
package call

import (
	"fmt"
	"reflect"

	"dirpx.dev/duck/apis"
)

// Dynamic performs a by-name call on v: it looks the method up in the view's
// interface, converts args, dispatches through CallValues and unwraps the
// results.
func Dynamic(v apis.View, name string, args []any) ([]any, error) {
	iface := v.Interface()
	sig, ok := iface.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no method %q", apis.ErrNotDeclared, ifaceName(iface), name)
	}
	in, err := Args(sig, args)
	if err != nil {
		return nil, err
	}
	out, err := v.CallValues(sig, in)
	if err != nil {
		return nil, err
	}
	return Results(out), nil
}

// Args converts dynamic arguments into values typed exactly as sig.In.
//
// For a variadic signature the tail may be given either as individual
// elements or, when exactly len(sig.In) arguments are passed and the last
// one is already of the slice type, as that slice. A nil argument becomes
// the zero value of its parameter type.
func Args(sig apis.Signature, args []any) ([]reflect.Value, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	n := len(sig.In)
	if !sig.Variadic {
		if len(args) != n {
			return nil, fmt.Errorf("%w: %s takes %d argument(s), got %d", apis.ErrBadArguments, sig, n, len(args))
		}
		out := make([]reflect.Value, n)
		for i, a := range args {
			v, err := value(sig, i, sig.In[i], a)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	fixed := n - 1
	if len(args) < fixed {
		return nil, fmt.Errorf("%w: %s takes at least %d argument(s), got %d", apis.ErrBadArguments, sig, fixed, len(args))
	}
	out := make([]reflect.Value, n)
	for i := 0; i < fixed; i++ {
		v, err := value(sig, i, sig.In[i], args[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	st := sig.In[fixed]
	if len(args) == n && args[fixed] != nil && reflect.TypeOf(args[fixed]).AssignableTo(st) {
		v, err := value(sig, fixed, st, args[fixed])
		if err != nil {
			return nil, err
		}
		out[fixed] = v
		return out, nil
	}

	tail := reflect.MakeSlice(st, len(args)-fixed, len(args)-fixed)
	for i, a := range args[fixed:] {
		v, err := value(sig, fixed+i, st.Elem(), a)
		if err != nil {
			return nil, err
		}
		tail.Index(i).Set(v)
	}
	out[fixed] = tail
	return out, nil
}

// Check validates that args fit sig.In in count and type.
func Check(sig apis.Signature, args []reflect.Value) error {
	if err := sig.Validate(); err != nil {
		return err
	}
	if len(args) != len(sig.In) {
		return fmt.Errorf("%w: %s takes %d value(s), got %d", apis.ErrBadArguments, sig, len(sig.In), len(args))
	}
	for i, a := range args {
		if !a.IsValid() {
			return fmt.Errorf("%w: %s argument %d is the zero reflect.Value", apis.ErrBadArguments, sig, i)
		}
		if !a.Type().AssignableTo(sig.In[i]) {
			return fmt.Errorf("%w: %s argument %d: %s is not assignable to %s", apis.ErrBadArguments, sig, i, a.Type(), sig.In[i])
		}
	}
	return nil
}

// Results unwraps result values. Nil interface results become untyped nil.
func Results(vals []reflect.Value) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v.Interface()
	}
	return out
}

// value converts a to a value of type t.
func value(sig apis.Signature, i int, t reflect.Type, a any) (reflect.Value, error) {
	if a == nil {
		return reflect.Zero(t), nil
	}
	v := reflect.ValueOf(a)
	if v.Type() == t {
		return v, nil
	}
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s argument %d: %s is not assignable to %s", apis.ErrBadArguments, sig, i, v.Type(), t)
	}
	nv := reflect.New(t).Elem()
	nv.Set(v)
	return nv, nil
}

func ifaceName(i apis.Interface) string {
	if i.Name == "" {
		return "interface"
	}
	return i.Name
}
