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

package strategy

import (
	"reflect"

	"dirpx.dev/duck/apis"
)

// bound is a method value matched for a declared signature.
type bound struct {
	sig apis.Signature
	fn  reflect.Value
}

// Ensure bound implements apis.Invocable.
var _ apis.Invocable = (*bound)(nil)

// Bind wraps the method value fn as an apis.Invocable for sig. The caller
// is responsible for fn being compatible with sig.
func Bind(fn reflect.Value, sig apis.Signature) apis.Invocable {
	return &bound{sig: sig, fn: fn}
}

// Signature returns the declared signature.
func (b *bound) Signature() apis.Signature { return b.sig }

// Method returns the bound method value.
func (b *bound) Method() reflect.Value { return b.fn }

// Call invokes the method and converts its results to the declared types.
func (b *bound) Call(args []reflect.Value) []reflect.Value {
	var out []reflect.Value
	if b.sig.Variadic {
		out = b.fn.CallSlice(b.repackTail(args))
	} else {
		out = b.fn.Call(args)
	}
	for i, v := range out {
		if want := b.sig.Out[i]; v.Type() != want {
			nv := reflect.New(want).Elem()
			nv.Set(v)
			out[i] = nv
		}
	}
	return out
}

// repackTail copies the variadic slice into the method's own slice type when
// the two differ (e.g. ...io.Reader declared, ...any accepted).
func (b *bound) repackTail(args []reflect.Value) []reflect.Value {
	last := len(args) - 1
	if last < 0 {
		return args
	}
	want := b.fn.Type().In(last)
	tail := args[last]
	if tail.Type() == want {
		return args
	}
	s := reflect.MakeSlice(want, tail.Len(), tail.Len())
	for i := 0; i < tail.Len(); i++ {
		s.Index(i).Set(tail.Index(i))
	}
	re := make([]reflect.Value, len(args))
	copy(re, args)
	re[last] = s
	return re
}

// lookup returns candidate's method named name from its own method set.
func lookup(candidate reflect.Value, name string) (reflect.Value, bool) {
	if !candidate.IsValid() {
		return reflect.Value{}, false
	}
	m := candidate.MethodByName(name)
	return m, m.IsValid()
}

// shapeMatches checks arity, result count and the variadic flag. Malformed
// signatures never match.
func shapeMatches(mt reflect.Type, sig apis.Signature) bool {
	return sig.Validate() == nil &&
		mt.NumIn() == len(sig.In) &&
		mt.NumOut() == len(sig.Out) &&
		mt.IsVariadic() == sig.Variadic
}
