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

// NewAssignableStrategy creates an apis.Strategy that accepts a candidate
// method whose parameters can receive the declared argument types and whose
// results can be assigned to the declared result types.
func NewAssignableStrategy() apis.Strategy {
	return assignableStrategy{}
}

// assignableStrategy is Go's analogue of argument subtyping: a method taking
// io.Reader answers a signature declaring *bytes.Buffer.
type assignableStrategy struct{}

// Ensure assignableStrategy implements apis.Strategy.
var _ apis.Strategy = (*assignableStrategy)(nil)

// TryMatch looks up sig.Name on candidate and compares types by assignability.
func (assignableStrategy) TryMatch(candidate reflect.Value, sig apis.Signature, _ apis.Config) (apis.Invocable, bool) {
	m, ok := lookup(candidate, sig.Name)
	if !ok || !assignableTypes(m.Type(), sig) {
		return nil, false
	}
	return Bind(m, sig), true
}

func assignableTypes(mt reflect.Type, sig apis.Signature) bool {
	if !shapeMatches(mt, sig) {
		return false
	}
	last := len(sig.In) - 1
	for i, t := range sig.In {
		if sig.Variadic && i == last {
			// Variadic tails are repacked element by element.
			if !t.Elem().AssignableTo(mt.In(i).Elem()) {
				return false
			}
			continue
		}
		if !t.AssignableTo(mt.In(i)) {
			return false
		}
	}
	for i, t := range sig.Out {
		if !mt.Out(i).AssignableTo(t) {
			return false
		}
	}
	return true
}
