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

// NewExactStrategy creates an apis.Strategy that accepts a candidate method
// only when its parameter and result types are identical to the signature.
func NewExactStrategy() apis.Strategy {
	return exactStrategy{}
}

// exactStrategy handles only hits; misses fall through.
type exactStrategy struct{}

// Ensure exactStrategy implements apis.Strategy.
var _ apis.Strategy = (*exactStrategy)(nil)

// TryMatch looks up sig.Name on candidate and compares types exactly.
func (exactStrategy) TryMatch(candidate reflect.Value, sig apis.Signature, _ apis.Config) (apis.Invocable, bool) {
	m, ok := lookup(candidate, sig.Name)
	if !ok || !exactTypes(m.Type(), sig) {
		return nil, false
	}
	return Bind(m, sig), true
}

func exactTypes(mt reflect.Type, sig apis.Signature) bool {
	if !shapeMatches(mt, sig) {
		return false
	}
	for i, t := range sig.In {
		if mt.In(i) != t {
			return false
		}
	}
	for i, t := range sig.Out {
		if mt.Out(i) != t {
			return false
		}
	}
	return true
}
