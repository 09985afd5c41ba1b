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

package apis

import "reflect"

// Interface is a structural description of a target interface: a name and
// the methods a view must answer. Nothing about an Interface is checked
// against delegates until a method is actually called.
type Interface struct {
	// Name is a diagnostic name such as "animals.Duck".
	Name string
	// Type is the Go interface type the descriptor was built from.
	// Hand-built descriptors may leave it nil.
	Type reflect.Type
	// Methods holds the declared signatures.
	Methods []Signature
}

// NewInterface builds an ad-hoc descriptor from explicit signatures.
// Signatures are not checked here; a call through a view fails with
// ErrBadSignature when its signature does not pass Signature.Validate.
func NewInterface(name string, methods ...Signature) Interface {
	ms := make([]Signature, len(methods))
	copy(ms, methods)
	return Interface{Name: name, Methods: ms}
}

// Lookup returns the declared signature named name.
func (i Interface) Lookup(name string) (Signature, bool) {
	for _, m := range i.Methods {
		if m.Name == name {
			return m, true
		}
	}
	return Signature{}, false
}

// Qualified renders sig as a member of i, e.g. "animals.Duck.Quack() string".
func (i Interface) Qualified(sig Signature) string {
	if i.Name == "" {
		return sig.String()
	}
	return i.Name + "." + sig.String()
}
