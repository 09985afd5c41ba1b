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

// Invocable is a method found on a candidate object, bound to it.
type Invocable interface {
	// Signature returns the declared signature the method was matched for.
	Signature() Signature
	// Method returns the bound method value.
	Method() reflect.Value
	// Call invokes the method with args shaped after Signature().In (a
	// variadic tail packed into a slice) and returns results converted to
	// the declared result types.
	Call(args []reflect.Value) []reflect.Value
}

// Resolver answers "does this candidate expose a method matching sig?".
// Absence is a normal outcome and is reported through ok, never as an error.
// Typical chain: universal guard -> signature matcher.
type Resolver interface {
	// Resolve returns an invocable bound to candidate, or ok=false.
	Resolve(candidate any, sig Signature, cfg Config) (inv Invocable, ok bool)
}
