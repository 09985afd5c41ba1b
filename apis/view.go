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

// View is an object conforming to a target Interface. Every call is
// resolved when it is made, against the current state of whatever the view
// wraps.
type View interface {
	// Interface returns the descriptor the view conforms to.
	Interface() Interface
	// Call invokes the declared method name with args and returns its
	// results. An error result of the invoked method is returned as the last
	// element of out, not as err.
	Call(name string, args ...any) (out []any, err error)
	// CallValues invokes the method described by sig. args must match sig.In
	// exactly, with a variadic tail already packed into a slice.
	CallValues(sig Signature, args []reflect.Value) ([]reflect.Value, error)
}
