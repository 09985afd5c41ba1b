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

// Registry is the ordered, append-only delegate list owned by a Composite.
// Insertion order is significant and never changes.
type Registry interface {
	// Register appends the non-nil objects in order and returns how many
	// were stored.
	Register(objects ...any) int
	// Range calls fn for each delegate in registration order until fn
	// returns false. Delegates registered during the walk are not visited.
	Range(fn func(index int, delegate any) bool)
	// Delegates returns a copy of the current delegate list.
	Delegates() []any
	// Len returns the number of registered delegates.
	Len() int
}
