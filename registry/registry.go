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

package registry

import (
	"sync"

	"dirpx.dev/duck/apis"
	uref "dirpx.dev/duck/utils/reflect"
)

// New constructs an empty, append-only delegate Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is an ordered delegate list guarded by a RWMutex.
//
// Entries are only ever appended, so a reader may walk the slice header it
// loaded under the read lock without holding the lock: nothing below that
// length is ever written again.
type registry struct {
	// mu guards delegates.
	mu sync.RWMutex
	// delegates holds the registered objects in insertion order.
	delegates []any
}

// Register appends each non-nil object in order and returns how many were
// stored. Untyped nils and typed nil references are dropped. Duplicates are
// kept.
func (r *registry) Register(objects ...any) int {
	if len(objects) == 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, o := range objects {
		if uref.IsNil(o) {
			continue
		}
		r.delegates = append(r.delegates, o)
		n++
	}
	return n
}

// Range walks the delegates present when Range was called, in order.
func (r *registry) Range(fn func(index int, delegate any) bool) {
	for i, d := range r.snapshot() {
		if !fn(i, d) {
			return
		}
	}
}

// Delegates returns a copy of the current delegate list.
func (r *registry) Delegates() []any {
	s := r.snapshot()
	out := make([]any, len(s))
	copy(out, s)
	return out
}

// Len returns the number of registered delegates.
func (r *registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.delegates)
}

// snapshot returns the current slice capped at its length, so later appends
// can never show through it.
func (r *registry) snapshot() []any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.delegates[:len(r.delegates):len(r.delegates)]
}
