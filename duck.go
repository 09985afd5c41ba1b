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

package duck

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/duck/apis"
	"dirpx.dev/duck/builder"
	"dirpx.dev/duck/config"
)

// init initializes the global state.
func init() {
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.res = b.BuildResolver(s.cfg, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("duck: builder returned nil resolver")
)

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg and rebuilds the resolver
// unless it is pinned. Views and composites created earlier keep the
// configuration they were created with.
func SetConfig(cfg apis.Config) {
	publish(func(old state) state {
		old.cfg = cfg
		if !old.pres {
			old.res = old.bld.BuildResolver(cfg, old.res)
		}
		return old
	})
}

// Resolver returns the global method resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver replaces the global resolver and pins it, so configuration
// and builder changes no longer rebuild it.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	publish(func(old state) state {
		old.res = res
		old.pres = true
		return old
	})
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the global builder and rebuilds the resolver with it
// unless the resolver is pinned.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	publish(func(old state) state {
		old.bld = b
		if !old.pres {
			old.res = b.BuildResolver(old.cfg, old.res)
		}
		return old
	})
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged, except that a
// nil res rebuilds the resolver from the (new) builder and unpins it. A
// non-nil res is pinned. This is mainly used by tests to get a clean state.
func SetAll(cfg *apis.Config, res apis.Resolver, bld apis.Builder) {
	publish(func(old state) state {
		if cfg != nil {
			old.cfg = *cfg
		}
		if bld != nil {
			old.bld = bld
		}
		if res != nil {
			old.res, old.pres = res, true
		} else {
			old.res, old.pres = old.bld.BuildResolver(old.cfg, old.res), false
		}
		return old
	})
}

// IsResolverPinned returns whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver stops configuration and builder changes from rebuilding the
// global resolver.
func PinResolver() {
	publish(func(old state) state {
		old.pres = true
		return old
	})
}

// UnpinResolver lets configuration and builder changes rebuild the global
// resolver again.
func UnpinResolver() {
	publish(func(old state) state {
		old.pres = false
		return old
	})
}

// publish derives the next state from a copy of the current one and stores
// it. It panics if the result carries no resolver.
func publish(next func(old state) state) {
	buildMu.Lock()
	defer buildMu.Unlock()

	n := next(*st.Load())
	if n.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(&n)
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global snapshot.
// Immutable once published via st.Store; writers build a new state and swap it.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// res is the global method resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// pres indicates whether res is pinned.
	pres bool
}
