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

package resolver

import (
	"context"
	"log/slog"
	"reflect"

	"dirpx.dev/duck/apis"
	uref "dirpx.dev/duck/utils/reflect"
)

// New constructs an apis.Resolver that tries the given strategies in order.
// Nil strategies are ignored. The returned resolver is safe for concurrent use
// provided strategies themselves are safe for concurrent TryMatch calls.
func New(strategies ...apis.Strategy) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving resolver over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Resolve runs strategies in order until one handles the lookup.
// A nil candidate, an unhandled lookup and a handled miss all report ok=false.
func (r chain) Resolve(candidate any, sig apis.Signature, cfg apis.Config) (apis.Invocable, bool) {
	if candidate == nil {
		return nil, false
	}
	v := reflect.ValueOf(candidate)
	for _, s := range r.strats {
		if inv, handled := s.TryMatch(v, sig, cfg); handled {
			trace(cfg, inv != nil, candidate, sig)
			return inv, inv != nil
		}
	}
	trace(cfg, false, candidate, sig)
	return nil, false
}

// trace logs the lookup outcome at debug level.
func trace(cfg apis.Config, found bool, candidate any, sig apis.Signature) {
	l := cfg.Log()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	msg := "duck: method not found"
	if found {
		msg = "duck: method resolved"
	}
	l.Debug(msg,
		slog.String("signature", sig.String()),
		slog.String("candidate", uref.TypeName(candidate)),
	)
}
