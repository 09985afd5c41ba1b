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

// Package composite aggregates several delegate objects behind one view.
//
// A Composite holds an ordered, append-only list of delegates. A view
// requested for any target interface resolves each call to the first
// delegate, in registration order, that has a matching method. If two
// delegates both implement a signature, the lower index always answers;
// callers who want a different winner change the registration order.
//
// Resolution happens on every call against the live registry, so delegates
// registered after a view was created are visible to it.
package composite

import (
	"context"
	"log/slog"
	"reflect"

	"dirpx.dev/duck/apis"
	"dirpx.dev/duck/builder"
	"dirpx.dev/duck/utils/call"
	uref "dirpx.dev/duck/utils/reflect"
)

// Composite is an ordered set of delegates that can be viewed as any
// interface.
type Composite struct {
	reg apis.Registry
	res apis.Resolver
	cfg apis.Config
}

// New creates a Composite over reg using res for method lookup. A nil reg or
// res is replaced by the default builder's.
func New(reg apis.Registry, res apis.Resolver, cfg apis.Config) *Composite {
	b := builder.New()
	if reg == nil {
		reg = b.BuildRegistry(cfg)
	}
	if res == nil {
		res = b.BuildResolver(cfg, nil)
	}
	return &Composite{reg: reg, res: res, cfg: cfg}
}

// Register appends each non-nil object in order and returns how many were
// stored. Calls accumulate; nothing is ever replaced or removed.
func (c *Composite) Register(objects ...any) int {
	return c.reg.Register(objects...)
}

// Delegates returns a copy of the registered delegates in order.
func (c *Composite) Delegates() []any {
	return c.reg.Delegates()
}

// Len returns the number of registered delegates.
func (c *Composite) Len() int {
	return c.reg.Len()
}

// Adapt returns a view of the composite conforming to iface. The view is
// bound to the composite, not to a snapshot of its delegates.
func (c *Composite) Adapt(iface apis.Interface) apis.View {
	return &view{c: c, iface: iface}
}

// view dispatches through its composite's live registry.
type view struct {
	c     *Composite
	iface apis.Interface
}

// Ensure view implements apis.View.
var _ apis.View = (*view)(nil)

// Interface returns the descriptor the view conforms to.
func (v *view) Interface() apis.Interface { return v.iface }

// Call invokes the declared method name on the first delegate that has it.
func (v *view) Call(name string, args ...any) ([]any, error) {
	return call.Dynamic(v, name, args)
}

// CallValues walks the delegates in registration order and invokes the first
// match. No delegate is invoked when none matches.
func (v *view) CallValues(sig apis.Signature, args []reflect.Value) ([]reflect.Value, error) {
	if err := call.Check(sig, args); err != nil {
		return nil, err
	}

	var (
		inv    apis.Invocable
		chosen any
		index  = -1
		seen   int
	)
	v.c.reg.Range(func(i int, d any) bool {
		seen++
		if m, ok := v.c.res.Resolve(d, sig, v.c.cfg); ok {
			inv, chosen, index = m, d, i
			return false
		}
		return true
	})

	if inv == nil {
		return nil, &apis.NoMatchingMethodError{Interface: v.iface, Signature: sig, Delegates: seen}
	}
	v.trace(sig, chosen, index)
	return inv.Call(args), nil
}

// trace logs which delegate answered at debug level.
func (v *view) trace(sig apis.Signature, delegate any, index int) {
	l := v.c.cfg.Log()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("duck: delegate selected",
		slog.String("iface", v.iface.Name),
		slog.String("signature", sig.String()),
		slog.String("delegate", uref.TypeName(delegate)),
		slog.Int("index", index),
	)
}

// Unwrap returns the composite behind the view.
func (v *view) Unwrap() any { return v.c }
