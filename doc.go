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

// Package duck lets a Go value be used through an interface it never
// declared, as long as it has methods with the right names and shapes.
//
// Two kinds of views are provided:
//
//   - An adapter view forwards every interface method to one object,
//     looked up by name and signature at call time.
//
//   - A composite view forwards each interface method to the first
//     delegate, in registration order, that can answer it. Delegates can
//     be registered at any time; a call sees every delegate registered
//     before it started.
//
// Neither view checks conformance up front. A method nobody can answer
// surfaces only when it is called, as an *apis.NoMatchingMethodError.
//
// # Design
//
// The core of duck is a read-mostly global snapshot (state). The snapshot
// holds three things:
//
//   - Config: rules that control matching (exact or assignable types,
//     whether universal methods such as String take part).
//
//   - Resolver: a read-only object that answers "how do I call method M
//     with signature S on this object?". The default resolver tries its
//     strategies in order:
//     1. Universal methods are vetoed when the config excludes them.
//     2. A method with the same name and a matching signature is bound.
//
//   - Builder: a pluggable factory that knows how to construct Resolver
//     and Registry instances for a given Config.
//
// Readers load the snapshot atomically and never take locks. Writers
// (SetConfig, SetResolver, SetBuilder, SetAll) take a short build mutex,
// derive a new snapshot and swap it in. Views capture the resolver and
// config at creation; later changes affect only views created afterwards.
//
// # Typed access
//
// Go cannot create types with methods at run time, so a view is reachable
// in three ways:
//
//	out, err := v.Call("Quack")              // dynamic
//	_ = duck.Bind(obj, &struct{ Quack func() string }{})
//	q := AsQuacker(v)                        // generated by cmd/duckgen
//
// # Pinning
//
// SetResolver pins the resolver: configuration and builder changes stop
// rebuilding it until UnpinResolver is called.
package duck
