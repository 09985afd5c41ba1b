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

package builder

import (
	"dirpx.dev/duck/apis"
	"dirpx.dev/duck/registry"
	"dirpx.dev/duck/resolver"
	"dirpx.dev/duck/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildResolver builds the default method resolver: the universal-method
// guard followed by the signature matcher. Both read their knobs from the
// Config handed to each Resolve call, so nothing from cfg is baked in and
// prev has no state worth carrying over.
func (b *builder) BuildResolver(_ apis.Config, _ apis.Resolver) apis.Resolver {
	return resolver.New(
		strategy.NewUniversalStrategy(),
		strategy.NewSignatureStrategy(),
	)
}

// BuildRegistry builds and returns a new, empty delegate registry.
func (b *builder) BuildRegistry(_ apis.Config) apis.Registry {
	return registry.New()
}
