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

package strategy

import (
	"reflect"

	"dirpx.dev/duck/apis"
)

// NewUniversalStrategy creates an apis.Strategy that vetoes universal
// methods (String, Error, Equal, ...) when cfg.ExcludeUniversal is set.
func NewUniversalStrategy() apis.Strategy {
	return &universalStrategy{}
}

// universalStrategy is a guard: it never produces a hit, it only ends the
// chain with a definitive miss.
type universalStrategy struct{}

// Ensure universalStrategy implements apis.Strategy.
var _ apis.Strategy = (*universalStrategy)(nil)

// TryMatch reports a handled miss for excluded names and falls through otherwise.
func (*universalStrategy) TryMatch(_ reflect.Value, sig apis.Signature, cfg apis.Config) (apis.Invocable, bool) {
	if cfg.IsUniversal(sig.Name) {
		return nil, true
	}
	return nil, false
}
