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

// NewSignatureStrategy creates an apis.Strategy that picks exact or
// assignable matching from cfg.Match on every lookup.
func NewSignatureStrategy() apis.Strategy {
	return signatureStrategy{}
}

// signatureStrategy defers the match mode to the Config of each call.
type signatureStrategy struct{}

// Ensure signatureStrategy implements apis.Strategy.
var _ apis.Strategy = (*signatureStrategy)(nil)

// TryMatch dispatches to the exact or assignable comparison.
func (signatureStrategy) TryMatch(candidate reflect.Value, sig apis.Signature, cfg apis.Config) (apis.Invocable, bool) {
	if cfg.Match == apis.MatchExact {
		return exactStrategy{}.TryMatch(candidate, sig, cfg)
	}
	return assignableStrategy{}.TryMatch(candidate, sig, cfg)
}
