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

import (
	"reflect"
)

// Strategy is a pluggable lookup step. A Resolver chains multiple strategies
// in order (e.g., universal guard -> exact -> assignable).
type Strategy interface {
	// TryMatch inspects candidate for a method matching sig according to cfg.
	// It returns (inv, true) if it decided the lookup; a nil inv with
	// handled=true is a definitive miss. (nil, false) falls through.
	TryMatch(candidate reflect.Value, sig Signature, cfg Config) (inv Invocable, handled bool)
}
