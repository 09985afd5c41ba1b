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

	"dirpx.dev/duck/apis"
)

// Call invokes name on v. It is the helper generated wrappers use for
// methods whose last result is an error.
func Call(v apis.View, name string, args ...any) ([]any, error) {
	return v.Call(name, args...)
}

// MustCall is like Call but panics with the error. Generated wrappers use it
// for methods that cannot report an error.
func MustCall(v apis.View, name string, args ...any) []any {
	out, err := v.Call(name, args...)
	if err != nil {
		panic(err)
	}
	return out
}

// Result returns out[i] as T; a nil entry yields T's zero value.
func Result[T any](out []any, i int) T {
	if out[i] == nil {
		var zero T
		return zero
	}
	return out[i].(T)
}

// Err returns out[i] as an error; a nil entry yields nil.
func Err(out []any, i int) error {
	if out[i] == nil {
		return nil
	}
	return out[i].(error)
}

// IsNoMatchingMethod reports whether err is a NoMatchingMethod failure.
func IsNoMatchingMethod(err error) bool {
	return errors.Is(err, apis.ErrNoMatchingMethod)
}

// Unwrap returns what v forwards to: the object behind an adapter view, the
// composite behind a composite view. Values that are not views are
// returned unchanged.
func Unwrap(v any) any {
	if u, ok := v.(interface{ Unwrap() any }); ok {
		return u.Unwrap()
	}
	return v
}
