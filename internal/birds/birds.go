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

// Package birds holds the interfaces of the flock used by the examples and
// the typed wrappers duckgen generates for them.
package birds

//go:generate go run dirpx.dev/duck/cmd/duckgen Quacker Turducken

// Quacker makes a duck noise.
type Quacker interface {
	Quack() string
}

// Turducken is answered by a flock: a duck, a turkey and a chicken
// registered on one composite.
type Turducken interface {
	Quacker
	Gobble() string
	Cluck() string
	Lay(n int) (int, error)
	Sing(prefix string, notes ...string) string
}
