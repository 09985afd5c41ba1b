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
	"io"
	"log/slog"
)

// MatchMode selects how parameter and result types of a candidate method are
// compared against a declared signature.
type MatchMode uint8

const (
	// MatchAssignable accepts a candidate whose parameters can receive the
	// declared argument types and whose results can be assigned to the
	// declared result types.
	MatchAssignable MatchMode = iota
	// MatchExact requires identical parameter and result types.
	MatchExact
)

// String returns the mode name.
func (m MatchMode) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchAssignable:
		return "assignable"
	default:
		return "unknown"
	}
}

// Config carries read-only resolution knobs that influence strategies.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Match controls how candidate method types are compared to a declared
	// signature.
	Match MatchMode

	// ExcludeUniversal keeps the methods listed in UniversalMethods out of
	// delegate matching. Calls to them then fail with NoMatchingMethod.
	ExcludeUniversal bool

	// UniversalMethods names the methods treated as universal
	// (e.g. "String", "Error", "Equal"). Only consulted when ExcludeUniversal
	// is set.
	UniversalMethods []string

	// Logger receives debug traces of resolution. Nil means discard.
	Logger *slog.Logger
}

// discard is shared by every Config without a logger.
var discard = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))

// Log returns the configured logger, or a logger that drops everything.
func (c Config) Log() *slog.Logger {
	if c.Logger == nil {
		return discard
	}
	return c.Logger
}

// IsUniversal reports whether name is excluded from matching under c.
func (c Config) IsUniversal(name string) bool {
	if !c.ExcludeUniversal {
		return false
	}
	for _, u := range c.UniversalMethods {
		if u == name {
			return true
		}
	}
	return false
}
