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

package config

import (
	"log/slog"

	"dirpx.dev/duck/apis"
)

const (
	// DefaultMatch represents the default for Match.
	// Assignable matching mirrors how a Go call site accepts arguments.
	DefaultMatch = apis.MatchAssignable
	// DefaultExcludeUniversal represents the default for ExcludeUniversal.
	// When false, universal methods participate in matching like any other.
	DefaultExcludeUniversal = false
)

// DefaultUniversalMethods lists the method names treated as universal when
// exclusion is enabled.
func DefaultUniversalMethods() []string {
	return []string{"String", "GoString", "Error", "Equal", "Hash", "Format"}
}

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure Match is a known mode.
	if cfg.Match != apis.MatchExact && cfg.Match != apis.MatchAssignable {
		cfg.Match = DefaultMatch
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Match:            DefaultMatch,
		ExcludeUniversal: DefaultExcludeUniversal,
		UniversalMethods: DefaultUniversalMethods(),
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMatch sets the Match option.
func WithMatch(m apis.MatchMode) Option {
	return func(c *apis.Config) {
		c.Match = m
	}
}

// WithExcludeUniversal sets the ExcludeUniversal option.
func WithExcludeUniversal(exclude bool) Option {
	return func(c *apis.Config) {
		c.ExcludeUniversal = exclude
	}
}

// WithUniversalMethods replaces the universal method set.
// Calling it with no names clears the set.
func WithUniversalMethods(names ...string) Option {
	return func(c *apis.Config) {
		c.UniversalMethods = append([]string(nil), names...)
	}
}

// WithLogger sets the logger used for resolution traces.
// A nil logger silences tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}
