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
	"errors"
	"strconv"
)

var (
	// ErrNoMatchingMethod is matched by every *NoMatchingMethodError.
	ErrNoMatchingMethod = errors.New("duck(apis): no matching method")
	// ErrNotDeclared is returned when a view is asked for a method its
	// interface does not declare.
	ErrNotDeclared = errors.New("duck(apis): method not declared by interface")
	// ErrBadArguments is returned when call arguments do not fit the
	// declared signature.
	ErrBadArguments = errors.New("duck(apis): arguments do not match signature")
	// ErrBadSignature is returned for a hand-built Signature that cannot
	// describe a Go method.
	ErrBadSignature = errors.New("duck(apis): malformed signature")
)

// NoMatchingMethodError reports a declared signature that the underlying
// object, or every delegate of a composite, failed to satisfy.
type NoMatchingMethodError struct {
	// Interface is the descriptor the call was made through.
	Interface Interface
	// Signature is the unmatched signature.
	Signature Signature
	// Delegates is the number of delegates consulted, or -1 for a
	// single-object adapter.
	Delegates int
}

// Error implements error.
func (e *NoMatchingMethodError) Error() string {
	msg := "duck(apis): no matching method " + e.Interface.Qualified(e.Signature)
	if e.Delegates >= 0 {
		msg += ": no registered delegate (of " + strconv.Itoa(e.Delegates) + ") satisfied it"
	}
	return msg
}

// Is makes errors.Is(err, ErrNoMatchingMethod) hold.
func (e *NoMatchingMethodError) Is(target error) bool {
	return target == ErrNoMatchingMethod
}
