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

// Package adapter reinterprets a single object as a target interface.
package adapter

import (
	"errors"
	"reflect"

	"dirpx.dev/duck/apis"
	"dirpx.dev/duck/utils/call"
	uref "dirpx.dev/duck/utils/reflect"
)

var (
	// ErrNilObject is returned when a nil object is adapted.
	ErrNilObject = errors.New("duck(adapter): nil object provided")
	// ErrNilResolver is returned when no resolver is provided.
	ErrNilResolver = errors.New("duck(adapter): nil resolver provided")
)

// New returns a view of object conforming to iface. Nothing is checked
// against object until a method is called; every call re-resolves.
func New(object any, iface apis.Interface, res apis.Resolver, cfg apis.Config) (apis.View, error) {
	if uref.IsNil(object) {
		return nil, ErrNilObject
	}
	if res == nil {
		return nil, ErrNilResolver
	}
	return &view{object: object, iface: iface, res: res, cfg: cfg}, nil
}

// view forwards calls to a single underlying object.
type view struct {
	object any
	iface  apis.Interface
	res    apis.Resolver
	cfg    apis.Config
}

// Ensure view implements apis.View.
var _ apis.View = (*view)(nil)

// Interface returns the descriptor the view conforms to.
func (v *view) Interface() apis.Interface { return v.iface }

// Call invokes the declared method name on the underlying object.
func (v *view) Call(name string, args ...any) ([]any, error) {
	return call.Dynamic(v, name, args)
}

// CallValues resolves sig on the underlying object and invokes it.
// Whatever the method returns, errors included, is passed back untouched.
func (v *view) CallValues(sig apis.Signature, args []reflect.Value) ([]reflect.Value, error) {
	if err := call.Check(sig, args); err != nil {
		return nil, err
	}
	inv, ok := v.res.Resolve(v.object, sig, v.cfg)
	if !ok {
		return nil, &apis.NoMatchingMethodError{Interface: v.iface, Signature: sig, Delegates: -1}
	}
	return inv.Call(args), nil
}

// Unwrap returns the underlying object.
func (v *view) Unwrap() any { return v.object }
