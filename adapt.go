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
	"reflect"

	"dirpx.dev/duck/adapter"
	"dirpx.dev/duck/apis"
	"dirpx.dev/duck/bind"
	"dirpx.dev/duck/composite"
	uref "dirpx.dev/duck/utils/reflect"
)

// Describe builds the descriptor of the interface type t.
func Describe(t reflect.Type) (apis.Interface, error) {
	return uref.Describe(t)
}

// InterfaceOf returns the descriptor of the interface type I.
// It panics if I is not an interface type.
func InterfaceOf[I any]() apis.Interface {
	iface, err := uref.Describe(reflect.TypeFor[I]())
	if err != nil {
		panic(err)
	}
	return iface
}

// AdaptSingle returns a view of object conforming to iface, using the global
// resolver and configuration.
func AdaptSingle(object any, iface apis.Interface) (apis.View, error) {
	s := st.Load()
	return adapter.New(object, iface, s.res, s.cfg)
}

// As returns a view of object conforming to the interface type I.
func As[I any](object any) (apis.View, error) {
	return AdaptSingle(object, InterfaceOf[I]())
}

// NewComposite returns an empty composite wired to the global builder,
// resolver and configuration.
func NewComposite() *composite.Composite {
	s := st.Load()
	return composite.New(s.bld.BuildRegistry(s.cfg), s.res, s.cfg)
}

// Mixin returns a new composite that has registered objects in order.
func Mixin(objects ...any) *composite.Composite {
	c := NewComposite()
	c.Register(objects...)
	return c
}

// Bind fills the func fields of target (a pointer to a struct, see package
// bind) with forwarders to src. src may be an apis.View, a
// *composite.Composite or any single object; for the latter two the
// interface is described by target's own fields.
func Bind(src any, target any) error {
	if v, ok := src.(apis.View); ok {
		return bind.Into(v, target)
	}
	iface, err := bind.Describe(reflect.TypeOf(target))
	if err != nil {
		return err
	}
	var v apis.View
	if c, ok := src.(*composite.Composite); ok {
		v = c.Adapt(iface)
	} else if v, err = AdaptSingle(src, iface); err != nil {
		return err
	}
	return bind.Into(v, target)
}
