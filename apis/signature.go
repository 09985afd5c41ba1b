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
	"fmt"
	"reflect"
	"strings"
)

// Signature identifies a callable member: a method name plus its ordered
// parameter and result types. It is formed once from a declared interface
// method and used only as a lookup key.
type Signature struct {
	// Name is the method name.
	Name string
	// In holds the parameter types in order. For a variadic method the last
	// element is the slice type.
	In []reflect.Type
	// Out holds the result types in order.
	Out []reflect.Type
	// Variadic reports whether the last parameter is variadic.
	Variadic bool
}

// Equal reports whether s and o have the same name, parameter sequence,
// variadic flag and results.
func (s Signature) Equal(o Signature) bool {
	if s.Name != o.Name || s.Variadic != o.Variadic {
		return false
	}
	return sameTypes(s.In, o.In) && sameTypes(s.Out, o.Out)
}

// Validate reports whether s can describe a Go method: no nil types, and a
// variadic signature ends in a slice parameter. Signatures formed from real
// interface methods are always valid.
func (s Signature) Validate() error {
	for i, t := range s.In {
		if t == nil {
			return fmt.Errorf("%w: %s parameter %d has no type", ErrBadSignature, s.Name, i)
		}
	}
	for i, t := range s.Out {
		if t == nil {
			return fmt.Errorf("%w: %s result %d has no type", ErrBadSignature, s.Name, i)
		}
	}
	if s.Variadic && (len(s.In) == 0 || s.In[len(s.In)-1].Kind() != reflect.Slice) {
		return fmt.Errorf("%w: variadic %s must end in a slice parameter", ErrBadSignature, s.Name)
	}
	return nil
}

// FuncType returns the func type (without receiver) described by s.
// It panics if s is not valid.
func (s Signature) FuncType() reflect.Type {
	return reflect.FuncOf(s.In, s.Out, s.Variadic)
}

// ReturnsError reports whether the last result of s is the error interface.
func (s Signature) ReturnsError() bool {
	return len(s.Out) > 0 && s.Out[len(s.Out)-1] == errorType
}

// String renders s as "Name(T1, T2) (R1, R2)".
func (s Signature) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('(')
	for i, t := range s.In {
		if i > 0 {
			b.WriteString(", ")
		}
		if s.Variadic && i == len(s.In)-1 && t != nil && t.Kind() == reflect.Slice {
			b.WriteString("...")
			b.WriteString(t.Elem().String())
			continue
		}
		b.WriteString(typeString(t))
	}
	b.WriteByte(')')
	switch len(s.Out) {
	case 0:
	case 1:
		b.WriteByte(' ')
		b.WriteString(typeString(s.Out[0]))
	default:
		b.WriteString(" (")
		for i, t := range s.Out {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(typeString(t))
		}
		b.WriteByte(')')
	}
	return b.String()
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// errorType is the reflect.Type of the error interface.
var errorType = reflect.TypeOf((*error)(nil)).Elem()

func sameTypes(a, b []reflect.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
