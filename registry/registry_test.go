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

package registry_test

import (
	"reflect"
	"testing"

	"dirpx.dev/duck/registry"
)

type duck struct{ name string }
type goose struct{}

// stack works as a zero value: its methods accept a nil receiver.
type stack []int

func (s stack) Size() int { return len(s) }

func TestRegister_OrderAndDuplicates(t *testing.T) {
	reg := registry.New()
	a, b := &duck{"a"}, goose{}

	if n := reg.Register(a, b, a); n != 3 {
		t.Fatalf("Register() = %d, want 3", n)
	}
	got := reg.Delegates()
	want := []any{a, b, a}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Delegates() = %v, want %v", got, want)
	}
	if got[0] != got[2] {
		t.Fatal("duplicate entries must keep the same reference")
	}
}

func TestRegister_Accumulates(t *testing.T) {
	reg := registry.New()
	a, b, c := &duck{"a"}, &duck{"b"}, goose{}

	reg.Register(a)
	reg.Register(b, c)

	if reg.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", reg.Len())
	}
	if got := reg.Delegates(); got[0] != a || got[1] != b || got[2] != c {
		t.Fatalf("Delegates() = %v, want [a b c] in call order", got)
	}
}

func TestRegister_DropsNils(t *testing.T) {
	reg := registry.New()
	a := &duck{"a"}
	var typedNil *duck

	if n := reg.Register(nil, a, nil, typedNil); n != 1 {
		t.Fatalf("Register() = %d, want 1", n)
	}
	if got := reg.Delegates(); len(got) != 1 || got[0] != a {
		t.Fatalf("Delegates() = %v, want [a]", got)
	}
}

func TestRegister_KeepsNilNamedSlice(t *testing.T) {
	reg := registry.New()
	if n := reg.Register(stack(nil)); n != 1 {
		t.Fatalf("Register(stack(nil)) = %d, want 1", n)
	}
	s, ok := reg.Delegates()[0].(stack)
	if !ok || s != nil || s.Size() != 0 {
		t.Fatalf("Delegates()[0] = %#v, want a nil stack", reg.Delegates()[0])
	}
}

func TestRegister_Empty(t *testing.T) {
	reg := registry.New()
	if n := reg.Register(); n != 0 {
		t.Fatalf("Register() = %d, want 0", n)
	}
	if n := reg.Register([]any(nil)...); n != 0 {
		t.Fatalf("Register(nil...) = %d, want 0", n)
	}
	if reg.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", reg.Len())
	}
}

func TestRange_OrderAndEarlyStop(t *testing.T) {
	reg := registry.New()
	reg.Register(&duck{"0"}, &duck{"1"}, &duck{"2"})

	var seen []int
	reg.Range(func(i int, d any) bool {
		seen = append(seen, i)
		if d.(*duck).name != "0" && d.(*duck).name != "1" {
			t.Fatalf("unexpected delegate %v at %d", d, i)
		}
		return i < 1
	})
	if !reflect.DeepEqual(seen, []int{0, 1}) {
		t.Fatalf("visited %v, want [0 1]", seen)
	}
}

func TestRange_IgnoresConcurrentAppend(t *testing.T) {
	reg := registry.New()
	reg.Register(&duck{"0"})

	visits := 0
	reg.Range(func(int, any) bool {
		visits++
		reg.Register(&duck{"late"})
		return true
	})
	if visits != 1 {
		t.Fatalf("visits = %d, want 1", visits)
	}
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}
}

func TestDelegates_IsACopy(t *testing.T) {
	reg := registry.New()
	a := &duck{"a"}
	reg.Register(a)

	got := reg.Delegates()
	got[0] = goose{}
	if reg.Delegates()[0] != a {
		t.Fatal("mutating Delegates() result changed the registry")
	}
}
