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

package strategy_test

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"dirpx.dev/duck/apis"
	"dirpx.dev/duck/config"
	"dirpx.dev/duck/strategy"
	uref "dirpx.dev/duck/utils/reflect"
)

// Local test types.
type goose struct{}

func (goose) Quack() string              { return "honk" }
func (goose) Eat(r io.Reader) int        { b, _ := io.ReadAll(r); return len(b) }
func (goose) Join(parts ...any) string   { return fmt.Sprint(parts...) }
func (goose) Friend() *goose             { return &goose{} }
func (goose) String() string             { return "goose" }
func (goose) Peck(times int, _ bool) int { return times }

type ptrOnly struct{}

func (*ptrOnly) Quack() string { return "ptr" }

// sigOf builds the signature of method name on the interface type I.
func sigOf[I any](t *testing.T, name string) apis.Signature {
	t.Helper()
	iface, err := uref.Describe(reflect.TypeOf((*I)(nil)).Elem())
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	sig, ok := iface.Lookup(name)
	if !ok {
		t.Fatalf("Lookup(%s) failed", name)
	}
	return sig
}

type quacker interface{ Quack() string }
type bufferEater interface{ Eat(*bytes.Buffer) int }
type readerEater interface{ Eat(io.Reader) int }
type stringJoiner interface{ Join(...string) string }
type anyFriend interface{ Friend() any }
type stringer interface{ String() string }
type wrongPeck interface{ Peck(int) int }
type wrongQuack interface{ Quack() int }

func TestExactStrategy(t *testing.T) {
	s := strategy.NewExactStrategy()
	conf := config.DefaultConfig()
	g := reflect.ValueOf(goose{})

	inv, ok := s.TryMatch(g, sigOf[quacker](t, "Quack"), conf)
	if !ok || inv == nil {
		t.Fatal("exact Quack: expected hit")
	}
	if got := inv.Call(nil)[0].String(); got != "honk" {
		t.Fatalf("Quack() = %q, want honk", got)
	}

	if _, ok := s.TryMatch(g, sigOf[readerEater](t, "Eat"), conf); !ok {
		t.Fatal("exact Eat(io.Reader): expected hit")
	}
	if _, ok := s.TryMatch(g, sigOf[bufferEater](t, "Eat"), conf); ok {
		t.Fatal("exact Eat(*bytes.Buffer): expected miss")
	}
	if _, ok := s.TryMatch(g, sigOf[anyFriend](t, "Friend"), conf); ok {
		t.Fatal("exact Friend() any: expected miss")
	}
}

func TestAssignableStrategy(t *testing.T) {
	s := strategy.NewAssignableStrategy()
	conf := config.DefaultConfig()
	g := reflect.ValueOf(goose{})

	inv, ok := s.TryMatch(g, sigOf[bufferEater](t, "Eat"), conf)
	if !ok {
		t.Fatal("assignable Eat(*bytes.Buffer): expected hit")
	}
	out := inv.Call([]reflect.Value{reflect.ValueOf(bytes.NewBufferString("bread"))})
	if out[0].Int() != 5 {
		t.Fatalf("Eat = %d, want 5", out[0].Int())
	}

	inv, ok = s.TryMatch(g, sigOf[anyFriend](t, "Friend"), conf)
	if !ok {
		t.Fatal("assignable Friend() any: expected hit")
	}
	out = inv.Call(nil)
	if out[0].Type() != reflect.TypeOf((*any)(nil)).Elem() {
		t.Fatalf("result type = %v, want declared any", out[0].Type())
	}
	if _, isGoose := out[0].Interface().(*goose); !isGoose {
		t.Fatalf("result = %T, want *goose", out[0].Interface())
	}
}

func TestAssignableStrategy_VariadicRepack(t *testing.T) {
	s := strategy.NewAssignableStrategy()
	sig := sigOf[stringJoiner](t, "Join")

	inv, ok := s.TryMatch(reflect.ValueOf(goose{}), sig, config.DefaultConfig())
	if !ok {
		t.Fatal("assignable Join(...string): expected hit")
	}
	out := inv.Call([]reflect.Value{reflect.ValueOf([]string{"a", "b"})})
	if got := out[0].String(); got != "ab" {
		t.Fatalf("Join = %q, want ab", got)
	}

	// Exact matching refuses the differing element type.
	if _, ok := strategy.NewExactStrategy().TryMatch(reflect.ValueOf(goose{}), sig, config.DefaultConfig()); ok {
		t.Fatal("exact Join(...string): expected miss")
	}
}

func TestStrategies_RejectNameOnlyMatch(t *testing.T) {
	g := reflect.ValueOf(goose{})
	conf := config.DefaultConfig()
	for _, s := range []apis.Strategy{strategy.NewExactStrategy(), strategy.NewAssignableStrategy()} {
		if _, ok := s.TryMatch(g, sigOf[wrongPeck](t, "Peck"), conf); ok {
			t.Fatalf("%T: Peck(int) matched Peck(int, bool)", s)
		}
		if _, ok := s.TryMatch(g, sigOf[wrongQuack](t, "Quack"), conf); ok {
			t.Fatalf("%T: Quack() int matched Quack() string", s)
		}
	}
}

func TestStrategies_MethodSetRules(t *testing.T) {
	s := strategy.NewAssignableStrategy()
	sig := sigOf[quacker](t, "Quack")
	conf := config.DefaultConfig()

	if _, ok := s.TryMatch(reflect.ValueOf(ptrOnly{}), sig, conf); ok {
		t.Fatal("value receiver set must not include pointer methods")
	}
	inv, ok := s.TryMatch(reflect.ValueOf(&ptrOnly{}), sig, conf)
	if !ok {
		t.Fatal("pointer method set: expected hit")
	}
	if got := inv.Call(nil)[0].String(); got != "ptr" {
		t.Fatalf("Quack() = %q, want ptr", got)
	}
	if _, ok := s.TryMatch(reflect.Value{}, sig, conf); ok {
		t.Fatal("invalid candidate: expected miss")
	}
}

func TestUniversalStrategy(t *testing.T) {
	s := strategy.NewUniversalStrategy()
	sig := sigOf[stringer](t, "String")
	g := reflect.ValueOf(goose{})

	if inv, handled := s.TryMatch(g, sig, config.DefaultConfig()); handled || inv != nil {
		t.Fatalf("default config: got (%v,%v), want fall through", inv, handled)
	}

	excl := config.NewConfig(config.WithExcludeUniversal(true))
	if inv, handled := s.TryMatch(g, sig, excl); !handled || inv != nil {
		t.Fatalf("excluded: got (%v,%v), want (nil,true)", inv, handled)
	}
	if _, handled := s.TryMatch(g, sigOf[quacker](t, "Quack"), excl); handled {
		t.Fatal("excluded config must not veto Quack")
	}
}

func TestSignatureStrategy_FollowsConfig(t *testing.T) {
	s := strategy.NewSignatureStrategy()
	sig := sigOf[bufferEater](t, "Eat")
	g := reflect.ValueOf(goose{})

	if _, ok := s.TryMatch(g, sig, config.NewConfig(config.WithMatch(apis.MatchAssignable))); !ok {
		t.Fatal("assignable mode: expected hit")
	}
	if _, ok := s.TryMatch(g, sig, config.NewConfig(config.WithMatch(apis.MatchExact))); ok {
		t.Fatal("exact mode: expected miss")
	}
}

func TestStrategies_MalformedSignatureMisses(t *testing.T) {
	// Variadic flag set, but the tail is a plain string.
	sig := apis.Signature{
		Name:     "Join",
		In:       []reflect.Type{reflect.TypeOf("")},
		Out:      []reflect.Type{reflect.TypeOf("")},
		Variadic: true,
	}
	g := reflect.ValueOf(goose{})
	conf := config.DefaultConfig()
	for _, s := range []apis.Strategy{strategy.NewExactStrategy(), strategy.NewAssignableStrategy()} {
		if inv, ok := s.TryMatch(g, sig, conf); ok || inv != nil {
			t.Fatalf("%T: malformed signature matched", s)
		}
	}
}

func TestBind_Accessors(t *testing.T) {
	sig := sigOf[stringer](t, "String")
	m := reflect.ValueOf(goose{}).MethodByName("String")
	inv := strategy.Bind(m, sig)
	if !inv.Signature().Equal(sig) {
		t.Fatalf("Signature() = %v, want %v", inv.Signature(), sig)
	}
	if inv.Method().Type() != m.Type() {
		t.Fatalf("Method() type = %v", inv.Method().Type())
	}
	if got := inv.Call(nil)[0].String(); !strings.EqualFold(got, "goose") {
		t.Fatalf("String() = %q", got)
	}
}

// ---- Benchmarks ----

func BenchmarkAssignableStrategy(b *testing.B) {
	s := strategy.NewAssignableStrategy()
	iface, _ := uref.Describe(reflect.TypeOf((*bufferEater)(nil)).Elem())
	sig := iface.Methods[0]
	g := reflect.ValueOf(goose{})
	conf := config.DefaultConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.TryMatch(g, sig, conf)
	}
}
