/*
   Copyright 2025 The DIRPX Authors

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

package errkit

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"dirpx.dev/errkit/code"
	"dirpx.dev/errkit/grpcx"
	"google.golang.org/grpc/codes"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		e    Error
		want string
	}{
		{"no context", New(code.BadCast, ""), "Bad cast exception"},
		{"context", New(code.BadCast, "convert"), "convert: Bad cast exception"},
		{"errno", New(syscall.ENOENT, "open"), "open: " + code.Errno(syscall.ENOENT).Message()},
		{"success", Error{}, "Success"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Message(); got != tt.want {
				t.Fatalf("Message() = %q, want %q", got, tt.want)
			}
			if tt.e.Error() != tt.e.Message() {
				t.Fatalf("Error() = %q differs from Message()", tt.e.Error())
			}
		})
	}
}

func TestError_ValueRoundTrip(t *testing.T) {
	for _, k := range code.Kinds() {
		e := New(k, "ctx")
		if e.Value() != int(k) {
			t.Fatalf("New(%v).Value() = %d, want %d", k, e.Value(), int(k))
		}
		if !e.Failed() {
			t.Fatalf("New(%v).Failed() = false", k)
		}
		if e.Category() != code.Extra {
			t.Fatalf("New(%v).Category() = %v", k, e.Category().Name())
		}
		if e.Condition() != k.Condition() {
			t.Fatalf("New(%v).Condition() = %v", k, e.Condition())
		}
	}
}

func TestNew_Unresolvable(t *testing.T) {
	e := New("not a code", "x")
	if e.Code() != code.UnknownError.Code() {
		t.Fatalf("Code() = %v, want UnknownError", e.Code())
	}
	if New(nil, "").Failed() {
		t.Fatal("New(nil) must be a success")
	}
}

func TestError_EqualityIgnoresContext(t *testing.T) {
	a := New(code.LengthError, "a")
	b := New(code.LengthError, "b")
	c := New(code.FormatError, "a")
	if !a.Equal(b) || a.Compare(b) != 0 || a.Hash() != b.Hash() {
		t.Fatal("same code must be equal regardless of context")
	}
	if a.Equal(c) || a.Compare(c) == 0 {
		t.Fatal("different codes must differ")
	}
	if !errors.Is(a, b) {
		t.Fatal("errors.Is(a, b) must hold for equal codes")
	}
}

func TestError_CompareOrder(t *testing.T) {
	a := New(code.InvalidArgument, "z")
	b := New(code.BadAlloc, "a")
	if a.Compare(b) >= 0 || b.Compare(a) <= 0 {
		t.Fatal("ordering must follow numeric value")
	}
	// Same value, different category: category name breaks the tie.
	x := Error{code: code.Make(5, code.Extra)}
	y := Error{code: code.Make(5, code.Generic)}
	if x.Equal(y) || x.Compare(y) >= 0 {
		t.Fatalf("ExtraError must sort before generic at equal value")
	}
}

func TestError_Hash(t *testing.T) {
	seen := map[uint64]code.Kind{}
	for _, k := range code.Kinds() {
		h := New(k, "").Hash()
		if prev, ok := seen[h]; ok {
			t.Fatalf("hash collision between %v and %v", prev, k)
		}
		seen[h] = k
	}
	if (Error{code: code.Make(2, code.Extra)}).Hash() == New(syscall.Errno(2), "").Hash() {
		t.Fatal("hash must depend on the category")
	}
}

func TestError_Is(t *testing.T) {
	e := New(code.InvalidArgument, "port")
	tests := []struct {
		name   string
		target error
		want   bool
	}{
		{"kind", code.InvalidArgument, true},
		{"other kind", code.BadCast, false},
		{"condition", code.ConditionLogic, true},
		{"other condition", code.ConditionRuntime, false},
		{"no condition", code.NoCondition, false},
		{"error value", New(code.InvalidArgument, "other"), true},
		{"error pointer", &Error{code: code.InvalidArgument.Code()}, true},
		{"code", code.InvalidArgument.Code(), true},
		{"errno same number", syscall.Errno(1), false},
		{"unresolvable", errors.New("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(e, tt.target); got != tt.want {
				t.Fatalf("errors.Is(e, %v) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestError_IsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("load: %w", New(syscall.ENOENT, "config"))
	if !errors.Is(err, syscall.ENOENT) {
		t.Fatal("errors.Is through a wrapper failed")
	}
	e, ok := As(err)
	if !ok || e.Context() != "config" {
		t.Fatalf("As = (%v, %v)", e, ok)
	}
}

func TestError_SystemCodesHaveNoCondition(t *testing.T) {
	e := New(syscall.EINVAL, "")
	for _, c := range code.Conditions() {
		if errors.Is(e, c) {
			t.Fatalf("errno code matched condition %v", c)
		}
	}
}

func TestError_GRPCCondition(t *testing.T) {
	e := New(grpcx.Code(codes.PermissionDenied), "bucket")
	if !e.Is(code.ConditionAccess) {
		t.Fatal("grpc PermissionDenied must match the access condition")
	}
	if e.Category().Name() != "grpc" {
		t.Fatalf("Category = %q", e.Category().Name())
	}
}

func TestError_IsAnyOf(t *testing.T) {
	e := New(code.BadWeakPtr, "")
	if !e.IsAnyOf(code.BadCast, code.ConditionAccess) {
		t.Fatal("IsAnyOf must match the condition")
	}
	if e.IsAnyOf(code.BadCast, code.ConditionLogic) {
		t.Fatal("IsAnyOf matched nothing relevant")
	}
	if e.IsAnyOf() {
		t.Fatal("IsAnyOf() with no targets must be false")
	}
}

func TestError_Wrap(t *testing.T) {
	e := New(code.FormatError, "line 3")
	w := e.Wrap("load config")
	if w.Context() != "load config: line 3" || !w.Equal(e) {
		t.Fatalf("Wrap = %q", w.Context())
	}
	if e.Context() != "line 3" {
		t.Fatal("Wrap mutated the original")
	}
	if got := New(code.FormatError, "").Wrap("outer").Context(); got != "outer" {
		t.Fatalf("Wrap on empty context = %q", got)
	}
}

func TestSwap(t *testing.T) {
	a := New(code.BadCast, "a")
	b := New(syscall.EPERM, "b")
	Swap(&a, &b)
	if a.Code() != code.Errno(syscall.EPERM) || a.Context() != "b" {
		t.Fatalf("a = %v", a)
	}
	if b.Code() != code.BadCast.Code() || b.Context() != "a" {
		t.Fatalf("b = %v", b)
	}
}

func TestError_Format(t *testing.T) {
	e := New(code.BadAlloc, "grow")
	tests := []struct {
		format string
		want   string
	}{
		{"%s", "grow: Bad allocation exception"},
		{"%v", "grow: Bad allocation exception"},
		{"%+v", "grow: Bad allocation exception\n(error_code: 7 (ExtraError category))"},
		{"%d", "7"},
		{"%q", `"grow: Bad allocation exception"`},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, e); got != tt.want {
			t.Fatalf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
	if e.Display() != fmt.Sprintf("%+v", e) {
		t.Fatalf("Display() = %q, want the %%+v form", e.Display())
	}
}

func TestError_MapKey(t *testing.T) {
	m := map[code.Code]int{}
	m[New(code.BadCast, "a").Code()]++
	m[New(code.BadCast, "b").Code()]++
	if m[code.BadCast.Code()] != 2 {
		t.Fatalf("map = %v", m)
	}
}

func BenchmarkError_Hash(b *testing.B) {
	e := New(code.BadCast, "x")
	for b.Loop() {
		_ = e.Hash()
	}
}
