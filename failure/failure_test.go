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

package failure

import (
	"errors"
	"fmt"
	"regexp/syntax"
	"syscall"
	"testing"

	"dirpx.dev/errkit/code"
)

func TestKind_Family(t *testing.T) {
	tests := []struct {
		k    Kind
		want Family
	}{
		{Logic, FamilyLogic},
		{InvalidArgument, FamilyLogic},
		{OutOfRange, FamilyLogic},
		{Future, FamilyLogic},
		{Runtime, FamilyRuntime},
		{Overflow, FamilyRuntime},
		{Regex, FamilyRuntime},
		{System, FamilyRuntime},
		{Format, FamilyRuntime},
		{BadAlloc, FamilyNone},
		{BadException, FamilyNone},
		{Kind(0), FamilyNone},
		{Kind(1000), FamilyNone},
	}
	for _, tt := range tests {
		if got := tt.k.Family(); got != tt.want {
			t.Fatalf("%v.Family() = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestLookup_RoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := Lookup(k.String())
		if !ok || got != k {
			t.Fatalf("Lookup(%q) = (%v, %v)", k.String(), got, ok)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatal("Lookup(nope) succeeded")
	}
}

func TestError_Text(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"explicit", New(InvalidArgument, "bad input"), "bad input"},
		{"default", &Error{Kind: BadAlloc}, "bad allocation"},
		{"expected access", &Error{Kind: BadExpectedAccess}, "bad access to Result without expected value"},
		{"system default", SystemError(code.Errno(syscall.EINVAL), ""), code.Errno(syscall.EINVAL).Message()},
		{"regex default", RegexError(syntax.ErrMissingBracket, ""), string(syntax.ErrMissingBracket)},
		{"regex expr", RegexError(syntax.ErrMissingBracket, "[a"), "missing closing ]: `[a`"},
		{"formatted", Newf(LengthError, "len %d > %d", 5, 3), "len 5 > 3"},
		{"invalid kind", &Error{}, "unknown failure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_IsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New(BadCast, "x"))
	if !errors.Is(err, &Error{Kind: BadCast}) {
		t.Fatal("errors.Is by kind failed")
	}
	if errors.Is(err, &Error{Kind: BadAlloc}) {
		t.Fatal("errors.Is matched a different kind")
	}
	var fe *Error
	if !errors.As(err, &fe) || fe.Kind != BadCast {
		t.Fatalf("errors.As = %v", fe)
	}
}

func TestRaise(t *testing.T) {
	defer func() {
		r := recover()
		fe, ok := r.(*Error)
		if !ok || fe.Kind != Overflow || fe.Text != "too big" {
			t.Fatalf("recovered %#v", r)
		}
	}()
	Raise(Overflow, "too big")
}
