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

// Package failure defines the closed set of failure variants that errkit
// operations raise and that the classifier recognises.
//
// A failure is an *Error carrying a Kind and a free-form text. Kinds form
// two families, logic and runtime, plus a set of stand-alone access and
// resource failures; the family of a Kind is reported by Family so that
// generic "any logic failure" rules can be ordered after specific ones.
//
// Errors of this package never wrap another error: a failure is matched by
// its own Kind.
package failure

import (
	"fmt"
	"regexp/syntax"

	"dirpx.dev/errkit/code"
)

// Kind enumerates failure variants.
type Kind int

const (
	Logic Kind = iota + 1
	InvalidArgument
	DomainError
	LengthError
	OutOfRange
	Future

	Runtime
	RangeError
	Overflow
	Underflow
	Regex
	System
	NonexistentLocalTime
	AmbiguousLocalTime

	Format
	BadAlloc
	BadTypeid
	BadCast
	BadOptionalAccess
	BadExpectedAccess
	BadVariantAccess
	BadWeakPtr
	BadFunctionCall
	BadException
)

// Family is the parent group of a Kind.
type Family int

const (
	FamilyNone Family = iota
	FamilyLogic
	FamilyRuntime
)

var kindInfo = [...]struct {
	name   string
	text   string
	family Family
}{
	Logic:                {"logic_error", "logic error", FamilyLogic},
	InvalidArgument:      {"invalid_argument", "invalid argument", FamilyLogic},
	DomainError:          {"domain_error", "domain error", FamilyLogic},
	LengthError:          {"length_error", "length error", FamilyLogic},
	OutOfRange:           {"out_of_range", "out of range", FamilyLogic},
	Future:               {"future_error", "future error", FamilyLogic},
	Runtime:              {"runtime_error", "runtime error", FamilyRuntime},
	RangeError:           {"range_error", "range error", FamilyRuntime},
	Overflow:             {"overflow_error", "overflow error", FamilyRuntime},
	Underflow:            {"underflow_error", "underflow error", FamilyRuntime},
	Regex:                {"regex_error", "regex error", FamilyRuntime},
	System:               {"system_error", "system error", FamilyRuntime},
	NonexistentLocalTime: {"nonexistent_local_time", "nonexistent local time", FamilyRuntime},
	AmbiguousLocalTime:   {"ambiguous_local_time", "ambiguous local time", FamilyRuntime},
	Format:               {"format_error", "format error", FamilyRuntime},
	BadAlloc:             {"bad_alloc", "bad allocation", FamilyNone},
	BadTypeid:            {"bad_typeid", "bad typeid", FamilyNone},
	BadCast:              {"bad_cast", "bad cast", FamilyNone},
	BadOptionalAccess:    {"bad_optional_access", "bad optional access", FamilyNone},
	BadExpectedAccess:    {"bad_expected_access", "bad access to Result without expected value", FamilyNone},
	BadVariantAccess:     {"bad_variant_access", "bad variant access", FamilyNone},
	BadWeakPtr:           {"bad_weak_ptr", "bad weak pointer", FamilyNone},
	BadFunctionCall:      {"bad_function_call", "bad function call", FamilyNone},
	BadException:         {"bad_exception", "bad exception", FamilyNone},
}

// Kinds returns every failure Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindInfo)-1)
	for k := Kind(1); int(k) < len(kindInfo); k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is a defined Kind.
func (k Kind) Valid() bool { return k > 0 && int(k) < len(kindInfo) }

// String returns the snake_case name of k ("bad_cast").
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("failure.Kind(%d)", int(k))
	}
	return kindInfo[k].name
}

// Family returns the parent group of k.
func (k Kind) Family() Family {
	if !k.Valid() {
		return FamilyNone
	}
	return kindInfo[k].family
}

// Lookup finds a Kind by its snake_case name.
func Lookup(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if kindInfo[k].name == name {
			return k, true
		}
	}
	return 0, false
}

// Error is a raised failure.
type Error struct {
	// Kind is the failure variant.
	Kind Kind

	// Text is the human description. When empty, Error reports the default
	// text of Kind.
	Text string

	// Code is the embedded code of System and Future failures.
	Code code.Code

	// RegexCode is the parse-error kind of Regex failures.
	RegexCode syntax.ErrorCode

	// Expr is the offending expression of Regex failures, if known.
	Expr string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Text != "" {
		return e.Text
	}
	if e.Kind == System || e.Kind == Future {
		if e.Code.Failed() {
			return e.Code.Message()
		}
	}
	if e.Kind == Regex && e.RegexCode != "" {
		if e.Expr != "" {
			return fmt.Sprintf("%s: `%s`", e.RegexCode, e.Expr)
		}
		return string(e.RegexCode)
	}
	if !e.Kind.Valid() {
		return "unknown failure"
	}
	return kindInfo[e.Kind].text
}

// Is matches another *Error of the same Kind, so that
// errors.Is(err, &failure.Error{Kind: failure.BadCast}) works as a kind test.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// New returns a failure of kind k with the given text.
func New(k Kind, text string) *Error {
	return &Error{Kind: k, Text: text}
}

// Newf is like New with a format string.
func Newf(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Text: fmt.Sprintf(format, args...)}
}

// SystemError returns a System failure carrying c.
func SystemError(c code.Code, text string) *Error {
	return &Error{Kind: System, Code: c, Text: text}
}

// FutureError returns a Future failure carrying c.
func FutureError(c code.Code, text string) *Error {
	return &Error{Kind: Future, Code: c, Text: text}
}

// RegexError returns a Regex failure for the given parse-error kind. expr is
// optional.
func RegexError(ec syntax.ErrorCode, expr string) *Error {
	return &Error{Kind: Regex, RegexCode: ec, Expr: expr}
}

// Raise panics with a new failure of kind k.
func Raise(k Kind, text string) {
	panic(New(k, text))
}
