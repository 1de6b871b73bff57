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
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"dirpx.dev/errkit/code"
	"github.com/cespare/xxhash/v2"
)

// Error is the canonical failure value.
//
// It carries:
//   - code: the specific, comparable identity (success when zero);
//   - context: free-form text describing where or why it happened.
//
// Error is immutable; Wrap returns a new value. Only the code takes part in
// equality, ordering and hashing.
type Error struct {
	code    code.Code
	context string
}

var (
	_ error         = Error{}
	_ code.Coder    = Error{}
	_ fmt.Formatter = Error{}
)

// New builds an Error from anything code.Of can resolve (a code.Kind, a
// code.Code, a syscall.Errno, a gRPC code, another Error, ...).
// Values that cannot be resolved become code.UnknownError.
func New(c any, context string) Error {
	cc, ok := code.Of(c)
	if !ok {
		cc = code.UnknownError.Code()
	}
	return Error{code: cc, context: context}
}

// Failed reports whether e denotes an error. The zero Error is a success.
func (e Error) Failed() bool { return e.code.Failed() }

// Code returns the error code.
func (e Error) Code() code.Code { return e.code }

// Value returns the numeric value of the code.
func (e Error) Value() int { return e.code.Value() }

// Context returns the context text, possibly empty.
func (e Error) Context() string { return e.context }

// Category returns the category of the code.
func (e Error) Category() code.Category { return e.code.Category() }

// Condition returns the default condition of the code.
func (e Error) Condition() code.Condition { return e.code.Condition() }

// Message returns the category message, prefixed by "<context>: " when a
// context is set.
func (e Error) Message() string {
	if e.context == "" {
		return e.code.Message()
	}
	return e.context + ": " + e.code.Message()
}

// Error implements the error interface. It is the same as Message.
func (e Error) Error() string { return e.Message() }

// Is reports whether e matches target, for use with errors.Is:
//
//   - a code.Condition matches when it equals e's default condition;
//   - an Error matches when the codes are equal (contexts are ignored);
//   - anything else is resolved with code.Of and compared by code.
func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case code.Condition:
		return t.Valid() && e.code.Condition() == t
	case Error:
		return e.code == t.code
	case *Error:
		return t != nil && e.code == t.code
	}
	c, ok := code.Of(target)
	return ok && c == e.code
}

// IsAnyOf reports whether e matches at least one of targets.
func (e Error) IsAnyOf(targets ...error) bool {
	for _, t := range targets {
		if e.Is(t) {
			return true
		}
	}
	return false
}

// Equal reports whether e and o carry the same code.
func (e Error) Equal(o Error) bool { return e.code == o.code }

// Compare orders errors by code: numeric value first, category name second.
func (e Error) Compare(o Error) int { return e.code.Compare(o.code) }

// Hash returns a hash of the code, consistent with Equal.
func (e Error) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(e.code.Category().Name())
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(e.code.Value())))
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

// Wrap returns a copy of e with outer prepended to its context. The code is
// preserved.
func (e Error) Wrap(outer string) Error {
	return Error{code: e.code, context: compose(outer, e.context)}
}

// Display returns the verbose form:
//
//	<message>
//	(error_code: <value> (<category> category))
func (e Error) Display() string {
	return fmt.Sprintf("%s\n(error_code: %d (%s category))", e.Message(), e.code.Value(), e.code.Category().Name())
}

// Format implements fmt.Formatter.
//
//	%s, %v  message
//	%+v     Display
//	%d      numeric value
//	%q      quoted message
func (e Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Display())
			return
		}
		_, _ = io.WriteString(s, e.Message())
	case 'd':
		_, _ = fmt.Fprintf(s, "%d", e.code.Value())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Message())
	default:
		_, _ = io.WriteString(s, e.Message())
	}
}

// Swap exchanges the contents of a and b.
func Swap(a, b *Error) {
	*a, *b = *b, *a
}

// As is a shorthand for errors.As into an Error.
func As(err error) (Error, bool) {
	var e Error
	if errors.As(err, &e) {
		return e, true
	}
	return Error{}, false
}

// compose joins an outer and an inner context as "outer: inner", or returns
// whichever is non-empty.
func compose(outer, inner string) string {
	switch {
	case outer == "":
		return inner
	case inner == "":
		return outer
	default:
		return outer + ": " + inner
	}
}
