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
	"regexp/syntax"

	"dirpx.dev/errkit/classify"
	"dirpx.dev/errkit/code"
	"dirpx.dev/errkit/failure"
)

// Void is the value type of operations that produce nothing.
type Void = struct{}

// Result holds either a value of type T or a failed Error, never both.
//
// The zero Result is a failure whose Err reports code.UnknownError;
// construct Results with Ok, Fail or the boundaries.
type Result[T any] struct {
	value T
	err   Error
	ok    bool
}

// Aliases for common Result types.
type (
	VoidResult   = Result[Void]
	StringResult = Result[string]
	IntResult    = Result[int]
	BoolResult   = Result[bool]
)

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail returns a failed Result holding e. A non-failed e is replaced by
// code.UnknownError, keeping its context, so that a failed Result never
// reports success through Err.
func Fail[T any](e Error) Result[T] {
	if !e.Failed() {
		e = Error{code: code.UnknownError.Code(), context: e.context}
	}
	return Result[T]{err: e}
}

// MakeError returns a failed Result with New(c, context).
func MakeError[T any](c any, context string) Result[T] {
	return Fail[T](New(c, context))
}

// MakeRegexError returns a failed Result for a regexp parse-error kind,
// mapped to a platform code with a detailed message:
//
//	MakeRegexError[int](syntax.ErrMissingBracket, "compile")
//	// "compile: Regex error: mismatched square brackets ('[' and ']'): Invalid argument"
func MakeRegexError[T any](ec syntax.ErrorCode, context string) Result[T] {
	c, text := classify.Regex(ec)
	return Fail[T](Error{code: c, context: compose(context, text)})
}

// FromError classifies err with the default classifier. A nil err yields a
// successful Result holding the zero T.
func FromError[T any](err error, context string) Result[T] {
	if err == nil {
		var zero T
		return Ok(zero)
	}
	return Fail[T](classifyValue(classify.Default(), err, context))
}

// OK reports whether r holds a value.
func (r Result[T]) OK() bool { return r.ok }

// Value returns the held value. It panics with a failure.BadExpectedAccess
// error when r is a failure; use Get, ValueOr or Unwrap to avoid that.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(&failure.Error{Kind: failure.BadExpectedAccess})
	}
	return r.value
}

// ValueOr returns the held value, or def when r is a failure.
func (r Result[T]) ValueOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// Err returns the Error of a failure, or the zero Error on success. The
// Error of a failure always reports Failed.
func (r Result[T]) Err() Error {
	if r.ok {
		return Error{}
	}
	if !r.err.Failed() {
		return Error{code: code.UnknownError.Code(), context: r.err.context}
	}
	return r.err
}

// Get returns the value and whether r holds one.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

// Unwrap converts r into the usual Go pair. The error is nil on success and
// an Error otherwise.
func (r Result[T]) Unwrap() (T, error) {
	if r.ok {
		return r.value, nil
	}
	return r.value, r.Err()
}

// Then runs f with the value of r, or propagates r's Error.
func Then[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.ok {
		return Fail[U](r.Err())
	}
	return f(r.value)
}

// Map transforms the value of a successful r.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.ok {
		return Fail[U](r.Err())
	}
	return Ok(f(r.value))
}

// OrElse runs f with the Error of a failed r, or returns r unchanged.
func OrElse[T any](r Result[T], f func(Error) Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return f(r.Err())
}
