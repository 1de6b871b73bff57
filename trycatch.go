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
	"dirpx.dev/errkit/classify"
	"dirpx.dev/errkit/code"
)

// TryCatch runs op and returns its value as a successful Result.
//
// If op panics, the panic is recovered and classified (see package
// classify) into a failed Result whose context is "<context>: <failure
// text>", or whichever of the two is non-empty. TryCatch never panics.
func TryCatch[R any](op func() R, context string, opts ...Option) (res Result[R]) {
	s := newSettings(opts)
	done := false
	defer func() {
		if done {
			return
		}
		res = Fail[R](classifyValue(s.classifier, recover(), context))
	}()
	v := op()
	done = true
	return Ok(v)
}

// Try is like TryCatch for operations in the (value, error) style. A
// non-nil returned error is classified the same way as a panic.
func Try[R any](op func() (R, error), context string, opts ...Option) Result[R] {
	s := newSettings(opts)
	type pair struct {
		v   R
		err error
	}
	r := TryCatch(func() pair {
		v, err := op()
		return pair{v, err}
	}, context, WithClassifier(s.classifier))
	if !r.ok {
		return Fail[R](r.Err())
	}
	if r.value.err == nil {
		return Ok(r.value.v)
	}
	if e, ok := r.value.err.(Error); ok && !e.Failed() {
		return Ok(r.value.v)
	}
	return Fail[R](classifyValue(s.classifier, r.value.err, context))
}

// TryVoid is TryCatch for operations with no value.
func TryVoid(op func(), context string, opts ...Option) Result[Void] {
	return TryCatch(func() Void {
		op()
		return Void{}
	}, context, opts...)
}

// TryResult runs an operation that already returns a Result. The returned
// Result passes through unchanged; only panics are classified.
func TryResult[R any](op func() Result[R], context string, opts ...Option) Result[R] {
	r := TryCatch(op, context, opts...)
	if !r.ok {
		return Fail[R](r.Err())
	}
	return r.value
}

// classifyValue turns a failure value into an Error. If the classifier
// itself panics, the newer panic value is classified with the default
// classifier instead.
func classifyValue(c classify.Classifier, v any, context string) (e Error) {
	defer func() {
		if r := recover(); r != nil {
			e = fromOutcome(classify.Default().Classify(r), context)
		}
	}()
	return fromOutcome(c.Classify(v), context)
}

func fromOutcome(out classify.Outcome, context string) Error {
	c := out.Code
	if !c.Failed() {
		c = code.UnknownException.Code()
	}
	return Error{code: c, context: compose(context, out.Text)}
}
