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

// Package errno adapts errno-style APIs, which report failure through a
// side-channel status flag or a -1 sentinel, into errkit Results.
//
// The status flag is an explicit *Flag passed to every boundary instead of
// a hidden global. A Flag is not safe for concurrent use: callers sharing
// one Flag between goroutines must serialise the boundaries themselves.
// Every boundary clears the flag before running the operation and leaves it
// clear on return, so no status leaks into the next unrelated call.
package errno

import (
	"errors"
	"syscall"

	"dirpx.dev/errkit"
	"dirpx.dev/errkit/code"
)

// Flag is a status cell holding the last platform error number.
// The zero Flag is clear.
type Flag struct {
	v syscall.Errno
}

// Set stores e.
func (f *Flag) Set(e syscall.Errno) { f.v = e }

// Load returns the stored value without clearing it.
func (f *Flag) Load() syscall.Errno { return f.v }

// Clear resets the flag to zero.
func (f *Flag) Clear() { f.v = 0 }

// Take returns the stored value and clears the flag.
func (f *Flag) Take() syscall.Errno {
	e := f.v
	f.v = 0
	return e
}

var process Flag

// Default returns the process-wide flag, for code that wants the
// traditional single errno. Tests should use their own Flag.
func Default() *Flag { return &process }

// FromErrno reads and clears f and returns it as a failed Result. A clear
// flag yields code.UnknownError, since there is nothing to report.
func FromErrno[T any](f *Flag, context string) errkit.Result[T] {
	e := f.Take()
	if e == 0 {
		return errkit.MakeError[T](code.UnknownError, context)
	}
	return errkit.MakeError[T](e, context)
}

// WithErrno clears f, runs op and reports failure when op left the flag set.
// Panics in op are classified as by errkit.TryCatch. f is clear on return.
func WithErrno[R any](f *Flag, op func() R, context string, opts ...errkit.Option) errkit.Result[R] {
	f.Clear()
	r := errkit.TryCatch(op, context, opts...)
	e := f.Take()
	if !r.OK() {
		return r
	}
	if e != 0 {
		return errkit.MakeError[R](e, context)
	}
	return r
}

// WithErrnoVoid is WithErrno for operations with no value.
func WithErrnoVoid(f *Flag, op func(), context string, opts ...errkit.Option) errkit.Result[errkit.Void] {
	return WithErrno(f, func() errkit.Void {
		op()
		return errkit.Void{}
	}, context, opts...)
}

// InvokeSyscall clears f and runs op, which follows the C convention of
// returning -1 on failure with the reason in f. Any other return value,
// including 0, is the successful result. f is clear on return.
func InvokeSyscall(f *Flag, op func() int, context string, opts ...errkit.Option) errkit.Result[int] {
	f.Clear()
	r := errkit.TryCatch(op, context, opts...)
	e := f.Take()
	if !r.OK() || r.Value() != -1 {
		return r
	}
	if e == 0 {
		return errkit.MakeError[int](code.UnknownError, context)
	}
	return errkit.MakeError[int](e, context)
}

// Syscall adapts a Go-style call returning only an error to the sentinel
// convention: on error it stores the errno found in the error chain (EIO if
// none) in f and returns -1, otherwise 0.
func Syscall(f *Flag, fn func() error) func() int {
	return func() int {
		if err := fn(); err != nil {
			f.Set(errnoOf(err))
			return -1
		}
		return 0
	}
}

// SyscallN is Syscall for calls that also return a count, such as
// read(2)-like functions.
func SyscallN(f *Flag, fn func() (int, error)) func() int {
	return func() int {
		n, err := fn()
		if err != nil {
			f.Set(errnoOf(err))
			return -1
		}
		return n
	}
}

func errnoOf(err error) syscall.Errno {
	var e syscall.Errno
	if errors.As(err, &e) && e != 0 {
		return e
	}
	return syscall.EIO
}
