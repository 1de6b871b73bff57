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

package errno

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"dirpx.dev/errkit"
	"dirpx.dev/errkit/code"
	"dirpx.dev/errkit/failure"
)

func TestFlag(t *testing.T) {
	var f Flag
	if f.Load() != 0 {
		t.Fatal("zero Flag must be clear")
	}
	f.Set(syscall.EPERM)
	if f.Load() != syscall.EPERM || f.Load() != syscall.EPERM {
		t.Fatal("Load must not clear")
	}
	if f.Take() != syscall.EPERM || f.Load() != 0 {
		t.Fatal("Take must return and clear")
	}
	f.Set(syscall.EIO)
	f.Clear()
	if f.Load() != 0 {
		t.Fatal("Clear failed")
	}
	if Default() != Default() {
		t.Fatal("Default must be a single flag")
	}
}

func TestFromErrno(t *testing.T) {
	var f Flag
	f.Set(syscall.ENOENT)
	r := FromErrno[string](&f, "open")
	if r.OK() || r.Err().Code() != code.Errno(syscall.ENOENT) || r.Err().Context() != "open" {
		t.Fatalf("FromErrno = %v", r.Err())
	}
	if f.Load() != 0 {
		t.Fatal("FromErrno must clear the flag")
	}
	if FromErrno[int](&f, "").Err().Code() != code.UnknownError.Code() {
		t.Fatal("clear flag must yield UnknownError")
	}
}

func TestWithErrno(t *testing.T) {
	var f Flag

	// Stale status from an earlier call must not leak in.
	f.Set(syscall.EAGAIN)
	r := WithErrno(&f, func() int { return 5 }, "noop")
	if !r.OK() || r.Value() != 5 {
		t.Fatalf("WithErrno = %+v", r)
	}
	if f.Load() != 0 {
		t.Fatal("flag must be clear after success")
	}

	r = WithErrno(&f, func() int { f.Set(syscall.EACCES); return 0 }, "chmod")
	if r.OK() || r.Err().Code() != code.Errno(syscall.EACCES) || r.Err().Context() != "chmod" {
		t.Fatalf("WithErrno = %v", r.Err())
	}
	if f.Load() != 0 {
		t.Fatal("flag must be clear after failure")
	}
}

func TestWithErrno_Panic(t *testing.T) {
	var f Flag
	r := WithErrnoVoid(&f, func() {
		f.Set(syscall.EBADF)
		failure.Raise(failure.BadFunctionCall, "no handler")
	}, "dispatch")
	if r.Err().Code() != code.BadFunctionCall.Code() || r.Err().Context() != "dispatch: no handler" {
		t.Fatalf("WithErrnoVoid = %v", r.Err())
	}
	if f.Load() != 0 {
		t.Fatal("flag must be clear after a panic")
	}
}

func TestInvokeSyscall(t *testing.T) {
	var f Flag
	tests := []struct {
		name string
		op   func() int
		ok   bool
		val  int
		want code.Code
	}{
		{"zero is success", func() int { return 0 }, true, 0, code.Success},
		{"positive is success", func() int { return 3 }, true, 3, code.Success},
		{"other negative is success", func() int { return -2 }, true, -2, code.Success},
		{"sentinel with flag", func() int { f.Set(syscall.EEXIST); return -1 }, false, 0, code.Errno(syscall.EEXIST)},
		{"sentinel without flag", func() int { return -1 }, false, 0, code.UnknownError.Code()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := InvokeSyscall(&f, tt.op, "mkdir")
			if r.OK() != tt.ok {
				t.Fatalf("OK() = %v, want %v", r.OK(), tt.ok)
			}
			if tt.ok && r.Value() != tt.val {
				t.Fatalf("Value() = %d, want %d", r.Value(), tt.val)
			}
			if !tt.ok && r.Err().Code() != tt.want {
				t.Fatalf("Code() = %v, want %v", r.Err().Code(), tt.want)
			}
			if f.Load() != 0 {
				t.Fatal("flag must be clear on return")
			}
		})
	}
}

func TestSyscall(t *testing.T) {
	var f Flag
	wrapped := fmt.Errorf("mkdir /x: %w", syscall.EROFS)

	r := InvokeSyscall(&f, Syscall(&f, func() error { return wrapped }), "mkdir")
	if r.Err().Code() != code.Errno(syscall.EROFS) {
		t.Fatalf("Code() = %v", r.Err().Code())
	}

	r = InvokeSyscall(&f, Syscall(&f, func() error { return errors.New("opaque") }), "mkdir")
	if r.Err().Code() != code.Errno(syscall.EIO) {
		t.Fatalf("opaque error Code() = %v, want EIO", r.Err().Code())
	}

	r = InvokeSyscall(&f, SyscallN(&f, func() (int, error) { return 12, nil }), "read")
	if !r.OK() || r.Value() != 12 {
		t.Fatalf("SyscallN = %+v", r)
	}
}

func TestBoundaries_UseCustomClassifier(t *testing.T) {
	var f Flag
	r := WithErrno(&f, func() int { panic("x") }, "op", errkit.WithClassifier(nil))
	if r.Err().Code() != code.UnknownException.Code() {
		t.Fatalf("Code() = %v", r.Err().Code())
	}
}
