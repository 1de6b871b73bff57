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

package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"reflect"
	"regexp/syntax"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"dirpx.dev/errkit/code"
	"dirpx.dev/errkit/failure"
	"dirpx.dev/errkit/grpcx"
)

// carrier is implemented by values that already hold an errkit code and
// their own context text, such as errkit.Error.
type carrier interface {
	Code() code.Code
	Context() string
}

// defaultRules returns the built-in table, most specific first.
//
// Order matters: every generic rule (logic_error, runtime_error, exception)
// sits after all the specific rules of its family.
func defaultRules() []Rule {
	return []Rule{
		// Values that already carry a code.
		{"passthrough", matchCarrier},
		{"coder", matchCoder},

		// Logic family.
		kindRule("invalid_argument", failure.InvalidArgument, code.InvalidArgument.Code()),
		kindRule("domain_error", failure.DomainError, code.Errno(syscall.EDOM)),
		kindRule("length_error", failure.LengthError, code.LengthError.Code()),
		kindRule("out_of_range", failure.OutOfRange, code.Errno(syscall.ERANGE)),
		{"system_error", matchSystem},
		familyRule("logic_error", failure.FamilyLogic, code.LogicError.Code()),

		// Runtime family, specific kinds.
		kindRule("range_error", failure.RangeError, code.Errno(syscall.ERANGE)),
		kindRule("overflow_error", failure.Overflow, code.Errno(syscall.EOVERFLOW)),
		kindRule("underflow_error", failure.Underflow, code.ValueTooSmall.Code()),
		{"regex_error", matchRegex},

		// Platform and transport errors.
		{"grpc_status", matchGRPC},
		{"errno", matchErrno},
		{"fs_sentinel", matchFS},
		{"context", matchContext},

		// Parse and conversion errors.
		{"strconv", matchNumError},
		kindRule("nonexistent_local_time", failure.NonexistentLocalTime, code.NonexistentLocalTime.Code()),
		kindRule("ambiguous_local_time", failure.AmbiguousLocalTime, code.AmbiguousLocalTime.Code()),
		{"format_error", matchFormat},
		{"json_type", matchJSONType},

		// Go runtime panics.
		{"nil_panic", matchNilPanic},
		{"type_assertion", matchTypeAssertion},
		runtimeTextRule("divide_by_zero", code.Errno(syscall.EDOM), "integer divide by zero"),
		runtimeTextRule("index_out_of_range", code.Errno(syscall.ERANGE), "out of range"),
		runtimeTextRule("nil_dereference", code.BadOptionalAccess.Code(), "nil pointer dereference", "nil map"),
		{"runtime_error", matchRuntime},

		// Resource and access failures.
		{"bad_alloc", matchAlloc},
		{"bad_typeid", matchTypeid},
		kindRule("bad_cast", failure.BadCast, code.BadCast.Code()),
		kindRule("bad_optional_access", failure.BadOptionalAccess, code.BadOptionalAccess.Code()),
		kindRule("bad_expected_access", failure.BadExpectedAccess, code.BadExpectedAccess.Code()),
		kindRule("bad_variant_access", failure.BadVariantAccess, code.BadVariantAccess.Code()),
		kindRule("bad_weak_ptr", failure.BadWeakPtr, code.BadWeakPtr.Code()),
		kindRule("bad_function_call", failure.BadFunctionCall, code.BadFunctionCall.Code()),
		kindRule("bad_exception", failure.BadException, code.BadException.Code()),

		// Anything else that is an error.
		{"exception", matchError},
	}
}

func matchCarrier(v any) (Outcome, bool) {
	if c, ok := v.(carrier); ok {
		return Outcome{Code: c.Code(), Text: c.Context()}, true
	}
	err, ok := v.(error)
	if !ok {
		return Outcome{}, false
	}
	var inner interface {
		carrier
		error
	}
	if !errors.As(err, &inner) {
		return Outcome{}, false
	}
	return Outcome{Code: inner.Code(), Text: join(prefixOf(err, inner), inner.Context())}, true
}

func matchCoder(v any) (Outcome, bool) {
	if err, ok := v.(error); ok {
		var inner interface {
			code.Coder
			error
		}
		if errors.As(err, &inner) {
			return Outcome{Code: inner.Code(), Text: prefixOf(err, inner)}, true
		}
	}
	if c, ok := v.(code.Coder); ok {
		return Outcome{Code: c.Code()}, true
	}
	return Outcome{}, false
}

func kindRule(name string, k failure.Kind, c code.Code) Rule {
	return Rule{Name: name, Match: func(v any) (Outcome, bool) {
		if fe, ok := asFailure(v); ok && fe.Kind == k {
			return Outcome{Code: c, Text: errText(v)}, true
		}
		return Outcome{}, false
	}}
}

func familyRule(name string, f failure.Family, c code.Code) Rule {
	return Rule{Name: name, Match: func(v any) (Outcome, bool) {
		if fe, ok := asFailure(v); ok && fe.Kind.Family() == f {
			return Outcome{Code: c, Text: errText(v)}, true
		}
		return Outcome{}, false
	}}
}

func matchSystem(v any) (Outcome, bool) {
	fe, ok := asFailure(v)
	if !ok || (fe.Kind != failure.System && fe.Kind != failure.Future) {
		return Outcome{}, false
	}
	c := fe.Code
	if !c.Failed() {
		c = code.UnknownError.Code()
	}
	return Outcome{Code: c, Text: join(prefixOf(v.(error), fe), fe.Text)}, true
}

func matchRegex(v any) (Outcome, bool) {
	if fe, ok := asFailure(v); ok && fe.Kind == failure.Regex {
		return regexOutcome(fe.RegexCode, fe.Expr), true
	}
	var se *syntax.Error
	if err, ok := v.(error); ok && errors.As(err, &se) {
		return regexOutcome(se.Code, se.Expr), true
	}
	return Outcome{}, false
}

func matchGRPC(v any) (Outcome, bool) {
	err, ok := v.(error)
	if !ok {
		return Outcome{}, false
	}
	c, msg, ok := grpcx.FromStatus(err)
	if !ok {
		return Outcome{}, false
	}
	return Outcome{Code: c, Text: msg}, true
}

func matchErrno(v any) (Outcome, bool) {
	err, ok := v.(error)
	if !ok {
		return Outcome{}, false
	}
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return Outcome{}, false
	}
	return Outcome{Code: code.Errno(errno), Text: prefixOf(err, errno)}, true
}

var fsSentinels = []struct {
	err   error
	errno syscall.Errno
}{
	{fs.ErrNotExist, syscall.ENOENT},
	{fs.ErrExist, syscall.EEXIST},
	{fs.ErrPermission, syscall.EACCES},
	{fs.ErrClosed, syscall.EBADF},
	{fs.ErrInvalid, syscall.EINVAL},
}

func matchFS(v any) (Outcome, bool) {
	err, ok := v.(error)
	if !ok {
		return Outcome{}, false
	}
	// syscall.Errno.Is matches the fs sentinels; an errno keeps its own code.
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return Outcome{}, false
	}
	for _, s := range fsSentinels {
		if errors.Is(err, s.err) {
			return Outcome{Code: code.Errno(s.errno), Text: prefixOf(err, s.err)}, true
		}
	}
	return Outcome{}, false
}

func matchContext(v any) (Outcome, bool) {
	err, ok := v.(error)
	if !ok {
		return Outcome{}, false
	}
	switch {
	case errors.Is(err, context.Canceled):
		return Outcome{Code: code.Errno(syscall.ECANCELED), Text: prefixOf(err, context.Canceled)}, true
	case errors.Is(err, context.DeadlineExceeded):
		return Outcome{Code: code.Errno(syscall.ETIMEDOUT), Text: prefixOf(err, context.DeadlineExceeded)}, true
	}
	return Outcome{}, false
}

func matchNumError(v any) (Outcome, bool) {
	var ne *strconv.NumError
	if !asError(v, &ne) {
		return Outcome{}, false
	}
	if errors.Is(ne.Err, strconv.ErrRange) {
		return Outcome{Code: code.Errno(syscall.ERANGE), Text: errText(v)}, true
	}
	return Outcome{Code: code.InvalidArgument.Code(), Text: errText(v)}, true
}

func matchFormat(v any) (Outcome, bool) {
	var (
		pe *time.ParseError
		se *json.SyntaxError
	)
	fe, ok := asFailure(v)
	if (ok && fe.Kind == failure.Format) || asError(v, &pe) || asError(v, &se) {
		return Outcome{Code: code.FormatError.Code(), Text: errText(v)}, true
	}
	return Outcome{}, false
}

func matchJSONType(v any) (Outcome, bool) {
	var te *json.UnmarshalTypeError
	if asError(v, &te) {
		return Outcome{Code: code.BadCast.Code(), Text: errText(v)}, true
	}
	return Outcome{}, false
}

func matchNilPanic(v any) (Outcome, bool) {
	if v == nil {
		return Outcome{Code: code.BadException.Code(), Text: "panic called with nil argument"}, true
	}
	var pn *runtime.PanicNilError
	if asError(v, &pn) {
		return Outcome{Code: code.BadException.Code(), Text: errText(v)}, true
	}
	return Outcome{}, false
}

func matchTypeAssertion(v any) (Outcome, bool) {
	var te *runtime.TypeAssertionError
	if asError(v, &te) {
		return Outcome{Code: code.BadCast.Code(), Text: errText(v)}, true
	}
	return Outcome{}, false
}

func runtimeTextRule(name string, c code.Code, substrs ...string) Rule {
	return Rule{Name: name, Match: func(v any) (Outcome, bool) {
		var re runtime.Error
		if !asError(v, &re) {
			return Outcome{}, false
		}
		msg := re.Error()
		for _, s := range substrs {
			if strings.Contains(msg, s) {
				return Outcome{Code: c, Text: errText(v)}, true
			}
		}
		return Outcome{}, false
	}}
}

func matchRuntime(v any) (Outcome, bool) {
	var re runtime.Error
	fe, ok := asFailure(v)
	if (ok && fe.Kind.Family() == failure.FamilyRuntime) || asError(v, &re) {
		return Outcome{Code: code.RuntimeError.Code(), Text: errText(v)}, true
	}
	return Outcome{}, false
}

func matchAlloc(v any) (Outcome, bool) {
	fe, ok := asFailure(v)
	if ok && fe.Kind == failure.BadAlloc {
		return Outcome{Code: code.BadAlloc.Code(), Text: errText(v)}, true
	}
	if err, ok := v.(error); ok && errors.Is(err, bytes.ErrTooLarge) {
		return Outcome{Code: code.BadAlloc.Code(), Text: errText(v)}, true
	}
	return Outcome{}, false
}

func matchTypeid(v any) (Outcome, bool) {
	var ve *reflect.ValueError
	fe, ok := asFailure(v)
	if (ok && fe.Kind == failure.BadTypeid) || asError(v, &ve) {
		return Outcome{Code: code.BadTypeid.Code(), Text: errText(v)}, true
	}
	return Outcome{}, false
}

func matchError(v any) (Outcome, bool) {
	if _, ok := v.(error); !ok {
		return Outcome{}, false
	}
	return Outcome{Code: code.Exception.Code(), Text: errText(v)}, true
}
