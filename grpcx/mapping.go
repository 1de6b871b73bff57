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

package grpcx

import (
	"syscall"

	"dirpx.dev/errkit/code"
	"google.golang.org/grpc/codes"
)

// kindGRPC maps errkit kinds onto canonical gRPC codes.
var kindGRPC = map[code.Kind]codes.Code{
	// Input / preconditions.
	code.InvalidArgument:      codes.InvalidArgument,
	code.LengthError:          codes.OutOfRange,
	code.ValueTooSmall:        codes.OutOfRange,
	code.NonexistentLocalTime: codes.InvalidArgument, // The wall-clock time was never valid.
	code.AmbiguousLocalTime:   codes.InvalidArgument, // Caller must disambiguate the offset.
	code.FormatError:          codes.InvalidArgument,
	code.LogicError:           codes.FailedPrecondition,

	// Resource / type system.
	code.BadAlloc:  codes.ResourceExhausted,
	code.BadTypeid: codes.Internal,
	code.BadCast:   codes.Internal,

	// Access to absent values is a server-side bug from the client's view.
	code.BadOptionalAccess: codes.Internal,
	code.BadExpectedAccess: codes.Internal,
	code.BadVariantAccess:  codes.Internal,
	code.BadWeakPtr:        codes.Internal,
	code.BadFunctionCall:   codes.Unimplemented, // Nothing is bound to the call.

	// Catch-alls.
	code.RuntimeError:     codes.Internal,
	code.BadException:     codes.Internal,
	code.Exception:        codes.Unknown,
	code.UnknownException: codes.Unknown,
	code.UnknownError:     codes.Unknown,
}

// errnoGRPC maps well-known platform errors onto canonical gRPC codes.
var errnoGRPC = map[syscall.Errno]codes.Code{
	syscall.EINVAL:    codes.InvalidArgument,
	syscall.EDOM:      codes.OutOfRange,
	syscall.ERANGE:    codes.OutOfRange,
	syscall.EOVERFLOW: codes.OutOfRange,
	syscall.ENOENT:    codes.NotFound,
	syscall.EEXIST:    codes.AlreadyExists,
	syscall.EPERM:     codes.PermissionDenied,
	syscall.EACCES:    codes.PermissionDenied,
	syscall.ENOMEM:    codes.ResourceExhausted,
	syscall.ENOSPC:    codes.ResourceExhausted,
	syscall.ECANCELED: codes.Canceled,
	syscall.ETIMEDOUT: codes.DeadlineExceeded,
	syscall.EAGAIN:    codes.Unavailable,
	syscall.ENOSYS:    codes.Unimplemented,
}

// conditionGRPC is the fallback by condition for codes with no direct entry.
var conditionGRPC = map[code.Condition]codes.Code{
	code.ConditionLogic:    codes.FailedPrecondition,
	code.ConditionRuntime:  codes.Internal,
	code.ConditionResource: codes.ResourceExhausted,
	code.ConditionAccess:   codes.Internal,
	code.ConditionOther:    codes.Unknown,
}

// ToGRPC projects an errkit code onto a gRPC code.
//
// Resolution order: success (OK), grpc category (identity), ExtraError kind
// table, platform errno table, condition fallback, Unknown.
func ToGRPC(c code.Code) codes.Code {
	if !c.Failed() {
		return codes.OK
	}
	switch c.Category() {
	case Category:
		return codes.Code(c.Value())
	case code.Extra:
		if g, ok := kindGRPC[code.Kind(c.Value())]; ok {
			return g
		}
	case code.Generic:
		if g, ok := errnoGRPC[syscall.Errno(c.Value())]; ok {
			return g
		}
	}
	if g, ok := conditionGRPC[c.Condition()]; ok {
		return g
	}
	return codes.Unknown
}
