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

package code

import (
	"errors"
	"strconv"
	"strings"
)

// Kind is the closed enumeration of errkit-specific error identities.
//
// Values are stable and never reused. 0 is reserved for "no error" and is
// not a valid Kind.
type Kind int

const (
	// InvalidArgument is reported when an argument value has been rejected
	// before any work was done.
	InvalidArgument Kind = iota + 1

	// LengthError is reported when an operation would exceed a maximum
	// permitted size.
	LengthError

	// ValueTooSmall is reported on arithmetic underflow.
	ValueTooSmall

	// NonexistentLocalTime is reported when a local wall-clock time falls
	// into a daylight-saving gap.
	NonexistentLocalTime

	// AmbiguousLocalTime is reported when a local wall-clock time occurs
	// twice because of a daylight-saving overlap.
	AmbiguousLocalTime

	// FormatError is reported when text could not be parsed or formatted.
	FormatError

	// BadAlloc is reported when memory or another resource could not be
	// allocated.
	BadAlloc

	// BadTypeid is reported when dynamic type information was requested
	// from an invalid value.
	BadTypeid

	// BadCast is reported on a failed dynamic conversion.
	BadCast

	// BadOptionalAccess is reported when an absent optional value is read.
	BadOptionalAccess

	// BadExpectedAccess is reported when the value of a failed Result is read.
	BadExpectedAccess

	// BadVariantAccess is reported when a tagged union is read as the wrong
	// alternative.
	BadVariantAccess

	// BadWeakPtr is reported when an expired weak reference is dereferenced.
	BadWeakPtr

	// BadFunctionCall is reported when an empty function value is invoked.
	BadFunctionCall

	// BadException is reported when the failure itself could not be
	// represented (for example a panic with a nil value).
	BadException

	// Exception is the catch-all for recognised errors with no more
	// specific mapping.
	Exception

	// UnknownException is the catch-all for panic values that are not
	// errors at all.
	UnknownException

	// UnknownError aggregates failures that have no single identity, such
	// as "every alternative failed".
	UnknownError

	// LogicError covers logic failures without a more specific Kind.
	LogicError

	// RuntimeError covers runtime failures without a more specific Kind.
	RuntimeError
)

// kindInfo is one row of the Kind registry.
type kindInfo struct {
	name      string
	message   string
	condition Condition
}

var kindTable = [...]kindInfo{
	InvalidArgument:      {"InvalidArgument", "Invalid argument exception", ConditionLogic},
	LengthError:          {"LengthError", "Length error exception", ConditionLogic},
	ValueTooSmall:        {"ValueTooSmall", "Value too small (underflow exception)", ConditionRuntime},
	NonexistentLocalTime: {"NonexistentLocalTime", "Nonexistent local time exception", ConditionRuntime},
	AmbiguousLocalTime:   {"AmbiguousLocalTime", "Ambiguous local time exception", ConditionRuntime},
	FormatError:          {"FormatError", "Format error exception", ConditionRuntime},
	BadAlloc:             {"BadAlloc", "Bad allocation exception", ConditionResource},
	BadTypeid:            {"BadTypeid", "Bad typeid exception", ConditionResource},
	BadCast:              {"BadCast", "Bad cast exception", ConditionResource},
	BadOptionalAccess:    {"BadOptionalAccess", "Bad optional access exception", ConditionAccess},
	BadExpectedAccess:    {"BadExpectedAccess", "Bad expected access exception", ConditionAccess},
	BadVariantAccess:     {"BadVariantAccess", "Bad variant access exception", ConditionAccess},
	BadWeakPtr:           {"BadWeakPtr", "Bad weak pointer exception", ConditionAccess},
	BadFunctionCall:      {"BadFunctionCall", "Bad function call exception", ConditionAccess},
	BadException:         {"BadException", "Bad exception", ConditionOther},
	Exception:            {"Exception", "Exception caught", ConditionOther},
	UnknownException:     {"UnknownException", "Unknown exception caught", ConditionOther},
	UnknownError:         {"UnknownError", "Unknown error", ConditionOther},
	LogicError:           {"LogicError", "Logic error exception", ConditionLogic},
	RuntimeError:         {"RuntimeError", "Runtime error exception", ConditionRuntime},
}

const unrecognizedKind = "Unrecognized ExtraError"

// ErrKindInvalid is returned by ParseKind for names that are not a Kind.
var ErrKindInvalid = errors.New("errkit: invalid kind")

// ParseKind resolves a Kind by its identifier, case-insensitively and
// ignoring surrounding spaces, dashes and underscores ("bad-cast" and
// "BadCast" are the same Kind).
func ParseKind(s string) (Kind, error) {
	norm := normalizeName(s)
	if norm == "" {
		return 0, ErrKindInvalid
	}
	for _, k := range Kinds() {
		if normalizeName(kindTable[k].name) == norm {
			return k, nil
		}
	}
	return 0, ErrKindInvalid
}

// MustParseKind is like ParseKind but panics on error.
func MustParseKind(s string) Kind {
	k, err := ParseKind(s)
	if err != nil {
		panic(err)
	}
	return k
}

func normalizeName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	return strings.ToLower(s)
}

// Kinds returns every defined Kind in ascending value order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindTable)-1)
	for k := Kind(1); int(k) < len(kindTable); k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is one of the defined Kinds.
func (k Kind) Valid() bool {
	return k > 0 && int(k) < len(kindTable)
}

// Code returns k as a canonical Code in the ExtraError category.
func (k Kind) Code() Code { return Make(int(k), Extra) }

// Message returns the registry message, or "Unrecognized ExtraError".
func (k Kind) Message() string {
	if !k.Valid() {
		return unrecognizedKind
	}
	return kindTable[k].message
}

// Error implements the error interface.
func (k Kind) Error() string { return k.Message() }

// String returns the identifier of k, e.g. "BadCast", or "Kind(42)".
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindTable[k].name
}

// Condition returns the fixed condition of k. Unknown values map to
// ConditionOther.
func (k Kind) Condition() Condition {
	if !k.Valid() {
		return ConditionOther
	}
	return kindTable[k].condition
}

// extraCategory is the category of Kind values.
type extraCategory struct{}

// Extra is the "ExtraError" category.
var Extra Category = extraCategory{}

func (extraCategory) Name() string                     { return "ExtraError" }
func (extraCategory) Message(v int) string             { return Kind(v).Message() }
func (extraCategory) DefaultCondition(v int) Condition { return Kind(v).Condition() }
