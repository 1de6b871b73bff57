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
	"cmp"
	"strconv"
	"strings"
	"syscall"
)

// Category describes one code space: its name, the message of every value
// and the Condition each value belongs to by default.
//
// Implementations must be comparable and should be stateless singletons;
// two Codes are equal only when both their values and their categories are.
type Category interface {
	// Name returns the stable category name, e.g. "ExtraError" or "generic".
	Name() string

	// Message returns the human-readable message for v. It must not panic
	// for unknown values; return a generic "unrecognized" text instead.
	Message(v int) string

	// DefaultCondition maps v to its coarse Condition. Categories that do
	// not participate in the condition taxonomy return NoCondition.
	DefaultCondition(v int) Condition
}

// Coder is implemented by values that can be resolved to a canonical Code.
type Coder interface {
	Code() Code
}

// Code is the canonical, comparable representation of an error code.
//
// It is a small value (an int and a category reference) and is safe to copy,
// compare with == and use as a map key.
type Code struct {
	value int
	cat   Category
}

// Success is the "no error" sentinel. It is the zero value of Code.
var Success Code

// Ensure the taxonomy types can be used wherever a Coder or error is expected.
var (
	_ Coder = Code{}
	_ Coder = Kind(0)
	_ error = Code{}
	_ error = Kind(0)
	_ error = Condition(0)
)

// Make builds a Code from a raw value and its category.
//
// A zero value always yields Success, whatever the category, so that every
// "no error" compares equal. A nil category is treated as Generic.
func Make(v int, cat Category) Code {
	if v == 0 {
		return Success
	}
	if cat == nil {
		cat = Generic
	}
	return Code{value: v, cat: cat}
}

// Errno returns the Code of a platform error number in the generic category.
func Errno(e syscall.Errno) Code {
	return Make(int(e), Generic)
}

// Value returns the numeric value of the code.
func (c Code) Value() int { return c.value }

// Category returns the code's category. Success reports Generic.
func (c Code) Category() Category {
	if c.cat == nil {
		return Generic
	}
	return c.cat
}

// Message returns the category message for the code.
func (c Code) Message() string {
	return c.Category().Message(c.value)
}

// Condition returns the default Condition of the code, or NoCondition for
// Success and for categories outside the condition taxonomy.
func (c Code) Condition() Condition {
	if c.value == 0 {
		return NoCondition
	}
	return c.Category().DefaultCondition(c.value)
}

// Failed reports whether c denotes an error (anything but Success).
func (c Code) Failed() bool { return c.value != 0 }

// Code implements Coder.
func (c Code) Code() Code { return c }

// Error implements the error interface by returning the category message.
func (c Code) Error() string { return c.Message() }

// String returns "<category>:<value>", e.g. "ExtraError:7" or "generic:22".
func (c Code) String() string {
	return c.Category().Name() + ":" + strconv.Itoa(c.value)
}

// Compare orders codes by numeric value first and by category name second.
// It returns -1, 0 or +1 and is consistent with ==.
func (c Code) Compare(o Code) int {
	if r := cmp.Compare(c.value, o.value); r != 0 {
		return r
	}
	return strings.Compare(c.Category().Name(), o.Category().Name())
}

// Of resolves v into its canonical Code.
//
// Accepted inputs, in order:
//
//   - nil (Success);
//   - a Code or anything implementing Coder (Kind, errkit.Error, ...);
//   - a syscall.Errno;
//   - any value accepted by a converter registered with RegisterConverter.
//
// The boolean result is false when v cannot be classified; the returned Code
// is then Success and callers decide on a fallback.
func Of(v any) (Code, bool) {
	switch x := v.(type) {
	case nil:
		return Success, true
	case Code:
		return x, true
	case Coder:
		return x.Code(), true
	case syscall.Errno:
		return Errno(x), true
	}
	for _, conv := range loadConverters() {
		if c, ok := conv(v); ok {
			return c, true
		}
	}
	return Success, false
}

// ConditionOf returns the default Condition of c. It is pure and total.
func ConditionOf(c Code) Condition {
	return c.Condition()
}
