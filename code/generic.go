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
	"strconv"
	"strings"
	"syscall"
	"unicode"
	"unicode/utf8"
)

// genericCategory describes platform error numbers (syscall.Errno).
type genericCategory struct{}

// Generic is the "generic" category of syscall.Errno values.
var Generic Category = genericCategory{}

func (genericCategory) Name() string { return "generic" }

// Message returns the platform text of v with its first letter upper-cased,
// e.g. "Invalid argument" for EINVAL. Value 0 reports "Success".
func (genericCategory) Message(v int) string {
	if v == 0 {
		return "Success"
	}
	msg := syscall.Errno(v).Error()
	if msg == "" || strings.HasPrefix(msg, "errno ") {
		return "Unknown error " + strconv.Itoa(v)
	}
	return upperFirst(msg)
}

// DefaultCondition always reports NoCondition: platform codes are not
// remapped into the errkit condition taxonomy.
func (genericCategory) DefaultCondition(int) Condition { return NoCondition }

// ErrnoName returns the symbolic name of e ("EINVAL"), or an empty string
// when the platform does not provide one.
func ErrnoName(e syscall.Errno) string {
	return errnoName(e)
}

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
