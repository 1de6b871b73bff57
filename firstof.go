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
	"strings"
	"syscall"

	"dirpx.dev/errkit/code"
)

// FirstOf returns the first successful Result among results, in order.
//
// With no results it fails with EINVAL and the context
// "No alternatives provided". When every alternative failed it fails with
// code.UnknownError and a context joining every failure message with "; ".
func FirstOf[T any](results ...Result[T]) Result[T] {
	if len(results) == 0 {
		return Fail[T](Error{code: code.Errno(syscall.EINVAL), context: "No alternatives provided"})
	}
	msgs := make([]string, 0, len(results))
	for _, r := range results {
		if r.ok {
			return r
		}
		msgs = append(msgs, r.Err().Message())
	}
	return Fail[T](Error{code: code.UnknownError.Code(), context: strings.Join(msgs, "; ")})
}
