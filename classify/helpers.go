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
	"errors"
	"strings"

	"dirpx.dev/errkit/failure"
)

// asError reports whether v is an error whose chain holds a target.
func asError(v any, target any) bool {
	err, ok := v.(error)
	return ok && errors.As(err, target)
}

// asFailure finds the first *failure.Error in v's chain.
func asFailure(v any) (*failure.Error, bool) {
	var fe *failure.Error
	if asError(v, &fe) && fe != nil {
		return fe, true
	}
	return nil, false
}

// errText returns the message of v, which must be an error.
func errText(v any) string {
	return v.(error).Error()
}

// prefixOf returns the text err adds in front of inner, with the ": "
// separator removed. It returns "" when err is inner itself and the whole
// message of err when the wrapping does not end with inner's text.
func prefixOf(err, inner error) string {
	outer, in := err.Error(), inner.Error()
	if outer == in {
		return ""
	}
	p, ok := strings.CutSuffix(outer, in)
	if !ok {
		return outer
	}
	return strings.TrimSuffix(strings.TrimRight(p, " "), ":")
}

// join composes two context fragments as "a: b", or returns whichever is
// non-empty.
func join(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + ": " + b
	}
}
