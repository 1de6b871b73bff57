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

import "dirpx.dev/errkit/code"

type builder struct {
	// custom holds user rules, evaluated before the built-in table.
	custom []Rule

	// disabled lists built-in rule names to drop.
	disabled []string

	// fallback is the code for values nothing claims.
	fallback code.Code
}

// newBuilder creates a builder seeded with the library fallback.
func newBuilder() *builder {
	return &builder{
		fallback: code.UnknownException.Code(),
	}
}
