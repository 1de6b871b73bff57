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

// Option configures the Classifier at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Classifier.
type Option func(*builder)

// WithRule registers a custom rule ahead of the built-in table. Custom rules
// run in registration order; the first one that claims a value wins.
func WithRule(name string, match MatchFunc) Option {
	return func(b *builder) { b.custom = append(b.custom, Rule{Name: name, Match: match}) }
}

// WithoutRule removes a built-in rule by name (see Rules for the names).
func WithoutRule(name string) Option {
	return func(b *builder) { b.disabled = append(b.disabled, name) }
}

// WithFallback sets the code reported for values no rule claims.
// It must denote a failure; the default is code.UnknownException.
func WithFallback(c code.Code) Option {
	return func(b *builder) { b.fallback = c }
}
