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

import "dirpx.dev/errkit/classify"

// Option configures a boundary (TryCatch, Try, TryVoid, TryResult).
type Option func(*settings)

type settings struct {
	classifier classify.Classifier
}

// WithClassifier makes the boundary classify failures with c instead of
// classify.Default(). A nil c is ignored.
func WithClassifier(c classify.Classifier) Option {
	return func(s *settings) {
		if c != nil {
			s.classifier = c
		}
	}
}

func newSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if s.classifier == nil {
		s.classifier = classify.Default()
	}
	return s
}
