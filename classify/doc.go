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

// Package classify turns arbitrary failure values (recovered panics and
// returned errors) into errkit codes with a context text.
//
// # Overview
//
// A Classifier owns an ordered table of rules. Each rule inspects the value
// and either claims it, producing an Outcome, or passes. Rules are evaluated
// most-specific-first, so a generic "any logic failure" rule always comes
// after the specific logic rules it would otherwise shadow:
//
//  1. custom rules registered with WithRule, in registration order;
//  2. structured passthrough of values that already carry an errkit code;
//  3. failure kinds of the logic family, specific before generic;
//  4. failure kinds of the runtime family (range, overflow, underflow, regex);
//  5. platform and transport errors (gRPC status, syscall.Errno, io/fs
//     sentinels, context cancellation);
//  6. standard library parse errors (strconv, time, encoding/json);
//  7. Go runtime panics (type assertion, nil panic, divide by zero, index
//     out of range, nil dereference), then any other runtime.Error;
//  8. resource and access failure kinds;
//  9. any other error (Exception);
//  10. the fallback for non-error values (UnknownException by default).
//
// # Building a classifier
//
// A Classifier is created once and reused:
//
//	c, err := classify.New(
//	    classify.WithRule("sql_no_rows", func(v any) (classify.Outcome, bool) {
//	        if err, ok := v.(error); ok && errors.Is(err, sql.ErrNoRows) {
//	            return classify.Outcome{Code: code.Errno(syscall.ENOENT), Text: "no rows"}, true
//	        }
//	        return classify.Outcome{}, false
//	    }),
//	)
//
// Default returns the shared classifier with the built-in table only.
//
// # Diagnostics
//
// Classifier.Explain returns a human-readable trace of which rule claimed a
// value. It is intended for inspection and logging, not for stable machine
// parsing.
//
// # Immutability
//
// New copies every option into a frozen snapshot. A Classifier is safe for
// concurrent use.
package classify
