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

// Package code holds the two-level errkit taxonomy: specific error codes and
// the coarse conditions they group into.
//
// A Code is a (value, Category) pair. Codes from different categories live
// in one comparable space:
//
//   - Kind values (InvalidArgument, BadAlloc, ...) belong to the "ExtraError"
//     category and each maps to exactly one Condition;
//   - syscall.Errno values belong to the "generic" category and keep their
//     platform meaning (they are not remapped to a Condition);
//   - other packages may register their own categories and converters
//     (see grpcx for gRPC status codes).
//
// The zero Code is the success sentinel: it reports Failed() == false and
// compares equal to every other "no error" code.
//
// Kind, Condition and Code all implement the error interface, the same way
// syscall.Errno does, so they can be passed to errors.Is and to
// errkit.Error.Is directly.
//
// All tables in this package are built at init time and are read-only
// afterwards; lookups are safe for concurrent use.
package code
