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

// Package errkit is a unified failure representation: a small, immutable
// Error value recording what went wrong (a comparable code.Code), how it
// groups (a code.Condition) and where or why (a free-form context), plus
// boundaries that turn panics, returned errors, errno-style flags and
// sentinel return values into that single representation.
//
// # Error
//
// An Error is a plain value: compare it with Equal, order it with Compare,
// hash it with Hash and match it with errors.Is against a code.Kind, a
// code.Condition, a syscall.Errno or another Error:
//
//	e := errkit.New(code.InvalidArgument, "parse port")
//	e.Message()                         // "parse port: Invalid argument exception"
//	errors.Is(e, code.ConditionLogic)   // true
//
// # Result
//
// Result[T] holds either a value or an Error, never both. Result[Void] is
// the outcome of an operation with no value.
//
// # Boundaries
//
// TryCatch, Try, TryVoid and TryResult run an operation and convert any
// panic (and, for Try, any returned error) into a failed Result using a
// classify.Classifier. Nothing panics across the boundary. FirstOf returns
// the first successful Result among alternatives. The errno subpackage adds
// the status-flag boundaries.
//
// The package never logs and never retries.
package errkit
