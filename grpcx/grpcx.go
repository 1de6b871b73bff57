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

// Package grpcx bridges gRPC status codes and errkit codes.
//
// It registers a "grpc" category so that codes.Code values and errors
// carrying a *status.Status resolve through code.Of, and it projects any
// errkit code back onto a gRPC code for the transport edge (see ToGRPC and
// the server subpackage).
package grpcx

import (
	"errors"
	"strconv"

	"dirpx.dev/errkit/code"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// category describes gRPC status codes.
type category struct{}

// Category is the "grpc" category.
var Category code.Category = category{}

func (category) Name() string { return "grpc" }

// Message returns a human-readable sentence for the gRPC code v.
func (category) Message(v int) string {
	if m, ok := messages[codes.Code(v)]; ok {
		return m
	}
	return "Unrecognized gRPC status code " + strconv.Itoa(v)
}

// DefaultCondition groups gRPC codes into errkit conditions.
func (category) DefaultCondition(v int) code.Condition {
	switch codes.Code(v) {
	case codes.OK:
		return code.NoCondition
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return code.ConditionLogic
	case codes.Unknown, codes.Internal, codes.DataLoss, codes.Unavailable,
		codes.DeadlineExceeded, codes.Aborted:
		return code.ConditionRuntime
	case codes.ResourceExhausted:
		return code.ConditionResource
	case codes.NotFound, codes.AlreadyExists, codes.PermissionDenied, codes.Unauthenticated:
		return code.ConditionAccess
	default:
		return code.ConditionOther
	}
}

var messages = map[codes.Code]string{
	codes.OK:                 "OK",
	codes.Canceled:           "Operation canceled by the caller",
	codes.Unknown:            "Unknown error",
	codes.InvalidArgument:    "Invalid argument",
	codes.DeadlineExceeded:   "Deadline exceeded",
	codes.NotFound:           "Not found",
	codes.AlreadyExists:      "Already exists",
	codes.PermissionDenied:   "Permission denied",
	codes.ResourceExhausted:  "Resource exhausted",
	codes.FailedPrecondition: "Failed precondition",
	codes.Aborted:            "Aborted",
	codes.OutOfRange:         "Out of range",
	codes.Unimplemented:      "Unimplemented",
	codes.Internal:           "Internal error",
	codes.Unavailable:        "Service unavailable",
	codes.DataLoss:           "Data loss",
	codes.Unauthenticated:    "Unauthenticated",
}

// Code returns c as an errkit code in the grpc category. codes.OK maps to
// code.Success.
func Code(c codes.Code) code.Code {
	return code.Make(int(c), Category)
}

// FromStatus resolves err into a grpc-category code and the status message.
// It reports false when err does not carry a gRPC status (including nil).
func FromStatus(err error) (code.Code, string, bool) {
	if err == nil {
		return code.Success, "", false
	}
	// The message comes from the status itself, without wrapping text.
	var gs interface{ GRPCStatus() *status.Status }
	if !errors.As(err, &gs) {
		return code.Success, "", false
	}
	st := gs.GRPCStatus()
	if st == nil {
		return code.Success, "", false
	}
	return Code(st.Code()), st.Message(), true
}

// convert is the code.Converter registered for this package.
func convert(v any) (code.Code, bool) {
	switch x := v.(type) {
	case codes.Code:
		return Code(x), true
	case error:
		c, _, ok := FromStatus(x)
		return c, ok
	}
	return code.Success, false
}

func init() {
	code.MustRegisterCategory(Category)
	code.RegisterConverter(convert)
}
