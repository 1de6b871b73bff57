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

// Package httpx writes errkit errors as HTTP responses.
package httpx

import (
	"net/http"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errkit"
	"dirpx.dev/errkit/grpcx"
)

// grpcHTTP follows the canonical gRPC to HTTP mapping. Codes are first
// projected onto gRPC (see grpcx.ToGRPC), so every category gets a status.
var grpcHTTP = map[codes.Code]int{
	codes.OK:                 http.StatusOK,
	codes.Canceled:           499, // Client closed request.
	codes.Unknown:            http.StatusInternalServerError,
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.DeadlineExceeded:   http.StatusGatewayTimeout,
	codes.NotFound:           http.StatusNotFound,
	codes.AlreadyExists:      http.StatusConflict,
	codes.PermissionDenied:   http.StatusForbidden,
	codes.ResourceExhausted:  http.StatusTooManyRequests,
	codes.FailedPrecondition: http.StatusBadRequest,
	codes.Aborted:            http.StatusConflict,
	codes.OutOfRange:         http.StatusBadRequest,
	codes.Unimplemented:      http.StatusNotImplemented,
	codes.Internal:           http.StatusInternalServerError,
	codes.Unavailable:        http.StatusServiceUnavailable,
	codes.DataLoss:           http.StatusInternalServerError,
	codes.Unauthenticated:    http.StatusUnauthorized,
}

// Status returns the HTTP status code for e.
func Status(e errkit.Error) int {
	if st, ok := grpcHTTP[grpcx.ToGRPC(e.Code())]; ok {
		return st
	}
	return http.StatusInternalServerError
}

// Meta carries request-scoped values the HTTP layer adds to the view.
// All fields are optional.
type Meta struct {
	Correlation string
	TraceID     string
}

// View builds the JSON view of e:
//
//	{"code":"generic:2","category":"generic","value":2,
//	 "condition":"none","message":"open config: No such file or directory"}
//
// Meta fields are added only when set.
func View(e errkit.Error, meta Meta) (*structpb.Struct, error) {
	fields := map[string]any{
		"code":      e.Code().String(),
		"category":  e.Category().Name(),
		"value":     e.Value(),
		"condition": e.Condition().String(),
		"message":   e.Message(),
	}
	if meta.Correlation != "" {
		fields["correlation"] = meta.Correlation
	}
	if meta.TraceID != "" {
		fields["traceId"] = meta.TraceID
	}
	return structpb.NewStruct(fields)
}

// Write serializes the view of e and writes it with the status from Status.
// A successful e writes nothing.
//
// No redaction is performed: the full message, context included, is exposed.
func Write(rw http.ResponseWriter, e errkit.Error, meta Meta) {
	if !e.Failed() {
		return
	}
	view, err := View(e, meta)
	if err != nil {
		http.Error(rw, e.Message(), Status(e))
		return
	}
	b, err := protojson.Marshal(view)
	if err != nil {
		http.Error(rw, e.Message(), Status(e))
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(Status(e))
	_, _ = rw.Write(b)
}

// CorrelationHeader is read by Recover; a missing value is replaced by a
// fresh UUID.
const CorrelationHeader = "X-Correlation-ID"

// Recover wraps next so that a panic in the handler is classified and
// written as an error response. The request method and path are used as the
// error context. Panics after the handler has started writing are still
// classified, but the response may already be partially sent.
func Recover(next http.Handler, opts ...errkit.Option) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		r := errkit.TryVoid(func() { next.ServeHTTP(rw, req) }, req.Method+" "+req.URL.Path, opts...)
		if r.OK() {
			return
		}
		id := req.Header.Get(CorrelationHeader)
		if id == "" {
			id = uuid.NewString()
		}
		rw.Header().Set(CorrelationHeader, id)
		Write(rw, r.Err(), Meta{Correlation: id})
	})
}
