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

// Package server provides gRPC server boundaries built on errkit.
//
// UnaryServerInterceptor runs every handler inside errkit.Try, so neither a
// panic nor a plain Go error reaches the transport: both are classified and
// returned as a *status.Status whose code is projected with grpcx.ToGRPC.
package server

import (
	"context"

	"dirpx.dev/errkit"
	"dirpx.dev/errkit/grpcx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that converts
// handler failures into gRPC statuses. The full method name is used as the
// error context. opts configure the boundary (see errkit.WithClassifier).
func UnaryServerInterceptor(opts ...errkit.Option) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		method := ""
		if info != nil {
			method = info.FullMethod
		}
		r := errkit.Try(func() (any, error) { return handler(ctx, req) }, method, opts...)
		if r.OK() {
			return r.Value(), nil
		}
		return nil, Status(r.Err()).Err()
	}
}

// Status converts e into a gRPC status carrying e's message.
// A successful e yields codes.OK.
func Status(e errkit.Error) *status.Status {
	if !e.Failed() {
		return status.New(codes.OK, "")
	}
	return status.New(grpcx.ToGRPC(e.Code()), e.Message())
}
