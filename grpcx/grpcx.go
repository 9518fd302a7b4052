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

// Package grpcx projects sqlstate errors onto gRPC statuses.
//
// Errors leave a server as a status whose code is resolved by an
// apis.Mapper and whose details carry a google.rpc.ErrorInfo:
//
//	reason:   "40001"
//	domain:   "sqlstate"
//	metadata: {class: "40", subclass: "001", category: "exception"}
//
// Clients read the state back with ExtractState.
package grpcx

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/sqlstate"
	"dirpx.dev/sqlstate/adapter"
	"dirpx.dev/sqlstate/apis"
)

// Extras holds optional metadata attached to the status next to ErrorInfo.
// All fields are optional.
type Extras struct {
	// RequestID is a client/server correlation token. Set together with
	// ServingData it becomes a google.rpc.RequestInfo detail.
	RequestID   string
	ServingData string

	// RetryDelay becomes a google.rpc.RetryInfo detail when positive.
	RetryDelay time.Duration

	// Links become a google.rpc.Help detail.
	Links []*errdetails.Help_Link
}

// MetaFn extracts Extras from context and the error.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, e *sqlstate.Error) Extras

// Option configures the interceptor.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

// WithLogger sets the logger used to record mapped errors at debug level.
// The default logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// errors carrying a SQLSTATE into gRPC statuses with an ErrorInfo detail.
//
// A *sqlstate.Error anywhere in the chain is used as is. Other errors that
// implement apis.StatefulError (database driver errors) are decoded leniently
// and wrapped. Everything else is returned unchanged.
//
// The provided apis.Mapper resolves the gRPC code. metaFn may be nil.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn, opts ...Option) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *sqlstate.Error) Extras { return Extras{} }
	}
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		se, ok := sqlstate.AsError(err)
		if !ok {
			// Not ours: return as-is.
			return nil, err
		}

		st := m.Status(se.State)
		cfg.logger.Debug("sqlstate error mapped",
			zap.String("method", info.FullMethod),
			zap.String("sqlstate", se.State.String()),
			zap.Stringer("category", se.State.Category()),
			zap.Int("http_status", st.HTTP),
			zap.Stringer("grpc_code", st.GRPC),
			zap.Error(err),
		)

		base := gstatus.New(st.GRPC, messageOf(se))
		details := buildDetails(se, metaFn(ctx, se))
		if with, derr := base.WithDetails(details...); derr == nil {
			return nil, with.Err()
		}
		return nil, base.Err()
	}
}

func messageOf(e *sqlstate.Error) string {
	if e.Message != "" {
		return e.Message
	}
	return e.State.Description()
}

func buildDetails(e *sqlstate.Error, ex Extras) []protoadapt.MessageV1 {
	out := []protoadapt.MessageV1{adapter.ErrorInfo(e.State)}

	if ex.RequestID != "" || ex.ServingData != "" {
		out = append(out, &errdetails.RequestInfo{RequestId: ex.RequestID, ServingData: ex.ServingData})
	}
	if ex.RetryDelay > 0 {
		out = append(out, &errdetails.RetryInfo{RetryDelay: durationpb.New(ex.RetryDelay)})
	}
	if len(ex.Links) > 0 {
		out = append(out, &errdetails.Help{Links: ex.Links})
	}
	return out
}

// ExtractErrorInfo pulls the sqlstate ErrorInfo out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok && ei.GetDomain() == adapter.Domain {
			return ei, true
		}
	}
	return nil, false
}

// ExtractState decodes the SQLSTATE carried by a gRPC error. Codes of
// unknown classes come back as unrecognized states.
func ExtractState(err error) (sqlstate.State, bool) {
	ei, ok := ExtractErrorInfo(err)
	if !ok {
		return sqlstate.Empty, false
	}
	st, perr := sqlstate.ParseLenient(ei.GetReason())
	if perr != nil {
		return sqlstate.Empty, false
	}
	return st, true
}

// ExtractRetryDelay returns the retry delay hint of a gRPC error, if any.
func ExtractRetryDelay(err error) (time.Duration, bool) {
	if err == nil {
		return 0, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return 0, false
	}
	for _, d := range st.Details() {
		if ri, ok := d.(*errdetails.RetryInfo); ok && ri.GetRetryDelay() != nil {
			return ri.GetRetryDelay().AsDuration(), true
		}
	}
	return 0, false
}
