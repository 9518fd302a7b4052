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

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/sqlstate"
	"dirpx.dev/sqlstate/adapter"
	"dirpx.dev/sqlstate/mapper"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/users.v1.Users/Create"}

// driverError mimics a database driver error exposing SQLState().
type driverError struct{ code string }

func (e *driverError) Error() string    { return "driver: " + e.code }
func (e *driverError) SQLState() string { return e.code }

func newFixture(t *testing.T) *interceptorFixture {
	t.Helper()
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	core, logs := observer.New(zapcore.DebugLevel)
	return &interceptorFixture{
		icpt: UnaryServerInterceptor(m, func(ctx context.Context, e *sqlstate.Error) Extras {
			return Extras{
				RequestID:  "req-1",
				RetryDelay: 250 * time.Millisecond,
				Links:      []*errdetails.Help_Link{{Description: "docs", Url: "https://example.invalid/sqlstate"}},
			}
		}, WithLogger(zap.New(core))),
		logs: logs,
	}
}

type interceptorFixture struct {
	icpt grpc.UnaryServerInterceptor
	logs *observer.ObservedLogs
}

func (f *interceptorFixture) call(err error) (any, error) {
	return f.icpt(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		if err != nil {
			return nil, err
		}
		return "ok", nil
	})
}

func TestInterceptor_PassThrough(t *testing.T) {
	f := newFixture(t)
	resp, err := f.call(nil)
	if err != nil || resp != "ok" {
		t.Fatalf("got (%v, %v), want (ok, nil)", resp, err)
	}

	plain := errors.New("boom")
	if _, err := f.call(plain); err != plain {
		t.Fatalf("foreign errors must pass through unchanged, got %v", err)
	}
	if f.logs.Len() != 0 {
		t.Fatalf("nothing should be logged, got %d entries", f.logs.Len())
	}
}

func TestInterceptor_MapsError(t *testing.T) {
	f := newFixture(t)
	src := sqlstate.E(sqlstate.TransactionRollbackSerializationFailure, "could not serialize access")
	_, err := f.call(fmt.Errorf("create user: %w", src))

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("expected a gRPC status error, got %v", err)
	}
	if st.Code() != codes.Aborted {
		t.Fatalf("code = %v, want Aborted", st.Code())
	}
	if st.Message() != "could not serialize access" {
		t.Fatalf("message = %q", st.Message())
	}

	ei, ok := ExtractErrorInfo(err)
	if !ok {
		t.Fatal("ErrorInfo missing")
	}
	if ei.GetReason() != "40001" || ei.GetDomain() != adapter.Domain {
		t.Fatalf("ErrorInfo = %v", ei)
	}
	md := ei.GetMetadata()
	if md[adapter.MetaClass] != "40" || md[adapter.MetaSubclass] != "001" || md[adapter.MetaCategory] != "exception" {
		t.Fatalf("metadata = %v", md)
	}

	got, ok := ExtractState(err)
	if !ok || got != sqlstate.TransactionRollbackSerializationFailure {
		t.Fatalf("ExtractState = %s, %v", got, ok)
	}
	if d, ok := ExtractRetryDelay(err); !ok || d != 250*time.Millisecond {
		t.Fatalf("ExtractRetryDelay = %v, %v", d, ok)
	}

	var sawRequest, sawHelp bool
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.RequestInfo:
			sawRequest = v.GetRequestId() == "req-1"
		case *errdetails.Help:
			sawHelp = len(v.GetLinks()) == 1
		}
	}
	if !sawRequest || !sawHelp {
		t.Fatalf("RequestInfo=%v Help=%v", sawRequest, sawHelp)
	}

	entries := f.logs.FilterMessage("sqlstate error mapped").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["sqlstate"] != "40001" || fields["method"] != info.FullMethod {
		t.Fatalf("unexpected log fields: %v", fields)
	}
}

func TestInterceptor_DriverError(t *testing.T) {
	f := newFixture(t)
	_, err := f.call(&driverError{code: "08006"})

	st, _ := gstatus.FromError(err)
	if st.Code() != codes.Unavailable {
		t.Fatalf("code = %v, want Unavailable", st.Code())
	}
	if got, ok := ExtractState(err); !ok || got != sqlstate.ConnectionExceptionConnectionFailure {
		t.Fatalf("ExtractState = %s, %v", got, ok)
	}

	// unknown classes survive as unrecognized states
	_, err = f.call(&driverError{code: "P0001"})
	got, ok := ExtractState(err)
	if !ok || got.Known() || got.String() != "P0001" {
		t.Fatalf("ExtractState = %s, %v", got, ok)
	}
	if st, _ := gstatus.FromError(err); st.Code() != codes.Internal {
		t.Fatalf("code = %v, want Internal", st.Code())
	}

	// malformed driver codes are not ours
	bad := &driverError{code: "oops"}
	if _, err := f.call(bad); err != bad {
		t.Fatalf("malformed SQLSTATE must pass through, got %v", err)
	}
}

func TestInterceptor_DefaultsWithoutMeta(t *testing.T) {
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	icpt := UnaryServerInterceptor(m, nil)
	_, err = icpt(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, sqlstate.E(sqlstate.DataExceptionDivisionByZero, "")
	})
	st, _ := gstatus.FromError(err)
	if st.Code() != codes.InvalidArgument || st.Message() != "division by zero" {
		t.Fatalf("status = %v %q", st.Code(), st.Message())
	}
	if len(st.Details()) != 1 {
		t.Fatalf("only ErrorInfo expected, got %d details", len(st.Details()))
	}
	if _, ok := ExtractRetryDelay(err); ok {
		t.Fatal("no retry hint expected")
	}
}

func TestExtract_NonStatus(t *testing.T) {
	if _, ok := ExtractState(nil); ok {
		t.Fatal("nil error has no state")
	}
	if _, ok := ExtractState(errors.New("plain")); ok {
		t.Fatal("plain error has no state")
	}
	if _, ok := ExtractState(gstatus.Error(codes.Internal, "x")); ok {
		t.Fatal("status without details has no state")
	}
}
