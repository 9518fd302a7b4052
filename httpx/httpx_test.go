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

package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/sqlstate"
	"dirpx.dev/sqlstate/adapter"
	"dirpx.dev/sqlstate/mapper"
)

func newWriter(t *testing.T, opts ...mapper.Option) Writer {
	t.Helper()
	m, err := mapper.New(opts...)
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return Writer{Mapper: m}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) *statuspb.Status {
	t.Helper()
	var st statuspb.Status
	if err := protojson.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return &st
}

func TestWrite(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()
	e := sqlstate.E(sqlstate.TransactionRollbackSerializationFailure, "could not serialize access")
	w.Write(rec, e, Meta{
		RequestID:         "req-7",
		RetryAfterSeconds: 2,
		Fields:            []*errdetails.BadRequest_FieldViolation{{Field: "email", Description: "taken"}},
	})

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q", got)
	}
	if got := rec.Header().Get("Retry-After"); got != "2" {
		t.Fatalf("Retry-After = %q", got)
	}

	st := decode(t, rec)
	if codes.Code(st.GetCode()) != codes.Aborted || st.GetMessage() != "could not serialize access" {
		t.Fatalf("body = %v", st)
	}
	if len(st.GetDetails()) != 4 {
		t.Fatalf("want 4 details, got %d", len(st.GetDetails()))
	}

	var info errdetails.ErrorInfo
	if err := st.GetDetails()[0].UnmarshalTo(&info); err != nil {
		t.Fatalf("first detail must be ErrorInfo: %v", err)
	}
	if info.GetReason() != "40001" || info.GetDomain() != adapter.Domain || info.GetMetadata()[adapter.MetaSubclass] != "001" {
		t.Fatalf("ErrorInfo = %v", &info)
	}

	var retry errdetails.RetryInfo
	if err := st.GetDetails()[2].UnmarshalTo(&retry); err != nil {
		t.Fatalf("third detail must be RetryInfo: %v", err)
	}
	if retry.GetRetryDelay().GetSeconds() != 2 {
		t.Fatalf("RetryInfo = %v", &retry)
	}
}

func TestWrite_MapperOverride(t *testing.T) {
	w := newWriter(t, mapper.WithHTTPPrefix("22012", http.StatusUnprocessableEntity))
	rec := httptest.NewRecorder()
	w.Write(rec, sqlstate.E(sqlstate.DataExceptionDivisionByZero, ""), Meta{})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "" {
		t.Fatal("Retry-After must not be set")
	}
	st := decode(t, rec)
	if st.GetMessage() != "division by zero" || len(st.GetDetails()) != 1 {
		t.Fatalf("body = %v", st)
	}
}

func TestWrite_Nil(t *testing.T) {
	rec := httptest.NewRecorder()
	newWriter(t).Write(rec, nil, Meta{})
	if rec.Body.Len() != 0 {
		t.Fatal("nil error must write nothing")
	}
}

type driverError struct{}

func (driverError) Error() string    { return "pq: relation \"users\" does not exist" }
func (driverError) SQLState() string { return "42P01" }

func TestWriteError(t *testing.T) {
	w := newWriter(t)

	rec := httptest.NewRecorder()
	w.WriteError(rec, driverError{}, Meta{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("driver error status = %d, want 400", rec.Code)
	}
	st := decode(t, rec)
	var info errdetails.ErrorInfo
	if err := st.GetDetails()[0].UnmarshalTo(&info); err != nil || info.GetReason() != "42000" {
		t.Fatalf("ErrorInfo = %v, %v", &info, err)
	}

	rec = httptest.NewRecorder()
	w.WriteError(rec, errors.New("boom"), Meta{})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("plain error status = %d, want 500", rec.Code)
	}
	st = decode(t, rec)
	if codes.Code(st.GetCode()) != codes.Internal || st.GetMessage() != "boom" || len(st.GetDetails()) != 0 {
		t.Fatalf("body = %v", st)
	}
}
