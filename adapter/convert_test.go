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

package adapter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc/codes"

	"dirpx.dev/sqlstate"
	"dirpx.dev/sqlstate/apis"
)

type detailedCause struct{}

func (detailedCause) Error() string { return "driver: unique violation" }

func (detailedCause) ErrorDetails() []apis.Detail {
	return []apis.Detail{{Type: "constraint", Field: "users_email_key"}}
}

// legacyError exposes its cause through Cause() instead of Unwrap.
type legacyError struct{ cause error }

func (legacyError) Error() string  { return "legacy" }
func (e legacyError) Cause() error { return e.cause }

type viewCause struct{}

func (viewCause) Error() string { return "remote: rejected" }

func (viewCause) ErrorView() apis.ErrorView {
	return apis.ErrorView{
		Code:     "42501",
		Category: "exception",
		Message:  "permission denied",
		Details:  []apis.Detail{{Type: "grant", Field: "orders", Reason: "missing SELECT"}},
	}
}

type stateCarrier struct{}

func (stateCarrier) Error() string    { return "division by zero" }
func (stateCarrier) SQLState() string { return "22012" }

func TestToDescriptor(t *testing.T) {
	e := sqlstate.E(sqlstate.TransactionRollbackSerializationFailure, "")
	got := ToDescriptor(e, apis.Status{HTTP: 409, GRPC: codes.Aborted})
	want := apis.ErrorDescriptor{
		Code:       "40001",
		Class:      "40",
		Subclass:   "001",
		Category:   "exception",
		HTTPStatus: 409,
		GRPCCode:   int(codes.Aborted),
		Message:    "serialization failure",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ToDescriptor mismatch (-want +got):\n%s", diff)
	}

	classOnly := ToDescriptor(sqlstate.E(sqlstate.NoData, "nothing"), apis.Status{HTTP: 404, GRPC: codes.NotFound})
	if classOnly.Subclass != "" || classOnly.Category != "no_data" || classOnly.Message != "nothing" {
		t.Fatalf("unexpected descriptor: %+v", classOnly)
	}

	if got := ToDescriptor(nil, apis.Status{}); got != (apis.ErrorDescriptor{}) {
		t.Fatalf("nil error must give an empty descriptor, got %+v", got)
	}
}

func TestToView(t *testing.T) {
	e := sqlstate.E(sqlstate.IntegrityConstraintViolation, "email already taken",
		sqlstate.WithDetailsOption(map[string]any{"table": "users", "attempt": 2}),
		sqlstate.WithCauseOption(detailedCause{}),
	)
	got := ToView(e)
	want := apis.ErrorView{
		Code:     "23000",
		Category: "exception",
		Message:  "email already taken",
		Details: []apis.Detail{
			{Type: "extra", Field: "attempt", Info: map[string]string{"value": "2"}},
			{Type: "extra", Field: "table", Info: map[string]string{"value": "users"}},
			{Type: "constraint", Field: "users_email_key"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ToView mismatch (-want +got):\n%s", diff)
	}
}

func TestToView_NoDetails(t *testing.T) {
	got := ToView(sqlstate.E(sqlstate.Warning, "").WithCause(errors.New("plain")))
	if got.Details != nil {
		t.Fatalf("expected no details, got %v", got.Details)
	}
	if got.Message != "warning" || got.Category != "warning" {
		t.Fatalf("unexpected view: %+v", got)
	}
	if v := ToView(nil); v.Code != "" || v.Details != nil {
		t.Fatalf("nil error must give an empty view, got %+v", v)
	}
}

func TestDetails_WalksCauseChain(t *testing.T) {
	cause := legacyError{cause: fmt.Errorf("query: %w", detailedCause{})}
	e := sqlstate.E(sqlstate.IntegrityConstraintViolation, "",
		sqlstate.WithCauseOption(fmt.Errorf("insert: %w", cause)))

	want := []apis.Detail{{Type: "constraint", Field: "users_email_key"}}
	if diff := cmp.Diff(want, Details(e)); diff != "" {
		t.Fatalf("Details mismatch (-want +got):\n%s", diff)
	}

	withView := sqlstate.E(sqlstate.InvalidAuthorizationSpecification, "",
		sqlstate.WithDetailOption("user", "bob"),
		sqlstate.WithCauseOption(legacyError{cause: viewCause{}}))
	want = []apis.Detail{
		{Type: "extra", Field: "user", Info: map[string]string{"value": "bob"}},
		{Type: "grant", Field: "orders", Reason: "missing SELECT"},
	}
	if diff := cmp.Diff(want, Details(withView)); diff != "" {
		t.Fatalf("Details mismatch (-want +got):\n%s", diff)
	}
}

func TestView(t *testing.T) {
	got, ok := View(fmt.Errorf("call: %w", viewCause{}))
	if !ok || got.Code != "42501" || got.Message != "permission denied" {
		t.Fatalf("View(ViewProvider) = %+v, %v", got, ok)
	}

	got, ok = View(fmt.Errorf("calc: %w", stateCarrier{}))
	if !ok || got.Code != "22012" || got.Message != "division by zero" || got.Category != "exception" {
		t.Fatalf("View(SQLState error) = %+v, %v", got, ok)
	}

	got, ok = View(sqlstate.E(sqlstate.NoData, ""))
	if !ok || got.Code != "02000" || got.Message != "no data" {
		t.Fatalf("View(*sqlstate.Error) = %+v, %v", got, ok)
	}

	for _, err := range []error{nil, errors.New("plain")} {
		if v, ok := View(err); ok {
			t.Fatalf("View(%v) = %+v; want none", err, v)
		}
	}
}

func TestErrorInfo(t *testing.T) {
	got := ErrorInfo(sqlstate.TransactionRollbackSerializationFailure)
	if got.GetReason() != "40001" || got.GetDomain() != Domain {
		t.Fatalf("ErrorInfo = %v", got)
	}
	want := map[string]string{MetaClass: "40", MetaSubclass: "001", MetaCategory: "exception"}
	if diff := cmp.Diff(want, got.GetMetadata()); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}

	base := ErrorInfo(sqlstate.NoData)
	if _, ok := base.GetMetadata()[MetaSubclass]; ok {
		t.Fatalf("class-level state must not carry a subclass: %v", base.GetMetadata())
	}
	if base.GetMetadata()[MetaCategory] != "no_data" {
		t.Fatalf("category = %q", base.GetMetadata()[MetaCategory])
	}
}
