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

package dbx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"dirpx.dev/sqlstate"
	"dirpx.dev/sqlstate/class"
)

type customError struct{ code string }

func (e customError) Error() string    { return "custom " + e.code }
func (e customError) SQLState() string { return e.code }

func TestStateOf(t *testing.T) {
	unknown, err := sqlstate.ParseLenient("P0001")
	if err != nil {
		t.Fatalf("ParseLenient: %v", err)
	}
	tests := []struct {
		name string
		err  error
		want sqlstate.State
		code string
	}{
		{"pgx", &pgconn.PgError{Code: "40001", Message: "could not serialize access"}, sqlstate.TransactionRollbackSerializationFailure, "40001"},
		{"pgx wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), sqlstate.IntegrityConstraintViolation, "23505"},
		{"pgx vendor class", &pgconn.PgError{Code: "P0001"}, unknown, "P0001"},
		{"pq", &pq.Error{Code: "08006", Message: "connection failure"}, sqlstate.ConnectionExceptionConnectionFailure, "08006"},
		{"mysql", &mysql.MySQLError{Number: 1213, SQLState: [5]byte{'4', '0', '0', '0', '1'}, Message: "Deadlock found"}, sqlstate.TransactionRollbackSerializationFailure, "40001"},
		{"custom", customError{code: "22012"}, sqlstate.DataExceptionDivisionByZero, "22012"},
		{"own", sqlstate.E(sqlstate.NoData, "none"), sqlstate.NoData, "02000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StateOf(tt.err)
			if !ok || got != tt.want {
				t.Fatalf("StateOf = %s, %v; want %s", got, ok, tt.want)
			}
			code, ok := Code(tt.err)
			if !ok || code != tt.code {
				t.Fatalf("Code = %q, %v; want %q", code, ok, tt.code)
			}
		})
	}
}

func TestStateOf_ReclassifiedDriverError(t *testing.T) {
	driver := &pgconn.PgError{Code: "40001", Message: "could not serialize access"}
	err := fmt.Errorf("checkout: %w", sqlstate.E(sqlstate.IntegrityConstraintViolation, "order already placed",
		sqlstate.WithCauseOption(driver)))

	se, ok := sqlstate.AsError(err)
	if !ok || se.State != sqlstate.IntegrityConstraintViolation {
		t.Fatalf("AsError = %v, %v", se, ok)
	}
	if st, ok := StateOf(err); !ok || st != se.State {
		t.Fatalf("StateOf = %s, %v; want %s", st, ok, se.State)
	}
	if code, ok := Code(err); !ok || code != "23000" {
		t.Fatalf("Code = %q, %v; want 23000", code, ok)
	}
	if IsRetryable(err) {
		t.Fatal("the outer state is not retryable")
	}
	if !IsClass(err, class.IntegrityConstraintViolation) || IsClass(err, class.TransactionRollback) {
		t.Fatal("IsClass must report the outer class")
	}
	if Wrap(err) != err {
		t.Fatal("Wrap must keep the re-classified error")
	}
	var back *pgconn.PgError
	if !errors.As(err, &back) || back != driver {
		t.Fatal("driver error must stay reachable through the chain")
	}
}

func TestStateOf_None(t *testing.T) {
	for _, err := range []error{
		nil,
		errors.New("plain"),
		&mysql.MySQLError{Number: 1045, Message: "no state"},
		customError{code: "bad"},
		sqlstate.E(sqlstate.Empty, "no state"),
	} {
		if st, ok := StateOf(err); ok {
			t.Fatalf("StateOf(%v) = %s, want none", err, st)
		}
	}
}

func TestWrap(t *testing.T) {
	src := &pq.Error{
		Code:       "23505",
		Message:    `duplicate key value violates unique constraint "users_email_key"`,
		Table:      "users",
		Constraint: "users_email_key",
	}
	err := Wrap(fmt.Errorf("create user: %w", src))

	var se *sqlstate.Error
	if !errors.As(err, &se) {
		t.Fatalf("Wrap must return *sqlstate.Error, got %T", err)
	}
	if se.State != sqlstate.IntegrityConstraintViolation || se.Message != src.Message {
		t.Fatalf("Wrap = %+v", se)
	}
	want := map[string]any{
		DetailDriver:     "pq",
		DetailTable:      "users",
		DetailConstraint: "users_email_key",
	}
	if diff := cmp.Diff(want, se.Details); diff != "" {
		t.Fatalf("details mismatch (-want +got):\n%s", diff)
	}
	var back *pq.Error
	if !errors.As(err, &back) || back != src {
		t.Fatal("driver error must stay reachable through the chain")
	}

	my := Wrap(&mysql.MySQLError{Number: 1062, SQLState: [5]byte{'2', '3', '0', '0', '0'}, Message: "Duplicate entry"})
	if !errors.As(my, &se) || se.Details[DetailNumber] != uint16(1062) || se.Details[DetailDriver] != "mysql" {
		t.Fatalf("mysql Wrap = %+v", my)
	}
}

func TestWrap_PassThrough(t *testing.T) {
	if Wrap(nil) != nil {
		t.Fatal("Wrap(nil) must be nil")
	}
	plain := errors.New("plain")
	if Wrap(plain) != plain {
		t.Fatal("errors without SQLSTATE must be returned unchanged")
	}
	own := sqlstate.E(sqlstate.Warning, "w")
	if Wrap(own) != error(own) {
		t.Fatal("*sqlstate.Error must be returned unchanged")
	}
}

func TestPredicates(t *testing.T) {
	deadlock := &pgconn.PgError{Code: "40P01"}
	if !IsRetryable(deadlock) || !IsClass(deadlock, class.TransactionRollback) {
		t.Fatal("deadlock must be retryable and of class 40")
	}
	if !IsRetryable(&pq.Error{Code: "08006"}) {
		t.Fatal("connection failure must be retryable")
	}
	if IsRetryable(&pq.Error{Code: "23505"}) || IsRetryable(errors.New("x")) {
		t.Fatal("constraint violations and plain errors are not retryable")
	}
	if !IsCompletion(customError{code: "01000"}) || !IsCompletion(customError{code: "02000"}) {
		t.Fatal("warning and no data are completion conditions")
	}
	if IsCompletion(customError{code: "22012"}) {
		t.Fatal("exceptions are not completion conditions")
	}
}
