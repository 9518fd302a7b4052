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

// Package dbx extracts SQLSTATE values from database driver errors.
//
// It understands the error types of github.com/jackc/pgx/v5,
// github.com/lib/pq and github.com/go-sql-driver/mysql, *sqlstate.Error, and
// any other error exposing SQLState() string. Codes are decoded leniently,
// so vendor-specific classes (Postgres "P0", "XX", MySQL "HY") are kept as
// unrecognized states rather than dropped.
package dbx

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"dirpx.dev/sqlstate"
	"dirpx.dev/sqlstate/apis"
	"dirpx.dev/sqlstate/class"
)

// Detail keys set by Wrap.
const (
	DetailDriver     = "driver"
	DetailSchema     = "schema"
	DetailTable      = "table"
	DetailColumn     = "column"
	DetailConstraint = "constraint"
	DetailDetail     = "detail"
	DetailHint       = "hint"
	DetailNumber     = "number"
)

// report is the driver-neutral view of a driver error.
type report struct {
	driver  string
	code    string
	message string
	details map[string]any
}

// inspect walks err's chain looking for a code. A *sqlstate.Error wins over
// the driver errors it wraps, as in sqlstate.AsError, so an application that
// re-classifies a driver error is reported with its own state. It returns
// false when no error in the chain carries a code.
func inspect(err error) (report, bool) {
	if err == nil {
		return report{}, false
	}

	var own *sqlstate.Error
	if errors.As(err, &own) && own != nil {
		if own.State.IsZero() {
			return report{}, false
		}
		return report{code: own.State.String(), message: own.Message, details: own.Details}, true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return report{
			driver:  "pgx",
			code:    pgErr.Code,
			message: pgErr.Message,
			details: nonEmpty(map[string]any{
				DetailSchema:     pgErr.SchemaName,
				DetailTable:      pgErr.TableName,
				DetailColumn:     pgErr.ColumnName,
				DetailConstraint: pgErr.ConstraintName,
				DetailDetail:     pgErr.Detail,
				DetailHint:       pgErr.Hint,
			}),
		}, true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return report{
			driver:  "pq",
			code:    string(pqErr.Code),
			message: pqErr.Message,
			details: nonEmpty(map[string]any{
				DetailSchema:     pqErr.Schema,
				DetailTable:      pqErr.Table,
				DetailColumn:     pqErr.Column,
				DetailConstraint: pqErr.Constraint,
				DetailDetail:     pqErr.Detail,
				DetailHint:       pqErr.Hint,
			}),
		}, true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		if myErr.SQLState == [5]byte{} {
			return report{}, false
		}
		return report{
			driver:  "mysql",
			code:    string(myErr.SQLState[:]),
			message: myErr.Message,
			details: map[string]any{DetailNumber: myErr.Number},
		}, true
	}

	var stateful apis.StatefulError
	if errors.As(err, &stateful) {
		return report{code: stateful.SQLState(), message: stateful.Error()}, true
	}
	return report{}, false
}

func nonEmpty(m map[string]any) map[string]any {
	for k, v := range m {
		if s, ok := v.(string); ok && s == "" {
			delete(m, k)
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// Code returns the raw five-character code carried by err, as the server
// sent it. Unlike StateOf it keeps subclasses the catalog does not define,
// e.g. Postgres "23505". For a *sqlstate.Error it is the code of its State.
func Code(err error) (string, bool) {
	r, ok := inspect(err)
	if !ok {
		return "", false
	}
	return r.code, true
}

// StateOf decodes the SQLSTATE carried by err. It reports false when err
// carries no code or the code is malformed.
func StateOf(err error) (sqlstate.State, bool) {
	r, ok := inspect(err)
	if !ok {
		return sqlstate.Empty, false
	}
	st, perr := sqlstate.ParseLenient(r.code)
	if perr != nil {
		return sqlstate.Empty, false
	}
	return st, true
}

// Wrap converts a driver error into a *sqlstate.Error with the driver's
// message, its structured fields as details and err as the cause. Errors
// without a usable SQLSTATE are returned unchanged; nil stays nil.
func Wrap(err error) error {
	var own *sqlstate.Error
	if errors.As(err, &own) {
		return err
	}
	r, ok := inspect(err)
	if !ok {
		return err
	}
	st, perr := sqlstate.ParseLenient(r.code)
	if perr != nil {
		return err
	}
	e := sqlstate.E(st, r.message, sqlstate.WithDetailsOption(r.details), sqlstate.WithCauseOption(err))
	if r.driver != "" {
		e = e.WithDetail(DetailDriver, r.driver)
	}
	return e
}

// IsClass reports whether err carries a SQLSTATE of class c.
func IsClass(err error, c class.Class) bool {
	st, ok := StateOf(err)
	return ok && st.Class() == c
}

// IsRetryable reports whether the operation behind err may succeed when
// retried as a whole: transaction rollbacks (serialization failures,
// deadlocks) and connection exceptions.
func IsRetryable(err error) bool {
	st, ok := StateOf(err)
	if !ok {
		return false
	}
	switch st.Class() {
	case class.TransactionRollback, class.ConnectionException:
		return true
	default:
		return false
	}
}

// IsCompletion reports whether err carries a success, warning or no-data
// code. Some drivers surface those as errors.
func IsCompletion(err error) bool {
	st, ok := StateOf(err)
	return ok && st.Category().IsCompletion()
}
