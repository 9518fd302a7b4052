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

package sqlstate

import (
	"errors"
	"fmt"
	"maps"

	"dirpx.dev/sqlstate/category"
)

// Error is a rich error carrying a SQLSTATE.
//
// It carries:
//   - State: the decoded SQLSTATE (required);
//   - Message: human-oriented description of what went wrong;
//   - Details: arbitrary key/value payload (for logging / HTTP body);
//   - Cause: wrapped underlying error, usually the driver error.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// State is the SQLSTATE of the error, e.g. IntegrityConstraintViolation
	// or TransactionRollbackSerializationFailure.
	State State

	// Message is a human-readable explanation. When empty, Error() falls back
	// to the standard condition name of State.
	Message string

	// Details is an optional, shallow map of extra fields such as the
	// constraint, table or column involved.
	// The map is treated as immutable: WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any).
	Cause error
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return sqlstate.E(sqlstate.IntegrityConstraintViolation, "email already taken",
//	    sqlstate.WithDetailOption("constraint", "users_email_key"),
//	    sqlstate.WithCauseOption(err),
//	)
//
// It always returns a new Error and applies all provided options in order.
func E(st State, msg string, opts ...Option) *Error {
	e := &Error{State: st, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code>: <message>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if msg == "" {
		msg = e.State.Description()
	}
	return fmt.Sprintf("%s: %s", e.State, msg)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// SQLState returns the five-character code of the error. Drivers expose the
// same method, which lets callers treat all of them alike.
func (e *Error) SQLState() string {
	if e == nil {
		return ""
	}
	return e.State.String()
}

// Category returns the outcome category of the error's state.
func (e *Error) Category() category.Category {
	return e.State.Category()
}

// WithState returns a shallow copy of e with the given State set.
func (e *Error) WithState(st State) *Error {
	cp := *e
	cp.State = st
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
// The map is always copied; the original error is never modified.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	m := make(map[string]any, len(cp.Details)+1)
	maps.Copy(m, cp.Details)
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with all provided kv merged into
// Details, kv taking precedence on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	maps.Copy(m, cp.Details)
	maps.Copy(m, kv)
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, e is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// AsError finds the first *Error in err's chain. Failing that, it looks for
// an error exposing SQLState() string, as database drivers do, decodes its
// code leniently and wraps it, with err as the cause. It reports false when
// err carries no usable SQLSTATE.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var se *Error
	if errors.As(err, &se) && se != nil {
		return se, true
	}
	var stateful interface {
		error
		SQLState() string
	}
	if errors.As(err, &stateful) {
		st, perr := ParseLenient(stateful.SQLState())
		if perr != nil {
			return nil, false
		}
		return E(st, stateful.Error(), WithCauseOption(err)), true
	}
	return nil, false
}
