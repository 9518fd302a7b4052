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

package apis

// StatefulError represents an error that carries a SQLSTATE.
//
// The method name matches what Postgres and ODBC-style drivers already
// expose, so driver errors satisfy this interface without adapters.
//
// Implementations are expected to return the five-character code as the
// server sent it. Callers decode it with sqlstate.ParseLenient and should
// treat a malformed or empty value as an internal error at the boundary.
type StatefulError interface {
	error

	// SQLState returns the five-character SQLSTATE code.
	SQLState() string
}

// DetailedError represents an error that exposes zero or more structured
// details, e.g. the table, column and constraint involved in a violation.
//
// Implementations SHOULD return a slice that is safe to iterate over and that
// will not be modified by the callee. Returning nil means "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}

// CausedError represents an error that exposes its underlying cause.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	Cause() error
}
