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

// Package mapper provides deterministic, immutable mappings from SQLSTATE
// values (dirpx.dev/sqlstate) to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// A decoded SQLSTATE has a class, an optional subclass and a derived
// category. Transport layers (HTTP handlers, gRPC servers) need to turn it
// into concrete status codes. Package mapper does that in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per class and per
//     category;
//   - prefix-aware: callers can add rules for code prefixes;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the class;
//  2. longest-prefix-match (LPM) on the five-character code;
//  3. per-class default (library or user-adjusted);
//  4. per-category default (success, warning, no_data, exception);
//  5. global fallback (500 / codes.Internal).
//
// Prefix rules are character-wise and "*" matches exactly one character:
//
//	WithHTTPPrefix("22", http.StatusBadRequest)
//	WithHTTPPrefix("22012", http.StatusUnprocessableEntity)
//	WithGRPCPrefix("4000*", int(codes.Aborted))
//
// The more specific prefix wins. Prefixes are matched against the canonical
// code of the state, so subclasses that the catalog does not define are seen
// as their class-level code ("23505" decodes to "23000").
//
// # Library defaults
//
// The package ships with defaults for classes with a clear client-facing
// meaning, e.g. 08 -> 503 / Unavailable, 22 -> 400 / InvalidArgument,
// 23 -> 409 / FailedPrecondition, 40 -> 409 / Aborted, 28 -> 401 /
// Unauthenticated. Other classes use their category: success and warning
// map to 200 / OK, no data to 404 / NotFound, exceptions to 500 / Internal.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(class.TransactionRollback, http.StatusServiceUnavailable),
//	    mapper.WithHTTPPrefix("22012", http.StatusUnprocessableEntity),
//	)
//	if err != nil {
//	    // invalid prefix or status
//	}
//
//	st := m.Status(sqlstate.DataExceptionDivisionByZero)
//	// st.HTTP == 422, st.GRPC == codes.InvalidArgument
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a state was resolved,
// including which tier matched and, for prefixes, which pattern was used.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's maps or slices.
package mapper
