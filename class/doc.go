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

// Package class provides parsing, normalization and validation for SQLSTATE
// class codes.
//
// A class is the first two characters of a SQLSTATE, such as "00"
// (successful completion), "01" (warning) or "23" (integrity constraint
// violation). Classes are:
//
//   - exactly two characters long;
//   - made of digits and upper-case ASCII letters;
//   - one-to-one with a named variant from the standard catalog.
//
// The catalog is fixed at build time. A syntactically valid class that is not
// in the catalog is still a Class value, but Known reports false for it. This
// lets callers carry codes newer than the table without coercing them into an
// unrelated class.
package class
