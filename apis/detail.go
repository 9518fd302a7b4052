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

// Detail represents a single structured piece of information attached to an
// error. It is a view type: small, transport-friendly and suitable for JSON
// or proto mapping.
//
// Typical usages:
//   - report which constraint was violated;
//   - report the table or column involved;
//   - carry the driver's own hint or position fields.
type Detail struct {
	// Type is a short classifier of the detail, e.g. "constraint", "column"
	// or "extra". Callers MAY leave it empty.
	Type string `json:"type,omitempty"`

	// Field carries the logical path of the offending object, e.g.
	// "public.users.email". May be empty.
	Field string `json:"field,omitempty"`

	// Reason is a short, human-friendly explanation.
	Reason string `json:"reason,omitempty"`

	// Info carries optional extra structured data. Keys and values should be
	// chosen so that they survive JSON/proto round-trips.
	Info map[string]string `json:"info,omitempty"`
}
