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

import "errors"

var (
	// ErrMalformedCode is returned when a value is not five characters from
	// [0-9A-Z] after normalization.
	ErrMalformedCode = errors.New("sqlstate: malformed code")

	// ErrUnknownClass is returned by Parse when the code is well formed but
	// its class is not in the catalog.
	ErrUnknownClass = errors.New("sqlstate: unknown class")
)
