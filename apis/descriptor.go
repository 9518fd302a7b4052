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

// ErrorDescriptor is a flat, transport-friendly description of a SQLSTATE
// together with the statuses it maps to.
//
// It uses strings (not the sqlstate value types) so that it can be logged,
// serialized and consumed by user-defined registries without importing the
// decoder.
type ErrorDescriptor struct {
	// Code is the five-character SQLSTATE, e.g. "23000" or "40001".
	Code string `json:"code"`

	// Class is the two-character class of Code.
	Class string `json:"class"`

	// Subclass is the three-character subclass of Code. It is empty when the
	// code carries no subclass detail.
	Subclass string `json:"subclass,omitempty"`

	// Category is the outcome category: "success", "warning", "no_data" or
	// "exception".
	Category string `json:"category"`

	// HTTPStatus is the HTTP status this code is exposed as. A value of 0
	// means "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) this code is exposed as.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the human-friendly message: the error's own message, or the
	// standard condition name when the error did not provide one.
	Message string `json:"message,omitempty"`
}
