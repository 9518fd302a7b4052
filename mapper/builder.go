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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/sqlstate/category"
	"dirpx.dev/sqlstate/class"
)

type prefixRule struct {
	// prefix is the raw code prefix (may contain "*"). It is normalized and
	// validated when the trie is built.
	prefix string
	// val is the numeric transport status to apply when this prefix matches.
	// gRPC codes are kept as int until New converts them.
	val int
}

type builder struct {
	// httpDefaults holds per-class HTTP defaults, seeded from the library.
	httpDefaults map[class.Class]int
	// grpcDefaults holds per-class gRPC defaults as ints.
	grpcDefaults map[class.Class]int

	// httpOverride holds exact per-class HTTP overrides (highest tier).
	httpOverride map[class.Class]int
	// grpcOverride holds exact per-class gRPC overrides as ints.
	grpcOverride map[class.Class]int

	// httpPrefixes and grpcPrefixes hold LPM rules over the full code,
	// compiled into one trie per transport.
	httpPrefixes []prefixRule
	grpcPrefixes []prefixRule

	// httpCategory and grpcCategory are the last tier before the fallback.
	httpCategory map[category.Category]int
	grpcCategory map[category.Category]int

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized to hold the
// built-in defaults.
func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[class.Class]int, len(defaultHTTP)),
		grpcDefaults: make(map[class.Class]int, len(defaultGRPC)),

		// overrides are usually few
		httpOverride: make(map[class.Class]int),
		grpcOverride: make(map[class.Class]int),

		httpCategory: make(map[category.Category]int, len(defaultCategoryHTTP)),
		grpcCategory: make(map[category.Category]int, len(defaultCategoryGRPC)),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
