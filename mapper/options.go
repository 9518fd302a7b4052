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
	"dirpx.dev/sqlstate/category"
	"dirpx.dev/sqlstate/class"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for a class.
func WithHTTPDefault(c class.Class, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault sets or replaces the default gRPC status for a class.
func WithGRPCDefault(c class.Class, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for a class. Overrides
// win over every other rule for that class, including prefix rules.
func WithHTTPOverride(c class.Class, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC override for a class.
func WithGRPCOverride(c class.Class, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule over the
// five-character code. "*" matches exactly one character; a five-character
// prefix is an exact match.
func WithHTTPPrefix(prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule{prefix, http}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule over the
// five-character code.
func WithGRPCPrefix(prefix string, grpc int) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule{prefix, grpc}) }
}

// WithHTTPCategoryDefault replaces the HTTP status used for states of the
// given category when no class rule applies.
func WithHTTPCategoryDefault(cat category.Category, http int) Option {
	return func(b *builder) { b.httpCategory[cat] = http }
}

// WithGRPCCategoryDefault replaces the gRPC status used for states of the
// given category when no class rule applies.
func WithGRPCCategoryDefault(cat category.Category, grpc int) Option {
	return func(b *builder) { b.grpcCategory[cat] = grpc }
}
