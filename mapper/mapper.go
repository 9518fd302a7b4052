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
	"errors"
	"fmt"
	"maps"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/sqlstate"
	"dirpx.dev/sqlstate/apis"
	"dirpx.dev/sqlstate/category"
	"dirpx.dev/sqlstate/class"
	"dirpx.dev/sqlstate/mapper/internal/prefixtrie"
)

// ErrInvalidStatus is returned by New when an option carries a value that is
// not a valid HTTP status or gRPC code.
var ErrInvalidStatus = errors.New("mapper: invalid status")

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC, per class and per
//     category).
//  2. Apply user-provided options.
//  3. Validate statuses, normalize and validate code prefixes.
//  4. Build one prefix trie per transport, supporting longest-prefix-match
//     with '*' as a single-character wildcard.
//  5. Freeze all maps into fresh copies.
//
// Errors wrap ErrInvalidStatus or prefixtrie's invalid prefix error.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	maps.Copy(b.httpDefaults, defaultHTTP)
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	maps.Copy(b.httpCategory, defaultCategoryHTTP)
	for k, v := range defaultCategoryGRPC {
		b.grpcCategory[k] = int(v)
	}

	for _, opt := range opts {
		opt(b)
	}

	for _, check := range []error{
		validateHTTP("class default", b.httpDefaults),
		validateHTTP("class override", b.httpOverride),
		validateHTTP("category default", b.httpCategory),
		validateGRPC("class default", b.grpcDefaults),
		validateGRPC("class override", b.grpcOverride),
		validateGRPC("category default", b.grpcCategory),
		validateHTTP("prefix", prefixValues(b.httpPrefixes)),
		validateGRPC("prefix", prefixValues(b.grpcPrefixes)),
	} {
		if check != nil {
			return nil, check
		}
	}

	httpTrie, err := buildTrie("HTTP", b.httpPrefixes, func(v int) int { return v })
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTrie("gRPC", b.grpcPrefixes, func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpCategory: freeze(b.httpCategory),
		grpcCategory: freezeGRPC(b.grpcCategory),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

func prefixValues(rules []prefixRule) map[string]int {
	if len(rules) == 0 {
		return nil
	}
	m := make(map[string]int, len(rules))
	for _, r := range rules {
		m[r.prefix] = r.val
	}
	return m
}

// mapper is an immutable mapper implementation that combines per-class
// overrides, a prefix trie over the full code, per-class defaults and
// per-category defaults. It is safe for concurrent use once constructed.
type mapper struct {
	httpDefault map[class.Class]int
	grpcDefault map[class.Class]codes.Code

	// httpOverride and grpcOverride take precedence over everything else.
	httpOverride map[class.Class]int
	grpcOverride map[class.Class]codes.Code

	httpCategory map[category.Category]int
	grpcCategory map[category.Category]codes.Code

	// httpTrie and grpcTrie may be nil when no prefix rule was given.
	httpTrie *prefixtrie.Trie[int]
	grpcTrie *prefixtrie.Trie[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// resolution records which tier produced a status.
type resolution[T any] struct {
	val     T
	source  string // override | prefix | default | category | fallback
	pattern string // set for source=prefix
}

func resolve[T any](
	st sqlstate.State,
	override map[class.Class]T,
	trie *prefixtrie.Trie[T],
	def map[class.Class]T,
	cat map[category.Category]T,
	fallback T,
) resolution[T] {
	c := st.Class()
	// 1. exact per-class override
	if v, ok := override[c]; ok {
		return resolution[T]{val: v, source: "override"}
	}
	// 2. LPM over the full code
	if trie != nil {
		if v, ok, pat := trie.MatchWithPattern(st.String()); ok {
			return resolution[T]{val: v, source: "prefix", pattern: pat}
		}
	}
	// 3. per-class default
	if v, ok := def[c]; ok {
		return resolution[T]{val: v, source: "default"}
	}
	// 4. per-category default
	if v, ok := cat[st.Category()]; ok {
		return resolution[T]{val: v, source: "category"}
	}
	// 5. global fallback
	return resolution[T]{val: fallback, source: "fallback"}
}

func (m *mapper) http(st sqlstate.State) resolution[int] {
	return resolve(st, m.httpOverride, m.httpTrie, m.httpDefault, m.httpCategory, m.fallbackHTTP)
}

func (m *mapper) grpc(st sqlstate.State) resolution[codes.Code] {
	return resolve(st, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.grpcCategory, m.fallbackGRPC)
}

// HTTPStatus resolves an HTTP status for the given state.
//
// Resolution order (highest to lowest):
//  1. exact per-class override;
//  2. longest-prefix-match rule on the five-character code;
//  3. per-class default (library or user overridden);
//  4. per-category default;
//  5. fallback (500).
func (m *mapper) HTTPStatus(st sqlstate.State) int {
	return m.http(st).val
}

// GRPCStatus resolves a gRPC status for the given state, with the same
// precedence as HTTPStatus and codes.Internal as the fallback.
func (m *mapper) GRPCStatus(st sqlstate.State) codes.Code {
	return m.grpc(st).val
}

// Status resolves both HTTP and gRPC using the same inputs.
func (m *mapper) Status(st sqlstate.State) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(st),
		GRPC: m.GRPCStatus(st),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a state.
//
// Example output:
//
//	code="22012" class="22" category="exception"
//	http: source=prefix pattern="22012" -> 422
//	grpc: source=default -> INVALIDARGUMENT(3)
//
// source is one of override, prefix, default, category or fallback. pattern
// is the rule as it was stored in the trie (may contain "*").
//
// The output is meant for inspection and logging, not for machine parsing.
func (m *mapper) Explain(st sqlstate.State) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q class=%q category=%q\n", st.String(), string(st.Class()), st.Category().String())

	h := m.http(st)
	_, _ = fmt.Fprintf(&b, "http: source=%s%s -> %d\n", h.source, patternSuffix(h.pattern), h.val)

	g := m.grpc(st)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s%s -> %s", g.source, patternSuffix(g.pattern), grpcName(g.val))

	return b.String()
}

func patternSuffix(p string) string {
	if p == "" {
		return ""
	}
	return fmt.Sprintf(" pattern=%q", p)
}
