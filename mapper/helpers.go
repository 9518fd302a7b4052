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
	"fmt"
	"maps"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/sqlstate"
	"dirpx.dev/sqlstate/mapper/internal/prefixtrie"
)

// freeze makes an immutable copy of a builder map. Empty maps become nil to
// simplify nil checks in the mapper.
func freeze[K comparable, V any](src map[K]V) map[K]V {
	if len(src) == 0 {
		return nil
	}
	return maps.Clone(src)
}

// freezeGRPC copies a builder map, converting int values into gRPC codes.
func freezeGRPC[K comparable](src map[K]int) map[K]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// buildTrie normalizes, validates and inserts rules into a fresh trie. It
// returns nil when there are no rules.
func buildTrie[T any](transport string, rules []prefixRule, conv func(int) T) (*prefixtrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	t := prefixtrie.New[T]()
	for _, r := range rules {
		p, err := normalizeAndValidatePrefix(r.prefix)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid %s prefix %q: %w", transport, r.prefix, err)
		}
		if err := t.Insert(p, conv(r.val)); err != nil {
			return nil, fmt.Errorf("mapper: cannot insert %s prefix %q: %w", transport, p, err)
		}
	}
	return t, nil
}

// normalizeAndValidatePrefix upper-cases a code prefix and checks that it is
// one to five characters from [0-9A-Z*], not wildcards only.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := sqlstate.Normalize(raw)
	if len(p) == 0 || len(p) > sqlstate.Length {
		return "", fmt.Errorf("%w: want 1 to %d characters", prefixtrie.ErrInvalidPrefix, sqlstate.Length)
	}
	if !prefixtrie.Valid(p) {
		return "", prefixtrie.ErrInvalidPrefix
	}
	return p, nil
}

// validateHTTP checks that every value looks like an HTTP status code.
func validateHTTP[K comparable](what string, m map[K]int) error {
	for k, v := range m {
		if v < 100 || v > 599 {
			return fmt.Errorf("%w: %s %v -> %d", ErrInvalidStatus, what, k, v)
		}
	}
	return nil
}

// validateGRPC checks that every value is a canonical gRPC code.
func validateGRPC[K comparable](what string, m map[K]int) error {
	for k, v := range m {
		if v < int(codes.OK) || v > int(codes.Unauthenticated) {
			return fmt.Errorf("%w: %s %v -> %d", ErrInvalidStatus, what, k, v)
		}
	}
	return nil
}

// grpcName renders a code as it appears in Explain, e.g. UNAVAILABLE(14).
func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
