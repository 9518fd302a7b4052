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

// Package prefixtrie implements a character-level prefix index for SQLSTATE
// codes with single-character wildcards.
package prefixtrie

import "errors"

// Wildcard matches exactly one character of a code.
const Wildcard = '*'

// Trie is a prefix index over codes made of [0-9A-Z]. Each node represents
// one character; the wildcard "*" matches exactly one character. Lookups
// return the longest matching prefix, so "2200*" wins over "22" and an exact
// character wins over a wildcard at the same depth.
type Trie[T any] struct {
	children map[byte]*Trie[T]
	// hasVal marks that this node carries a value for the prefix ending here.
	hasVal bool
	val    T
	// pattern is the prefix as inserted, kept for MatchWithPattern.
	pattern string
}

var (
	// ErrInvalidPrefix is returned when inserting a prefix that is empty,
	// contains characters outside [0-9A-Z*], or consists only of wildcards.
	ErrInvalidPrefix = errors.New("prefixtrie: invalid prefix")
)

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[byte]*Trie[T])}
}

// Insert associates prefix with val. Inserting the same prefix twice keeps
// the last value.
//
// Examples:
//
//	"08"     class 08 and all of its subclasses
//	"22012"  exactly 22012
//	"4000*"  40001 .. 4000Z
//
// Returns ErrInvalidPrefix on malformed input.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || !Valid(prefix) {
		return ErrInvalidPrefix
	}
	cur := t
	for i := 0; i < len(prefix); i++ {
		ch := prefix[i]
		child, ok := cur.children[ch]
		if !ok {
			child = New[T]()
			cur.children[ch] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match finds the value of the longest prefix of code present in the trie.
// If nothing matches it returns the zero value and false.
func (t *Trie[T]) Match(code string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(code)
	return v, ok
}

// MatchWithPattern is like Match but also returns the matched prefix as it
// was inserted (possibly containing wildcards).
func (t *Trie[T]) MatchWithPattern(code string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	var (
		best      *Trie[T]
		bestDepth = -1
	)
	var dfs func(n *Trie[T], depth int)
	dfs = func(n *Trie[T], depth int) {
		if n.hasVal && depth > bestDepth {
			best, bestDepth = n, depth
		}
		if depth >= len(code) {
			return
		}
		ch := code[depth]
		if !validChar(ch) {
			return
		}
		// exact branch first: at equal depth it wins over the wildcard
		if next, ok := n.children[ch]; ok {
			dfs(next, depth+1)
		}
		if next, ok := n.children[Wildcard]; ok {
			dfs(next, depth+1)
		}
	}
	dfs(t, 0)
	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// Valid reports whether prefix can be inserted: non-empty, made of
// [0-9A-Z*] and not wildcards only.
func Valid(prefix string) bool {
	if prefix == "" {
		return false
	}
	allWild := true
	for i := 0; i < len(prefix); i++ {
		ch := prefix[i]
		if ch == Wildcard {
			continue
		}
		if !validChar(ch) {
			return false
		}
		allWild = false
	}
	return !allWild
}

func validChar(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'A' && ch <= 'Z')
}
