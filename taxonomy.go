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

import (
	"fmt"
	"slices"
	"strings"

	"dirpx.dev/sqlstate/class"
	"dirpx.dev/sqlstate/subclass"
)

// Match reports the outcome of a subclass lookup within a class.
type Match uint8

const (
	// MatchNotFound means the subclass code is syntactically valid but the
	// class defines no subclass with that code (or the class is unknown).
	MatchNotFound Match = iota

	// MatchAbsent means the subclass code was "000", i.e. no subclass detail.
	MatchAbsent

	// MatchFound means the subclass code resolved to a defined subclass.
	MatchFound
)

// String returns a lower-case name for the match outcome.
func (m Match) String() string {
	switch m {
	case MatchAbsent:
		return "absent"
	case MatchFound:
		return "found"
	case MatchNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("match(%d)", uint8(m))
	}
}

// The registry is filled while the package-level states in states.go are
// initialized and is read-only afterwards.
var (
	descriptions = map[State]string{}
	byClass      = map[class.Class][]State{}
)

// classState returns the class-level state for a known class.
func classState(c class.Class) State {
	if !c.Known() {
		panic(fmt.Sprintf("sqlstate: class %q is not in the class catalog", string(c)))
	}
	return State{class: c}
}

// define registers a subclass of a known class under its condition name.
// It panics on malformed input and on duplicate codes or names within the
// class, so catalog mistakes surface at package initialization.
func define(c class.Class, code string, name string) State {
	sc := subclass.MustParse(code)
	if sc.IsNone() {
		panic(fmt.Sprintf("sqlstate: %s%s: subclass %q is reserved for the class itself", c, sc, subclass.None))
	}
	st := classState(c)
	st.subclass = sc
	if _, dup := descriptions[st]; dup {
		panic(fmt.Sprintf("sqlstate: duplicate state %s", st))
	}
	if strings.TrimSpace(name) == "" {
		panic(fmt.Sprintf("sqlstate: state %s has no name", st))
	}
	for _, other := range byClass[c] {
		if descriptions[other] == name {
			panic(fmt.Sprintf("sqlstate: %s and %s share the name %q", other, st, name))
		}
	}
	descriptions[st] = name
	byClass[c] = append(byClass[c], st)
	return st
}

// SubclassOf resolves a subclass code within a class.
//
// The returned state is:
//   - the subclass state with MatchFound when c defines s;
//   - the class-level state with MatchAbsent when s is "000";
//   - the class-level state with MatchNotFound when c is known but does not
//     define s (this is the degraded form Parse returns for such codes);
//   - the zero State with MatchNotFound when c is not a known class.
//
// s is expected to be a valid subclass code; invalid codes never match.
func SubclassOf(c class.Class, s subclass.Subclass) (State, Match) {
	if !c.Known() {
		return State{}, MatchNotFound
	}
	base := State{class: c}
	if s.IsNone() {
		return base, MatchAbsent
	}
	st := State{class: c, subclass: s}
	if _, ok := descriptions[st]; ok {
		return st, MatchFound
	}
	return base, MatchNotFound
}

// Subclasses returns the subclass states defined for c, ordered by subclass
// code. The result is a fresh slice and nil when c defines no subclasses.
func Subclasses(c class.Class) []State {
	defined := byClass[c]
	if len(defined) == 0 {
		return nil
	}
	out := slices.Clone(defined)
	slices.SortFunc(out, func(a, b State) int {
		return strings.Compare(string(a.subclass), string(b.subclass))
	})
	return out
}

// HasSubclasses reports whether c defines at least one subclass.
func HasSubclasses(c class.Class) bool {
	return len(byClass[c]) > 0
}

// States returns every known state: each class-level state in class catalog
// order, followed directly by the subclasses of that class.
func States() []State {
	out := make([]State, 0, len(descriptions)+len(class.All()))
	for _, c := range class.All() {
		out = append(out, State{class: c})
		out = append(out, Subclasses(c)...)
	}
	return out
}
