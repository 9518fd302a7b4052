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
	"bytes"
	"encoding"
	"fmt"
	"strings"

	"dirpx.dev/sqlstate/category"
	"dirpx.dev/sqlstate/class"
	"dirpx.dev/sqlstate/subclass"
)

// Length is the exact length of a SQLSTATE code.
const Length = class.Length + subclass.Length

// State is a decoded SQLSTATE: a class and, optionally, one of its subclasses.
//
// The zero State is "not provided" and is returned alongside every error.
// States are immutable and comparable.
type State struct {
	class class.Class
	// subclass is Empty when the code carried no detail ("000") or when the
	// detail was not defined for a known class.
	subclass subclass.Subclass
}

var (
	_ encoding.TextMarshaler   = (*State)(nil)
	_ encoding.TextUnmarshaler = (*State)(nil)
	_ fmt.Stringer             = State{}
)

// Empty is the zero-value State.
var Empty State

// Normalize trims surrounding spaces and upper-cases ASCII letters. Other
// characters are left alone, so non-ASCII input stays malformed instead of
// being case-mapped into the code alphabet. It does not check the result.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}, strings.TrimSpace(s))
}

// Parse decodes a SQLSTATE code.
//
// The input is normalized first: surrounding whitespace is dropped and ASCII
// letters are upper-cased, so " 01005\n", "0100a" and "0100A" decode alike.
// Whitespace inside the code is not removed. After normalization Parse
// returns an error wrapping ErrMalformedCode unless exactly five characters
// from [0-9A-Z] remain, and an error wrapping ErrUnknownClass if the class is
// not in the catalog.
//
// A subclass the class does not define is not an error: the result is the
// class-level State, exactly as for "000".
func Parse(s string) (State, error) {
	st, err := decode(s)
	if err != nil {
		return Empty, err
	}
	if !st.class.Known() {
		return Empty, fmt.Errorf("%w: %q", ErrUnknownClass, string(st.class))
	}
	return st, nil
}

// ParseLenient is like Parse but keeps codes of unknown classes as
// unrecognized States instead of failing. Such a State reports Known() ==
// false, belongs to the exception category and encodes back to the
// normalized input. Malformed codes are still rejected.
func ParseLenient(s string) (State, error) {
	return decode(s)
}

// MustParse is the panic-on-error variant of Parse. It is useful in tests
// and for package-level values.
func MustParse(s string) State {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return st
}

func decode(raw string) (State, error) {
	s := Normalize(raw)
	if len(s) != Length {
		return Empty, fmt.Errorf("%w: %q: want %d characters", ErrMalformedCode, raw, Length)
	}
	c, sc := class.Class(s[:class.Length]), subclass.Subclass(s[class.Length:])
	if class.Validate(c) != nil || subclass.Validate(sc) != nil {
		return Empty, fmt.Errorf("%w: %q: want characters from [0-9A-Z]", ErrMalformedCode, raw)
	}
	if !c.Known() {
		st := State{class: c}
		if !sc.IsNone() {
			st.subclass = sc
		}
		return st, nil
	}
	st, _ := SubclassOf(c, sc)
	return st, nil
}

// Class returns the class of the state.
func (s State) Class() class.Class {
	return s.class
}

// Subclass returns the subclass of the state. ok is false when the state has
// no subclass detail.
func (s State) Subclass() (sc subclass.Subclass, ok bool) {
	if s.subclass == subclass.Empty {
		return subclass.Empty, false
	}
	return s.subclass, true
}

// Known reports whether the class of s is in the catalog.
func (s State) Known() bool {
	return s.class.Known()
}

// IsZero reports whether s is the zero State.
func (s State) IsZero() bool {
	return s == Empty
}

// Base returns the class-level state of s, dropping any subclass.
func (s State) Base() State {
	return State{class: s.class}
}

// Category returns the outcome category of the state. It depends on the
// class only.
func (s State) Category() category.Category {
	return category.Of(s.class)
}

// Description returns the standard condition name of the state: the subclass
// name when there is one, otherwise the class name. It returns "" for
// unrecognized states.
func (s State) Description() string {
	if _, ok := s.Subclass(); ok {
		return descriptions[s]
	}
	return s.class.Name()
}

// String returns the five-character code, or "" for the zero State.
func (s State) String() string {
	if s.IsZero() {
		return ""
	}
	if s.subclass == subclass.Empty {
		return string(s.class) + string(subclass.None)
	}
	return string(s.class) + string(s.subclass)
}

// MarshalText implements encoding.TextMarshaler. The zero State can not be
// marshaled.
func (s State) MarshalText() ([]byte, error) {
	if s.IsZero() {
		return nil, fmt.Errorf("%w: empty state", ErrMalformedCode)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It decodes leniently, so
// codes of unknown classes survive a round trip.
func (s *State) UnmarshalText(text []byte) error {
	st, err := ParseLenient(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*s = st
	return nil
}
