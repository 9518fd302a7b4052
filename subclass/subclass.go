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

package subclass

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Subclass is the canonical, validated representation of a SQLSTATE subclass
// code: the last three characters of the five-character code.
type Subclass string

// Length is the exact length of a subclass code.
const Length = 3

const (
	// subclassFmt accepts three digits or upper-case ASCII letters.
	//
	// Standard subclasses start with 0-4 or A-H; implementation-defined ones
	// use the rest of the range. Both are syntactically valid here.
	subclassFmt = `^[0-9A-Z]{3}$`
)

var (
	subclassRe = regexp.MustCompile(subclassFmt)
)

var (
	// ErrSubclassInvalid is returned when a value cannot be parsed or
	// validated as a subclass code.
	ErrSubclassInvalid = errors.New("sqlstate: invalid subclass")
)

var (
	_ encoding.TextMarshaler   = (*Subclass)(nil)
	_ encoding.TextUnmarshaler = (*Subclass)(nil)
)

// None is the "no subclass" code. It is the canonical suffix of a class-level
// state such as "01000".
const None Subclass = "000"

// Empty is the zero-value subclass. It is considered "not provided".
var Empty Subclass = ""

// Normalize trims surrounding spaces and upper-cases ASCII letters.
//
// It does NOT guarantee validity; callers should still call Parse or Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = upperASCII(s)
	return s
}

// upperASCII upper-cases 'a'..'z' only. Other runes are kept so that the
// syntax check still sees them: Unicode case mapping would turn 'ſ' into 'S'.
func upperASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}, s)
}

// Parse takes a user-provided string, normalizes it and validates it.
func Parse(s string) (Subclass, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Subclass(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level subclass values.
func MustParse(s string) Subclass {
	sc, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sc
}

// Validate checks whether the provided Subclass is in canonical form.
// Empty is invalid here: an absent subclass is spelled None on the wire.
func Validate(sc Subclass) error {
	return validate(string(sc))
}

// IsNone reports whether sc is the "no subclass" code.
func (sc Subclass) IsNone() bool {
	return sc == None
}

// String returns the canonical string representation of the subclass.
func (sc Subclass) String() string {
	return string(sc)
}

// MarshalText implements encoding.TextMarshaler.
func (sc Subclass) MarshalText() ([]byte, error) {
	if err := Validate(sc); err != nil {
		return nil, err
	}
	return []byte(sc), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (sc *Subclass) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*sc = parsed
	return nil
}

func validate(s string) error {
	if !subclassRe.MatchString(s) {
		return ErrSubclassInvalid
	}
	return nil
}
