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

package class

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Class is the canonical, validated representation of a SQLSTATE class code.
//
// It is defined as a separate type (not just string) so that a class can not
// be mixed up with a full five-character code or with a subclass suffix.
type Class string

// Length is the exact length of a class code.
const Length = 2

const (
	// classFmt is the canonical regular expression used to validate classes.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[0-9A-Z]{2} - two digits or upper-case ASCII letters;
	//	$ - end of string;
	//
	// IMPORTANT: the quantifier is tied to Length above.
	classFmt = `^[0-9A-Z]{2}$`
)

var (
	// classRe is the compiled form of classFmt.
	classRe = regexp.MustCompile(classFmt)
)

var (
	// ErrClassInvalid is returned when a value cannot be parsed or validated
	// as a class code.
	ErrClassInvalid = errors.New("sqlstate: invalid class")
)

var (
	_ encoding.TextMarshaler   = (*Class)(nil)
	_ encoding.TextUnmarshaler = (*Class)(nil)
)

// Empty is the zero-value class. It is considered "not provided".
var Empty Class = ""

// Parse takes a user-provided string, normalizes it and validates its syntax.
// It does not consult the catalog: use Lookup or Known for that.
func Parse(s string) (Class, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Class(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Class {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup parses s and reports whether it names a class from the catalog.
// On failure it returns Empty and false.
func Lookup(s string) (Class, bool) {
	c, err := Parse(s)
	if err != nil || !c.Known() {
		return Empty, false
	}
	return c, true
}

// Normalize trims surrounding spaces and upper-cases ASCII letters.
//
// It does NOT guarantee that the result is valid.
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

// Validate checks whether the provided Class is syntactically valid.
// The empty class is invalid.
func Validate(c Class) error {
	return validate(string(c))
}

// Known reports whether c is part of the catalog.
func (c Class) Known() bool {
	_, ok := byClass[c]
	return ok
}

// Name returns the standard condition name of the class, e.g. "warning" or
// "integrity constraint violation". It returns "" for unknown classes.
func (c Class) Name() string {
	if i, ok := byClass[c]; ok {
		return table[i].name
	}
	return ""
}

// String returns the canonical string representation of the class.
func (c Class) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning. Unknown but
// well-formed classes are accepted.
func (c *Class) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if !classRe.MatchString(s) {
		return ErrClassInvalid
	}
	return nil
}
