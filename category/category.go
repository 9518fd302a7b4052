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

package category

import (
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"

	"dirpx.dev/sqlstate/class"
)

// Category is the four-way outcome of a SQLSTATE.
//
// The zero value is Exception so that a missing or unrecognized state never
// reads as a success.
type Category uint8

const (
	// Exception is reported for every class other than 00, 01 and 02.
	Exception Category = iota
	// Success is reported for class 00.
	Success
	// Warning is reported for class 01.
	Warning
	// NoData is reported for class 02.
	NoData
)

var (
	// ErrCategoryInvalid is returned when text does not name a category.
	ErrCategoryInvalid = errors.New("sqlstate: invalid category")
)

var (
	_ encoding.TextMarshaler   = Category(0)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

var names = [...]string{
	Exception: "exception",
	Success:   "success",
	Warning:   "warning",
	NoData:    "no_data",
}

// Of returns the category of a class. It is total: unknown classes are
// exceptions.
func Of(c class.Class) Category {
	switch c {
	case class.Success:
		return Success
	case class.Warning:
		return Warning
	case class.NoData:
		return NoData
	default:
		return Exception
	}
}

// All returns the four categories in declaration order.
func All() []Category {
	return []Category{Exception, Success, Warning, NoData}
}

// Parse converts a category name ("success", "warning", "no_data",
// "exception") into a Category. Matching ignores case, surrounding spaces and
// accepts "-" in place of "_".
func Parse(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	for i, n := range names {
		if n == s {
			return Category(i), nil
		}
	}
	return Exception, ErrCategoryInvalid
}

// IsCompletion reports whether the category denotes a completed statement
// (Success, Warning or NoData).
func (c Category) IsCompletion() bool {
	return c != Exception
}

// String returns the lower-case name of the category.
func (c Category) String() string {
	if int(c) < len(names) {
		return names[c]
	}
	return "category(" + strconv.Itoa(int(c)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if int(c) >= len(names) {
		return nil, ErrCategoryInvalid
	}
	return []byte(names[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
