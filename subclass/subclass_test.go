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
	"encoding"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim+upper", "  00a  ", "00A"},
		{"digits", "005", "005"},
		{"non ascii kept", "00ſ", "00ſ"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Subclass
	}{
		{"none", "000", None},
		{"digits", "005", Subclass("005")},
		{"letter", "00a", Subclass("00A")},
		{"implementation defined", "P01", Subclass("P01")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"00",
		"0000",
		"0 1",
		"0.1",
		"a_b",
		"00ſ",
		"0ı0",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", in, got)
			}
			if err != ErrSubclassInvalid {
				t.Fatalf("Parse(%q) error = %v, want ErrSubclassInvalid", in, err)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	for _, sc := range []Subclass{None, "001", "02F", "C00"} {
		if err := Validate(sc); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", sc, err)
		}
	}
	for _, sc := range []Subclass{Empty, "00a", "1"} {
		if err := Validate(sc); err == nil {
			t.Fatalf("Validate(%q) expected error", sc)
		}
	}
}

func TestIsNone(t *testing.T) {
	if !None.IsNone() {
		t.Fatalf("None.IsNone() = false")
	}
	if Subclass("001").IsNone() {
		t.Fatalf("001.IsNone() = true")
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse must panic on invalid subclass")
		}
	}()
	_ = MustParse("0000")
}

func TestSubclass_MarshalText(t *testing.T) {
	text, err := Subclass("00A").MarshalText()
	if err != nil {
		t.Fatalf("MarshalText unexpected error: %v", err)
	}
	if string(text) != "00A" {
		t.Fatalf("MarshalText = %q, want %q", string(text), "00A")
	}
	if _, err := Empty.MarshalText(); err == nil {
		t.Fatalf("MarshalText on empty subclass must return error")
	}
}

func TestSubclass_UnmarshalText(t *testing.T) {
	var sc Subclass
	if err := sc.UnmarshalText([]byte("  02f ")); err != nil {
		t.Fatalf("UnmarshalText unexpected error: %v", err)
	}
	if sc != Subclass("02F") {
		t.Fatalf("UnmarshalText = %q, want %q", sc, "02F")
	}

	var bad Subclass
	if err := bad.UnmarshalText([]byte("02-F")); err == nil {
		t.Fatalf("UnmarshalText expected error for invalid input")
	}
}

func TestSubclass_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Subclass)(nil)
	var _ encoding.TextUnmarshaler = (*Subclass)(nil)
}
