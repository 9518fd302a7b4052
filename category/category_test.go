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
	"encoding"
	"testing"

	"dirpx.dev/sqlstate/class"
)

func TestOf_Partition(t *testing.T) {
	for _, c := range class.All() {
		got := Of(c)
		var want Category
		switch c {
		case "00":
			want = Success
		case "01":
			want = Warning
		case "02":
			want = NoData
		default:
			want = Exception
		}
		if got != want {
			t.Fatalf("Of(%q) = %v, want %v", c, got, want)
		}
	}
}

func TestOf_UnknownClassIsException(t *testing.T) {
	for _, c := range []class.Class{"XX", "P0", "03", class.Empty} {
		if got := Of(c); got != Exception {
			t.Fatalf("Of(%q) = %v, want exception", c, got)
		}
	}
}

func TestZeroValueIsException(t *testing.T) {
	var c Category
	if c != Exception {
		t.Fatalf("zero Category = %v, want exception", c)
	}
	if c.IsCompletion() {
		t.Fatalf("zero Category must not be a completion")
	}
}

func TestIsCompletion(t *testing.T) {
	for _, c := range []Category{Success, Warning, NoData} {
		if !c.IsCompletion() {
			t.Fatalf("%v.IsCompletion() = false", c)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"success", Success},
		{" WARNING ", Warning},
		{"no-data", NoData},
		{"no_data", NoData},
		{"Exception", Exception},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := Parse("fatal"); err != ErrCategoryInvalid {
		t.Fatalf("Parse(fatal) error = %v, want ErrCategoryInvalid", err)
	}
}

func TestString(t *testing.T) {
	if s := NoData.String(); s != "no_data" {
		t.Fatalf("NoData.String() = %q", s)
	}
	if s := Category(9).String(); s != "category(9)" {
		t.Fatalf("Category(9).String() = %q", s)
	}
}

func TestText_RoundTrip(t *testing.T) {
	for _, c := range All() {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) unexpected error: %v", c, err)
		}
		var back Category
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) unexpected error: %v", text, err)
		}
		if back != c {
			t.Fatalf("round trip %v -> %q -> %v", c, text, back)
		}
	}
	if _, err := Category(42).MarshalText(); err == nil {
		t.Fatalf("MarshalText on out-of-range category must fail")
	}
}

func TestCategory_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = Category(0)
	var _ encoding.TextUnmarshaler = (*Category)(nil)
}
