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

// Package config loads mapper rules from YAML files.
//
// A rules file adjusts the library defaults of package mapper:
//
//	http:
//	  classes:            # per-class defaults
//	    "23": 422
//	  overrides:          # per-class overrides, beat every other rule
//	    "40": 503
//	  prefixes:           # longest-prefix-match over the five-character code
//	    "22012": 422
//	    "4000*": 409
//	  categories:         # per-category defaults
//	    no_data: 204
//	grpc:
//	  classes:
//	    "23": ALREADY_EXISTS
//	  overrides:
//	    "40": 14          # numbers work too
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"

	"dirpx.dev/sqlstate/apis"
	"dirpx.dev/sqlstate/category"
	"dirpx.dev/sqlstate/class"
	"dirpx.dev/sqlstate/mapper"
)

// ErrInvalidRule is returned for rules whose key or value can not be used.
var ErrInvalidRule = errors.New("config: invalid rule")

// Rules is the content of a rules file.
type Rules struct {
	HTTP Table[int]      `yaml:"http"`
	GRPC Table[GRPCCode] `yaml:"grpc"`
}

// Table holds the rules for one transport. Keys are class codes, code
// prefixes or category names, as the section requires.
type Table[T any] struct {
	Classes    map[string]T `yaml:"classes"`
	Overrides  map[string]T `yaml:"overrides"`
	Prefixes   map[string]T `yaml:"prefixes"`
	Categories map[string]T `yaml:"categories"`
}

// GRPCCode is a gRPC code written either as a number or by name
// ("UNAVAILABLE", "Unavailable" and "unavailable" are all accepted).
type GRPCCode codes.Code

var grpcByName = func() map[string]codes.Code {
	m := make(map[string]codes.Code, 17)
	for c := codes.OK; c <= codes.Unauthenticated; c++ {
		m[grpcKey(c.String())] = c
	}
	return m
}()

func grpcKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *GRPCCode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: gRPC code must be a scalar", ErrInvalidRule, value.Line)
	}
	if n, err := strconv.Atoi(value.Value); err == nil {
		*g = GRPCCode(n)
		return nil
	}
	c, ok := grpcByName[grpcKey(value.Value)]
	if !ok {
		return fmt.Errorf("%w: line %d: unknown gRPC code %q", ErrInvalidRule, value.Line, value.Value)
	}
	*g = GRPCCode(c)
	return nil
}

// MarshalYAML implements yaml.Marshaler, writing the upper-case name.
// Codes outside the known range are written as numbers.
func (g GRPCCode) MarshalYAML() (any, error) {
	if codes.Code(g) > codes.Unauthenticated {
		return int(g), nil
	}
	return strings.ToUpper(toSnake(codes.Code(g).String())), nil
}

// toSnake turns "FailedPrecondition" into "Failed_Precondition".
func toSnake(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		upper := r >= 'A' && r <= 'Z'
		if upper && prevLower {
			b.WriteByte('_')
		}
		prevLower = !upper
		b.WriteRune(r)
	}
	return b.String()
}

// Load reads and parses a rules file.
func Load(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes rules from YAML. Unknown fields are rejected; an empty
// document yields empty rules.
func Parse(data []byte) (*Rules, error) {
	r := &Rules{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(r); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	return r, nil
}

// Save writes the rules as YAML.
func (r *Rules) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write rules: %w", err)
	}
	return nil
}

// Options validates the keys of all sections and converts the rules into
// mapper options, in a deterministic order. Values are checked by
// mapper.New.
func (r *Rules) Options() ([]mapper.Option, error) {
	var opts []mapper.Option

	httpOpts, err := tableOptions(r.HTTP, func(v int) int { return v }, transport{
		class:    mapper.WithHTTPDefault,
		override: mapper.WithHTTPOverride,
		prefix:   mapper.WithHTTPPrefix,
		category: mapper.WithHTTPCategoryDefault,
	})
	if err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	opts = append(opts, httpOpts...)

	grpcOpts, err := tableOptions(r.GRPC, func(v GRPCCode) int { return int(v) }, transport{
		class:    mapper.WithGRPCDefault,
		override: mapper.WithGRPCOverride,
		prefix:   mapper.WithGRPCPrefix,
		category: mapper.WithGRPCCategoryDefault,
	})
	if err != nil {
		return nil, fmt.Errorf("grpc: %w", err)
	}
	return append(opts, grpcOpts...), nil
}

// Mapper builds a mapper from the library defaults adjusted by r.
func (r *Rules) Mapper() (apis.Mapper, error) {
	opts, err := r.Options()
	if err != nil {
		return nil, err
	}
	return mapper.New(opts...)
}

type transport struct {
	class    func(class.Class, int) mapper.Option
	override func(class.Class, int) mapper.Option
	prefix   func(string, int) mapper.Option
	category func(category.Category, int) mapper.Option
}

func tableOptions[T any](t Table[T], conv func(T) int, tr transport) ([]mapper.Option, error) {
	var opts []mapper.Option
	for _, k := range slices.Sorted(maps.Keys(t.Classes)) {
		c, err := class.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("%w: classes: %q: %w", ErrInvalidRule, k, err)
		}
		opts = append(opts, tr.class(c, conv(t.Classes[k])))
	}
	for _, k := range slices.Sorted(maps.Keys(t.Overrides)) {
		c, err := class.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("%w: overrides: %q: %w", ErrInvalidRule, k, err)
		}
		opts = append(opts, tr.override(c, conv(t.Overrides[k])))
	}
	for _, k := range slices.Sorted(maps.Keys(t.Prefixes)) {
		opts = append(opts, tr.prefix(k, conv(t.Prefixes[k])))
	}
	for _, k := range slices.Sorted(maps.Keys(t.Categories)) {
		cat, err := category.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("%w: categories: %q: %w", ErrInvalidRule, k, err)
		}
		opts = append(opts, tr.category(cat, conv(t.Categories[k])))
	}
	return opts, nil
}
