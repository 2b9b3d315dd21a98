// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schema

import (
	"fmt"
	"sort"
	"strings"
)

// OptionSpec declares one named configuration option.
type OptionSpec struct {
	// Name is the key written to the rendered configuration.
	Name string `json:"name" yaml:"name"`

	// Kind is the expected value type.
	Kind Kind `json:"kind" yaml:"kind"`

	// Default is used when neither the user nor the OS overlay set a value.
	// Nil means the option has no default.
	Default any `json:"default,omitempty" yaml:"default,omitempty"`

	// Required options must resolve to a value.
	Required bool `json:"required" yaml:"required"`

	// Allowed lists the accepted values of an enum option.
	Allowed []string `json:"allowed,omitempty" yaml:"allowed,omitempty"`
}

// HasDefault reports whether the option declares a default value.
func (o OptionSpec) HasDefault() bool {
	return o.Default != nil
}

// Catalog is an ordered set of options keyed by unique name.
// It is immutable once built.
type Catalog struct {
	options []OptionSpec
	index   map[string]int
}

// NewCatalog validates the given specs and builds a catalog preserving their
// order. Defaults are normalized to their canonical representation.
func NewCatalog(specs ...OptionSpec) (*Catalog, error) {
	c := &Catalog{
		options: make([]OptionSpec, 0, len(specs)),
		index:   make(map[string]int, len(specs)),
	}

	for _, spec := range specs {
		if strings.TrimSpace(spec.Name) == "" {
			return nil, fmt.Errorf("option at position %d has no name", len(c.options))
		}
		if _, dup := c.index[spec.Name]; dup {
			return nil, fmt.Errorf("duplicate option %q", spec.Name)
		}
		if _, err := ParseKind(string(spec.Kind)); err != nil {
			return nil, fmt.Errorf("option %q: %w", spec.Name, err)
		}
		if spec.Kind == KindEnum && len(spec.Allowed) == 0 {
			return nil, fmt.Errorf("enum option %q has no allowed values", spec.Name)
		}
		if spec.Allowed != nil {
			spec.Allowed = append([]string(nil), spec.Allowed...)
		}
		if spec.HasDefault() {
			v, err := spec.Normalize(spec.Default)
			if err != nil {
				return nil, fmt.Errorf("invalid default: %w", err)
			}
			spec.Default = v
		}

		c.index[spec.Name] = len(c.options)
		c.options = append(c.options, spec)
	}

	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. It is intended for
// static tables.
func MustCatalog(specs ...OptionSpec) *Catalog {
	c, err := NewCatalog(specs...)
	if err != nil {
		panic(fmt.Sprintf("schema: %v", err))
	}
	return c
}

// Len returns the number of options.
func (c *Catalog) Len() int {
	return len(c.options)
}

// Options returns a copy of the option specs in catalog order.
func (c *Catalog) Options() []OptionSpec {
	out := make([]OptionSpec, len(c.options))
	copy(out, c.options)
	return out
}

// Names returns option names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.options))
	for i, o := range c.options {
		names[i] = o.Name
	}
	return names
}

// Lookup returns the spec for name.
func (c *Catalog) Lookup(name string) (OptionSpec, bool) {
	i, ok := c.index[name]
	if !ok {
		return OptionSpec{}, false
	}
	return c.options[i], true
}

// Required returns the names of required options in catalog order.
func (c *Catalog) Required() []string {
	var names []string
	for _, o := range c.options {
		if o.Required {
			names = append(names, o.Name)
		}
	}
	return names
}

// OSDefaults maps an OS family to option values overlaid before catalog
// defaults.
type OSDefaults map[string]map[string]any

// For returns the overlay for family. An exact key match wins, otherwise the
// first case-insensitive match in sorted key order is used.
func (d OSDefaults) For(family string) map[string]any {
	if values, ok := d[family]; ok {
		return values
	}
	for _, f := range d.Families() {
		if strings.EqualFold(f, family) {
			return d[f]
		}
	}
	return nil
}

// Families returns the overlay family names sorted alphabetically.
func (d OSDefaults) Families() []string {
	families := make([]string, 0, len(d))
	for f := range d {
		families = append(families, f)
	}
	sort.Strings(families)
	return families
}

// Merge returns a new OSDefaults with other's values layered over d's.
// Families are matched case-insensitively and keep the receiver's spelling.
func (d OSDefaults) Merge(other OSDefaults) OSDefaults {
	out := make(OSDefaults, len(d)+len(other))
	for family, values := range d {
		out[family] = copyValues(values)
	}
	for _, family := range other.Families() {
		target := family
		for existing := range out {
			if strings.EqualFold(existing, family) {
				target = existing
				break
			}
		}
		if out[target] == nil {
			out[target] = make(map[string]any, len(other[family]))
		}
		for name, v := range other[family] {
			out[target][name] = v
		}
	}
	return out
}

// Validate checks every overlay value against catalog. Unknown option names
// are rejected.
func (d OSDefaults) Validate(c *Catalog) error {
	for _, family := range d.Families() {
		names := make([]string, 0, len(d[family]))
		for name := range d[family] {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			spec, ok := c.Lookup(name)
			if !ok {
				return fmt.Errorf("os family %s: unknown option %q", family, name)
			}
			if _, err := spec.Normalize(d[family][name]); err != nil {
				return fmt.Errorf("os family %s: %w", family, err)
			}
		}
	}
	return nil
}

func copyValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
