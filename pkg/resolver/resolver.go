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

// Package resolver merges user parameters, OS family overlays and catalog
// defaults into a validated, immutable configuration.
//
// Resolution walks the catalog in order. For each option the first value
// found wins:
//
//  1. the user parameter
//  2. the overlay for the OS family
//  3. the catalog default
//
// A required option without a value aborts with MISSING_REQUIRED_OPTION, a
// value of the wrong type aborts with TYPE_MISMATCH. There is no partial
// result. Resolve performs no I/O.
package resolver

import (
	"fmt"
	"sort"

	"github.com/NVIDIA/nagcfg/pkg/schema"
)

// Source identifies where a resolved value came from.
type Source string

// Value sources in precedence order.
const (
	SourceUser    Source = "user"
	SourceOS      Source = "os"
	SourceDefault Source = "default"
)

// Resolve builds a Config from params for osFamily. Parameter names absent
// from the catalog are recorded in Config.Unknown and otherwise ignored.
// A nil parameter value counts as unset.
func Resolve(params map[string]any, osFamily string, catalog *schema.Catalog, osDefaults schema.OSDefaults) (*Config, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}

	overlay := osDefaults.For(osFamily)

	cfg := &Config{
		catalog:  catalog,
		osFamily: osFamily,
		values:   make(map[string]any, catalog.Len()),
		sources:  make(map[string]Source, catalog.Len()),
	}

	for _, spec := range catalog.Options() {
		raw, src, ok := lookup(spec, params, overlay)
		if !ok {
			if spec.Required {
				return nil, missing(spec.Name)
			}
			continue
		}

		v, err := spec.Normalize(raw)
		if err != nil {
			return nil, err
		}
		cfg.values[spec.Name] = v
		cfg.sources[spec.Name] = src
	}

	for name := range params {
		if _, known := catalog.Lookup(name); !known {
			cfg.unknown = append(cfg.unknown, name)
		}
	}
	sort.Strings(cfg.unknown)

	return cfg, nil
}

func lookup(spec schema.OptionSpec, params, overlay map[string]any) (any, Source, bool) {
	if v, ok := params[spec.Name]; ok && v != nil {
		return v, SourceUser, true
	}
	if v, ok := overlay[spec.Name]; ok && v != nil {
		return v, SourceOS, true
	}
	if spec.HasDefault() {
		return spec.Default, SourceDefault, true
	}
	return nil, "", false
}
