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

// Package nagios turns install parameters into the artifacts of a Nagios
// server: the rendered nagios.cfg, the systemd unit and the package list.
//
// Build is pure. It never touches the filesystem or runs commands, so callers
// can diff the returned text against installed content and decide on their
// own whether to write files or reload services.
//
//	art, err := nagios.Build(nagios.Params{
//	    Plugins: []string{"nagios-plugins-all"},
//	    Options: map[string]any{"admin_email": "root@example.com", ...},
//	}, "RedHat")
//	if err != nil {
//	    return err // MISSING_REQUIRED_OPTION or TYPE_MISMATCH
//	}
//	fmt.Print(art.ConfigText)
package nagios

import (
	"fmt"

	"github.com/NVIDIA/nagcfg/pkg/defaults"
	"github.com/NVIDIA/nagcfg/pkg/render"
	"github.com/NVIDIA/nagcfg/pkg/resolver"
	"github.com/NVIDIA/nagcfg/pkg/schema"
	"github.com/NVIDIA/nagcfg/pkg/unit"
)

// Option names feeding the unit file.
const (
	optLockFile    = "lock_file"
	optCommandFile = "command_file"
	optUser        = "nagios_user"
	optGroup       = "nagios_group"
)

// Params are the install parameters of a Nagios server.
type Params struct {
	// Plugins are plugin packages installed next to the daemon. Nil selects
	// the family default, an empty list installs none.
	Plugins []string `json:"plugins,omitempty" yaml:"plugins,omitempty"`

	// ConfFile is where nagios.cfg is installed. Defaults per family.
	ConfFile string `json:"conffile,omitempty" yaml:"conffile,omitempty"`

	// Binary is the daemon executable. Defaults per family.
	Binary string `json:"binary,omitempty" yaml:"binary,omitempty"`

	// Options are nagios.cfg settings keyed by option name.
	Options map[string]any `json:"nagios_cfg,omitempty" yaml:"nagios_cfg,omitempty"`
}

// Artifacts are the rendered outputs of Build.
type Artifacts struct {
	// Config is the resolved option set.
	Config *resolver.Config

	// OSFamily is the family the artifacts were built for.
	OSFamily string

	// ConfigText is the nagios.cfg content.
	ConfigText string

	// UnitText is the systemd unit content.
	UnitText string

	// ConfFile is the install path of ConfigText.
	ConfFile string

	// UnitFile is the install path of UnitText.
	UnitFile string

	// Packages lists the daemon package followed by plugins.
	Packages []string
}

// Build resolves p against the built-in catalog and overlays and renders
// both artifacts.
func Build(p Params, osFamily string) (*Artifacts, error) {
	return BuildWith(p, osFamily, schema.Nagios(), schema.NagiosOSDefaults())
}

// BuildWith is Build with an explicit catalog and overlays.
func BuildWith(p Params, osFamily string, catalog *schema.Catalog, osDefaults schema.OSDefaults) (*Artifacts, error) {
	cfg, err := resolver.Resolve(p.Options, osFamily, catalog, osDefaults)
	if err != nil {
		return nil, err
	}

	fam, _ := defaults.ForFamily(osFamily)
	confFile := firstNonEmpty(p.ConfFile, fam.ConfFile)
	binary := firstNonEmpty(p.Binary, fam.Binary)

	spec := unit.Spec{
		Binary:     binary,
		ConfigFile: confFile,
	}
	spec.PIDFile, _ = cfg.String(optLockFile)
	spec.CmdFile, _ = cfg.String(optCommandFile)
	spec.User, _ = cfg.String(optUser)
	spec.Group, _ = cfg.String(optGroup)

	unitText, err := unit.Render(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to render unit: %w", err)
	}

	return &Artifacts{
		Config:     cfg,
		OSFamily:   osFamily,
		ConfigText: render.Render(cfg),
		UnitText:   unitText,
		ConfFile:   confFile,
		UnitFile:   defaults.UnitFile,
		Packages:   PackagesFor(osFamily, p.Plugins),
	}, nil
}

// PackagesFor lists the daemon package of osFamily followed by plugins. Nil
// plugins select the family's default plugins.
func PackagesFor(osFamily string, plugins []string) []string {
	fam, _ := defaults.ForFamily(osFamily)
	if plugins == nil {
		plugins = fam.Plugins
	}
	packages := make([]string, 0, len(plugins)+1)
	packages = append(packages, fam.Package)
	return append(packages, plugins...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
