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

package unit

import (
	"fmt"
	"strings"
	"text/template"

	sdunit "github.com/coreos/go-systemd/v22/unit"
)

// DefaultUser and DefaultGroup run the daemon when Spec leaves them empty.
const (
	DefaultUser  = "nagios"
	DefaultGroup = "nagios"
)

const unitTemplate = `[Unit]
Description=Nagios Network Monitoring
After=network.target
Documentation=https://www.nagios.org/documentation/

[Service]
Type=forking
User={{ .User }}
Group={{ .Group }}
PIDFile={{ .PIDFile }}
# Verify Nagios config before start as upstream suggested
ExecStartPre={{ .Binary }} -v {{ .ConfigFile }}
ExecStart={{ .Binary }} -d {{ .ConfigFile }}
ExecStopPost=/usr/bin/rm -f {{ .CmdFile }}
ExecReload=/bin/kill -HUP $MAINPID

[Install]
WantedBy=multi-user.target
`

var tmpl = template.Must(template.New("nagios.service").Parse(unitTemplate))

// Spec holds the inputs of the unit template.
type Spec struct {
	// Binary is the daemon executable, e.g. /usr/sbin/nagios.
	Binary string
	// ConfigFile is the main configuration file passed to the daemon.
	ConfigFile string
	// PIDFile is the daemon lock file.
	PIDFile string
	// CmdFile is the external command pipe removed after stop.
	CmdFile string
	// User runs the daemon. Defaults to DefaultUser.
	User string
	// Group runs the daemon. Defaults to DefaultGroup.
	Group string
}

// Validate checks that every path is set and free of whitespace that would
// split the systemd command line.
func (s Spec) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"binary", s.Binary},
		{"config file", s.ConfigFile},
		{"pid file", s.PIDFile},
		{"cmd file", s.CmdFile},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%s cannot be empty", f.name)
		}
		if strings.ContainsAny(f.value, " \t\n") {
			return fmt.Errorf("%s %q contains whitespace", f.name, f.value)
		}
	}
	return nil
}

func (s Spec) withDefaults() Spec {
	if s.User == "" {
		s.User = DefaultUser
	}
	if s.Group == "" {
		s.Group = DefaultGroup
	}
	return s
}

// Render returns the unit file text for s.
func Render(s Spec) (string, error) {
	if err := s.Validate(); err != nil {
		return "", fmt.Errorf("invalid unit spec: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, s.withDefaults()); err != nil {
		return "", fmt.Errorf("failed to execute unit template: %w", err)
	}
	return buf.String(), nil
}

// Option is a single key of a parsed unit.
type Option = sdunit.UnitOption

// Parse reads unit text into its options. Comments are dropped.
func Parse(text string) ([]*Option, error) {
	opts, err := sdunit.DeserializeOptions(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("failed to parse unit: %w", err)
	}
	return opts, nil
}

// Value returns the last value of section/name in opts.
func Value(opts []*Option, section, name string) (string, bool) {
	var (
		value string
		found bool
	)
	for _, o := range opts {
		if o.Section == section && o.Name == name {
			value, found = o.Value, true
		}
	}
	return value, found
}
