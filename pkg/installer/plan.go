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

package installer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kylelemons/godebug/diff"
	"github.com/spf13/afero"

	"github.com/NVIDIA/nagcfg/pkg/defaults"
	"github.com/NVIDIA/nagcfg/pkg/nagios"
)

// Action is what Apply does with a managed file.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionNone   Action = "none"
)

// Change describes one managed file.
type Change struct {
	Path   string      `json:"path" yaml:"path"`
	Owner  string      `json:"owner" yaml:"owner"`
	Group  string      `json:"group" yaml:"group"`
	Mode   os.FileMode `json:"mode" yaml:"mode"`
	Action Action      `json:"action" yaml:"action"`

	// Diff is a line diff of installed against desired content. Empty when
	// only the mode differs or nothing changes.
	Diff string `json:"diff,omitempty" yaml:"diff,omitempty"`

	content []byte
}

// Plan is the set of changes needed to converge a host.
type Plan struct {
	OSFamily      string   `json:"os_family" yaml:"os_family"`
	Packages      []string `json:"packages" yaml:"packages"`
	Changes       []Change `json:"changes" yaml:"changes"`
	DaemonReload  bool     `json:"daemon_reload" yaml:"daemon_reload"`
	ServiceReload bool     `json:"service_reload" yaml:"service_reload"`
	Unit          string   `json:"unit" yaml:"unit"`

	// Resumed is set when reloads left over from an interrupted run were
	// added to this plan.
	Resumed bool `json:"resumed,omitempty" yaml:"resumed,omitempty"`
}

// NewPlan compares art against the files on fs and adds reloads still owed
// by an earlier run.
func NewPlan(fs afero.Fs, art *nagios.Artifacts) (*Plan, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	if art == nil {
		return nil, fmt.Errorf("artifacts cannot be nil")
	}

	cfg, err := planFile(fs, art.ConfFile, art.ConfigText)
	if err != nil {
		return nil, err
	}
	unit, err := planFile(fs, art.UnitFile, art.UnitText)
	if err != nil {
		return nil, err
	}

	pending, err := readPending(fs)
	if err != nil {
		return nil, err
	}

	return &Plan{
		OSFamily:      art.OSFamily,
		Packages:      append([]string(nil), art.Packages...),
		Changes:       []Change{cfg, unit},
		DaemonReload:  unit.Action != ActionNone || pending.daemon,
		ServiceReload: cfg.Action != ActionNone || pending.service,
		Unit:          defaults.UnitName,
		Resumed:       pending.any(),
	}, nil
}

// NewPackagePlan returns a plan that installs pkgs and manages no files.
func NewPackagePlan(osFamily string, pkgs []string) *Plan {
	return &Plan{
		OSFamily: osFamily,
		Packages: append([]string(nil), pkgs...),
		Changes:  []Change{},
		Unit:     defaults.UnitName,
	}
}

func planFile(fs afero.Fs, path, content string) (Change, error) {
	if path == "" {
		return Change{}, fmt.Errorf("managed file path cannot be empty")
	}

	c := Change{
		Path:    path,
		Owner:   defaults.FileOwner,
		Group:   defaults.FileGroup,
		Mode:    defaults.FileMode,
		Action:  ActionNone,
		content: []byte(content),
	}

	info, err := fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		c.Action = ActionCreate
		c.Diff = diff.Diff("", content)
		return c, nil
	}
	if err != nil {
		return Change{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Change{}, fmt.Errorf("%s is a directory", path)
	}

	current, err := afero.ReadFile(fs, path)
	if err != nil {
		return Change{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !bytes.Equal(current, c.content) {
		c.Action = ActionUpdate
		c.Diff = diff.Diff(string(current), content)
	} else if info.Mode().Perm() != c.Mode {
		c.Action = ActionUpdate
	}

	return c, nil
}

// HasChanges reports whether any file needs to be written.
func (p *Plan) HasChanges() bool {
	for _, c := range p.Changes {
		if c.Action != ActionNone {
			return true
		}
	}
	return false
}

// Pending returns the changes that are not ActionNone.
func (p *Plan) Pending() []Change {
	out := make([]Change, 0, len(p.Changes))
	for _, c := range p.Changes {
		if c.Action != ActionNone {
			out = append(out, c)
		}
	}
	return out
}

// Diff renders every pending change with a header line per file.
func (p *Plan) Diff() string {
	var b strings.Builder
	for _, c := range p.Pending() {
		fmt.Fprintf(&b, "--- %s (%s %s:%s %04o)\n", c.Path, c.Action, c.Owner, c.Group, c.Mode)
		if c.Diff != "" {
			b.WriteString(c.Diff)
			if !strings.HasSuffix(c.Diff, "\n") {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
