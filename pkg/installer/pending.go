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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/NVIDIA/nagcfg/pkg/defaults"
)

// Lines of the pending reload file.
const (
	pendingDaemonReload  = "daemon-reload"
	pendingServiceReload = "service-reload"
)

// pendingReloads are reloads owed from an earlier Apply whose files were
// written but whose reloads did not complete.
type pendingReloads struct {
	daemon  bool
	service bool
}

func (p pendingReloads) any() bool {
	return p.daemon || p.service
}

func readPending(fs afero.Fs) (pendingReloads, error) {
	data, err := afero.ReadFile(fs, defaults.PendingReloadFile)
	if errors.Is(err, os.ErrNotExist) {
		return pendingReloads{}, nil
	}
	if err != nil {
		return pendingReloads{}, fmt.Errorf("failed to read %s: %w", defaults.PendingReloadFile, err)
	}

	var p pendingReloads
	for _, line := range strings.Split(string(data), "\n") {
		switch strings.TrimSpace(line) {
		case pendingDaemonReload:
			p.daemon = true
		case pendingServiceReload:
			p.service = true
		}
	}
	return p, nil
}

func writePending(fs afero.Fs, p pendingReloads) error {
	var lines []string
	if p.daemon {
		lines = append(lines, pendingDaemonReload)
	}
	if p.service {
		lines = append(lines, pendingServiceReload)
	}

	path := defaults.PendingReloadFile
	if err := fs.MkdirAll(filepath.Dir(path), defaults.DirMode); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(strings.Join(lines, "\n")+"\n"), defaults.FileMode); err != nil {
		return fmt.Errorf("failed to record pending reloads: %w", err)
	}
	return nil
}

func clearPending(fs afero.Fs) error {
	err := fs.Remove(defaults.PendingReloadFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear pending reloads: %w", err)
	}
	return nil
}
