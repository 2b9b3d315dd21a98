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
	"context"
	"errors"
	"log/slog"
	"strings"

	"k8s.io/utils/exec"

	"github.com/NVIDIA/nagcfg/pkg/defaults"
	cerrors "github.com/NVIDIA/nagcfg/pkg/errors"
)

// Runner runs an external command and returns its exit code and combined
// output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (exitCode int, output string, err error)
}

// ExecRunner runs commands through k8s.io/utils/exec. The zero value uses
// the host executor.
type ExecRunner struct {
	Exec exec.Interface
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) (int, string, error) {
	executor := r.Exec
	if executor == nil {
		executor = exec.New()
	}

	out, err := executor.CommandContext(ctx, name, args...).CombinedOutput()

	exit := 0
	if err != nil {
		var ee exec.ExitError
		if errors.As(err, &ee) {
			exit = ee.ExitStatus()
		} else {
			exit = 1
		}
	}
	return exit, string(out), err
}

// PackageManager installs OS packages.
type PackageManager interface {
	// Missing returns the packages from pkgs that are not installed.
	Missing(ctx context.Context, pkgs []string) ([]string, error)
	// Install installs pkgs.
	Install(ctx context.Context, pkgs []string) error
}

// CommandPackageManager drives a package manager through its CLI.
type CommandPackageManager struct {
	runner  Runner
	query   []string
	install []string
	// installed, when set, must appear in the query output for the package
	// to count as installed.
	installed string
}

// PackageManagerFor returns the package manager used by family. RedHat
// systems use dnf and rpm, Debian systems apt-get and dpkg-query. Other
// families return nil.
func PackageManagerFor(family string, runner Runner) *CommandPackageManager {
	if runner == nil {
		runner = ExecRunner{}
	}
	switch strings.ToLower(family) {
	case "redhat":
		return &CommandPackageManager{
			runner:  runner,
			query:   []string{"rpm", "-q", "--quiet"},
			install: []string{"dnf", "install", "-y"},
		}
	case "debian":
		return &CommandPackageManager{
			runner:    runner,
			query:     []string{"dpkg-query", "-W", "-f=${Status}"},
			install:   []string{"apt-get", "install", "-y", "--no-install-recommends"},
			installed: "install ok installed",
		}
	default:
		return nil
	}
}

// Missing implements PackageManager. A package counts as missing when the
// query command exits non-zero or, for dpkg, when its status is anything
// other than fully installed (removed packages keep their config-files entry).
func (m *CommandPackageManager) Missing(ctx context.Context, pkgs []string) ([]string, error) {
	missing := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		args := append(append([]string(nil), m.query[1:]...), pkg)
		code, out, err := m.runner.Run(ctx, m.query[0], args...)
		if err != nil && code == 0 {
			return nil, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to query package "+pkg, err)
		}
		if code != 0 || (m.installed != "" && !strings.Contains(out, m.installed)) {
			missing = append(missing, pkg)
		}
	}
	return missing, nil
}

// Install implements PackageManager.
func (m *CommandPackageManager) Install(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.PackageInstallTimeout)
	defer cancel()

	args := append(append([]string(nil), m.install[1:]...), pkgs...)
	slog.Info("installing packages", "command", m.install[0], "packages", pkgs)

	code, out, err := m.runner.Run(ctx, m.install[0], args...)
	if err != nil || code != 0 {
		return cerrors.WrapWithContext(cerrors.ErrCodeInternal, "package installation failed", err,
			map[string]any{
				"command":  m.install[0],
				"exitCode": code,
				"output":   strings.TrimSpace(out),
			})
	}
	return nil
}

// String returns the install command line prefix.
func (m *CommandPackageManager) String() string {
	return strings.Join(m.install, " ")
}

// Compile-time check
var _ PackageManager = (*CommandPackageManager)(nil)
