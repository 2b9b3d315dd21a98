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
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/NVIDIA/nagcfg/pkg/defaults"
	"github.com/NVIDIA/nagcfg/pkg/metrics"
)

// root:root
const (
	rootUID = 0
	rootGID = 0
)

// Report describes what Apply did, or would do in dry-run mode.
type Report struct {
	RunID         string        `json:"run_id" yaml:"run_id"`
	DryRun        bool          `json:"dry_run" yaml:"dry_run"`
	Packages      []string      `json:"packages" yaml:"packages"`
	Files         []string      `json:"files" yaml:"files"`
	DaemonReload  bool          `json:"daemon_reload" yaml:"daemon_reload"`
	ServiceReload bool          `json:"service_reload" yaml:"service_reload"`
	Duration      time.Duration `json:"duration" yaml:"duration"`
}

// Installer applies plans to a filesystem.
type Installer struct {
	fs           afero.Fs
	packages     PackageManager
	reloader     Reloader
	dryRun       bool
	skipPackages bool
	chown        bool
}

// Option configures an Installer.
type Option func(*Installer)

// WithPackageManager sets the package manager. Without one, packages are
// not installed.
func WithPackageManager(pm PackageManager) Option {
	return func(in *Installer) {
		in.packages = pm
	}
}

// WithReloader sets the service manager. Without one, no reloads happen.
func WithReloader(r Reloader) Option {
	return func(in *Installer) {
		in.reloader = r
	}
}

// WithDryRun reports the plan without touching the host.
func WithDryRun(dryRun bool) Option {
	return func(in *Installer) {
		in.dryRun = dryRun
	}
}

// WithSkipPackages disables package installation.
func WithSkipPackages(skip bool) Option {
	return func(in *Installer) {
		in.skipPackages = skip
	}
}

// WithChown makes written files owned by root:root. Only root may do this.
func WithChown(chown bool) Option {
	return func(in *Installer) {
		in.chown = chown
	}
}

// New creates an Installer writing through fs.
func New(fs afero.Fs, opts ...Option) *Installer {
	in := &Installer{fs: fs}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Apply converges the host to plan: packages first, then files, then
// reloads. Reloads owed for written files are recorded on fs until they
// succeed, so a failed reload is retried by the next plan.
func (in *Installer) Apply(ctx context.Context, plan *Plan) (report *Report, err error) {
	if plan == nil {
		return nil, fmt.Errorf("plan cannot be nil")
	}

	start := time.Now()
	defer func() {
		metrics.ObserveInstall(start, err)
	}()

	report = &Report{
		RunID:    uuid.NewString(),
		DryRun:   in.dryRun,
		Packages: []string{},
		Files:    []string{},
	}
	logger := slog.With("run_id", report.RunID, "dry_run", in.dryRun)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pkgs, err := in.installPackages(ctx, plan.Packages)
	if err != nil {
		return nil, err
	}
	report.Packages = pkgs

	daemonReload := plan.DaemonReload
	if in.reloader != nil && !daemonReload {
		need, err := in.reloader.NeedsDaemonReload(ctx, plan.Unit)
		if err != nil {
			return nil, err
		}
		if need {
			logger.Info("systemd has a stale unit definition", "unit", plan.Unit)
		}
		daemonReload = need
	}

	owed := pendingReloads{daemon: daemonReload, service: plan.ServiceReload}
	if in.reloader != nil && !in.dryRun && owed.any() {
		if err := writePending(in.fs, owed); err != nil {
			return nil, err
		}
	}

	for _, c := range plan.Pending() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		metrics.ObserveChange(string(c.Action))
		logger.Info("managed file", "path", c.Path, "action", c.Action)

		if !in.dryRun {
			if err := in.writeFile(c); err != nil {
				return nil, err
			}
		}
		report.Files = append(report.Files, c.Path)
	}

	if in.reloader != nil && daemonReload {
		if !in.dryRun {
			if err := in.reloader.DaemonReload(ctx); err != nil {
				return nil, err
			}
			metrics.ObserveReload("daemon")
		}
		report.DaemonReload = true
	}

	if in.reloader != nil && plan.ServiceReload {
		if in.dryRun {
			report.ServiceReload = true
		} else {
			reloaded, err := in.reloader.ReloadService(ctx, plan.Unit)
			if err != nil {
				return nil, err
			}
			if reloaded {
				metrics.ObserveReload("service")
			}
			report.ServiceReload = reloaded
		}
	}

	if in.reloader != nil && !in.dryRun && (owed.any() || plan.Resumed) {
		if err := clearPending(in.fs); err != nil {
			return nil, err
		}
	}

	report.Duration = time.Since(start)
	logger.Info("install complete",
		"packages", len(report.Packages),
		"files", len(report.Files),
		"daemon_reload", report.DaemonReload,
		"service_reload", report.ServiceReload,
		"duration", report.Duration.Round(time.Millisecond),
	)

	return report, nil
}

func (in *Installer) installPackages(ctx context.Context, pkgs []string) ([]string, error) {
	if in.skipPackages || len(pkgs) == 0 {
		return []string{}, nil
	}
	if in.packages == nil {
		slog.Warn("no package manager for this OS family, skipping packages", "packages", pkgs)
		return []string{}, nil
	}

	missing, err := in.packages.Missing(ctx, pkgs)
	if err != nil {
		return nil, err
	}
	if len(missing) == 0 || in.dryRun {
		return missing, nil
	}

	if err := in.packages.Install(ctx, missing); err != nil {
		return nil, err
	}
	metrics.ObservePackages(len(missing))
	return missing, nil
}

// writeFile replaces c.Path through a temporary file in the same directory.
func (in *Installer) writeFile(c Change) error {
	dir := filepath.Dir(c.Path)
	if err := in.fs.MkdirAll(dir, defaults.DirMode); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(in.fs, dir, "."+filepath.Base(c.Path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = in.fs.Remove(tmpName) }

	if _, err := tmp.Write(c.content); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write %s: %w", c.Path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := in.fs.Chmod(tmpName, c.Mode); err != nil {
		cleanup()
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if in.chown {
		if err := in.fs.Chown(tmpName, rootUID, rootGID); err != nil {
			cleanup()
			return fmt.Errorf("failed to chown %s: %w", tmpName, err)
		}
	}
	if err := in.fs.Rename(tmpName, c.Path); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace %s: %w", c.Path, err)
	}

	slog.Debug("file written",
		"path", c.Path,
		"size_bytes", len(c.content),
		"permissions", c.Mode,
	)
	return nil
}
