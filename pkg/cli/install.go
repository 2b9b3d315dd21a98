/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nagcfg/pkg/errors"
	"github.com/NVIDIA/nagcfg/pkg/header"
	"github.com/NVIDIA/nagcfg/pkg/installer"
	"github.com/NVIDIA/nagcfg/pkg/metrics"
	"github.com/NVIDIA/nagcfg/pkg/nagios"
	"github.com/NVIDIA/nagcfg/pkg/serializer"
)

// commandRunner runs the host package manager.
var commandRunner installer.Runner = installer.ExecRunner{}

type installReport struct {
	header.Header    `json:",inline" yaml:",inline"`
	installer.Report `json:",inline" yaml:",inline"`
}

func installCmd() *cli.Command {
	return &cli.Command{
		Name:                  "install",
		EnableShellCompletion: true,
		Usage:                 "Install nagios packages, configuration and unit on this host",
		Description: `Builds nagios.cfg and nagios.service from the parameter file, compares them
with the files on disk and converges the host:

  1. installs the daemon and plugin packages that are missing (dnf or apt-get)
  2. writes nagios.cfg and nagios.service when their content or mode differ
  3. runs systemctl daemon-reload when the unit changed
  4. reloads nagios.service when the configuration changed and it is running

Running install twice with the same parameters changes nothing the second time.

With --root files are written below the given directory and the OS family is
detected from its os-release. Packages and systemd are left alone.

With --packages-only only step 1 runs. The parameter file is optional and,
when given, only its plugins list is used.

# Examples

Show what would change:
  nagcfg install -p params.yaml --dry-run

Install on this host and export run metrics for node-exporter:
  sudo nagcfg install -p params.yaml \
    --metrics-file /var/lib/node_exporter/textfile/nagcfg.prom

Populate an image root:
  nagcfg install -p params.yaml --root /mnt/image --os-family RedHat

Install the daemon and default plugins before any configuration exists:
  sudo nagcfg install --packages-only`,
		Flags: []cli.Flag{
			paramsFlag(false),
			osFamilyFlag(),
			osDefaultsFlag(),
			&cli.StringFlag{
				Name:    "root",
				Usage:   "Write files below this directory instead of /",
				Sources: cli.EnvVars("NAGCFG_ROOT"),
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"n"},
				Usage:   "Print the plan and report without changing anything",
				Sources: cli.EnvVars("NAGCFG_DRY_RUN"),
			},
			&cli.BoolFlag{
				Name:    "skip-packages",
				Usage:   "Do not query or install packages",
				Sources: cli.EnvVars("NAGCFG_SKIP_PACKAGES"),
			},
			&cli.BoolFlag{
				Name:    "packages-only",
				Usage:   "Install the daemon and plugin packages without writing configuration",
				Sources: cli.EnvVars("NAGCFG_PACKAGES_ONLY"),
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "Write run metrics in Prometheus text format to this file",
				Sources: cli.EnvVars("NAGCFG_METRICS_FILE"),
			},
			formatFlag(serializer.FormatYAML),
			reportFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			root := cmd.String("root")
			dryRun := cmd.Bool("dry-run")

			if cmd.Bool("packages-only") {
				if root != "" || cmd.Bool("skip-packages") {
					return errors.New(errors.ErrCodeInvalidRequest,
						"--packages-only cannot be combined with --root or --skip-packages")
				}
				report, err := installPackages(ctx, cmd, dryRun)
				return finishInstall(ctx, cmd, report, err)
			}
			if cmd.String("params") == "" {
				return errors.New(errors.ErrCodeInvalidRequest,
					"--params is required unless --packages-only is set")
			}

			var fs afero.Fs = afero.NewOsFs()
			if root != "" {
				fs = afero.NewBasePathFs(fs, root)
			}

			art, err := buildArtifacts(ctx, cmd, fs)
			if err != nil {
				return err
			}

			plan, err := installer.NewPlan(fs, art)
			if err != nil {
				return fmt.Errorf("failed to plan install: %w", err)
			}
			slog.Info("planned install",
				"family", plan.OSFamily,
				"changes", len(plan.Pending()),
				"daemon_reload", plan.DaemonReload,
				"service_reload", plan.ServiceReload)

			if dryRun && plan.HasChanges() {
				if _, err := io.WriteString(stdout(cmd), plan.Diff()); err != nil {
					return fmt.Errorf("failed to write plan: %w", err)
				}
			}

			in := installer.New(fs, installOptions(cmd, plan.OSFamily, root, dryRun)...)
			report, err := in.Apply(ctx, plan)
			return finishInstall(ctx, cmd, report, err)
		},
	}
}

// installPackages installs the daemon and plugin packages of the host's
// family. Plugins come from --params when it is set.
func installPackages(ctx context.Context, cmd *cli.Command, dryRun bool) (*installer.Report, error) {
	fs := afero.NewOsFs()
	family, err := resolveFamily(ctx, cmd, fs)
	if err != nil {
		return nil, err
	}

	var plugins []string
	if path := cmd.String("params"); path != "" {
		params, err := loadParams(path)
		if err != nil {
			return nil, err
		}
		plugins = params.Plugins
	}

	pm := installer.PackageManagerFor(family, commandRunner)
	if pm == nil {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"no package manager for OS family", map[string]any{"family": family})
	}

	plan := installer.NewPackagePlan(family, nagios.PackagesFor(family, plugins))
	slog.Info("planned package install", "family", family, "packages", plan.Packages)

	in := installer.New(fs,
		installer.WithDryRun(dryRun),
		installer.WithPackageManager(pm))
	return in.Apply(ctx, plan)
}

// finishInstall exports metrics for the run and writes its report.
func finishInstall(ctx context.Context, cmd *cli.Command, report *installer.Report, err error) error {
	if path := cmd.String("metrics-file"); path != "" {
		if mErr := metrics.WriteTextfile(path); mErr != nil {
			slog.Warn("failed to write metrics", "path", path, "error", mErr)
		}
	}
	if err != nil {
		return fmt.Errorf("install failed: %w", err)
	}

	return writeReport(ctx, cmd, installReport{
		Header: header.New(header.KindInstallReport, version,
			header.WithMetadata("run_id", report.RunID)),
		Report: *report,
	})
}

// installOptions wires the host collaborators. A non-empty root disables
// packages and systemd.
func installOptions(cmd *cli.Command, family, root string, dryRun bool) []installer.Option {
	opts := []installer.Option{
		installer.WithDryRun(dryRun),
		installer.WithSkipPackages(cmd.Bool("skip-packages") || root != ""),
		installer.WithChown(os.Geteuid() == 0),
	}
	if root != "" {
		return opts
	}

	if pm := installer.PackageManagerFor(family, commandRunner); pm != nil {
		slog.Debug("using package manager", "family", family, "manager", pm.String())
		opts = append(opts, installer.WithPackageManager(pm))
	}
	opts = append(opts, installer.WithReloader(installer.NewSystemdReloader()))
	return opts
}
