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

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nagcfg/pkg/bundle"
	"github.com/NVIDIA/nagcfg/pkg/nagios"
)

const (
	artifactConfig = "config"
	artifactUnit   = "unit"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:                  "render",
		EnableShellCompletion: true,
		Usage:                 "Render nagios.cfg and the systemd unit from a parameter file",
		Description: `Resolves the parameter file against the option catalog and the OS family
defaults, then renders the result.

Without --output the selected artifact is written to stdout. With --output
a bundle directory is written instead:

  - nagios.cfg:      the main configuration file
  - nagios.service:  the systemd unit
  - packages.txt:    packages to install, one per line
  - checksums.txt:   SHA-256 checksums of the files above

# Examples

Render nagios.cfg for a RedHat host:
  nagcfg render -p params.yaml --os-family RedHat

Render the unit instead:
  nagcfg render -p params.yaml --os-family Debian --artifact unit

Write a bundle, detecting the OS family from /etc/os-release:
  nagcfg render -p params.hcl --output ./out`,
		Flags: []cli.Flag{
			paramsFlag(true),
			osFamilyFlag(),
			osDefaultsFlag(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory for the bundle (stdout when not set)",
				Sources: cli.EnvVars("NAGCFG_OUTPUT"),
			},
			&cli.StringFlag{
				Name:    "artifact",
				Aliases: []string{"a"},
				Value:   artifactConfig,
				Usage:   "Artifact written to stdout when --output is not set: 'config' or 'unit'",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			artifact := cmd.String("artifact")
			if artifact != artifactConfig && artifact != artifactUnit {
				return fmt.Errorf("unknown artifact: %q (want %q or %q)", artifact, artifactConfig, artifactUnit)
			}

			art, err := buildArtifacts(ctx, cmd, afero.NewOsFs())
			if err != nil {
				return err
			}

			dir := cmd.String("output")
			if dir == "" {
				return printArtifact(stdout(cmd), art, artifact)
			}

			slog.Info("writing bundle", "output", dir, "family", art.OSFamily)

			res, err := bundle.New(nil).Write(ctx, dir, art)
			if err != nil {
				slog.Error("bundle generation failed", "error", err)
				return err
			}

			slog.Info("bundle generated",
				"run_id", res.RunID,
				"files", len(res.Files),
				"size_bytes", res.Size,
				"duration_sec", res.Duration.Seconds(),
				"output_dir", res.OutputDir,
			)

			fmt.Fprintln(stdout(cmd), res.Summary())
			return nil
		},
	}
}

func printArtifact(w io.Writer, art *nagios.Artifacts, artifact string) error {
	text := art.ConfigText
	if artifact == artifactUnit {
		text = art.UnitText
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("failed to write %s: %w", artifact, err)
	}
	return nil
}
