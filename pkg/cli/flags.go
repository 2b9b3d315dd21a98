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
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nagcfg/pkg/errors"
	"github.com/NVIDIA/nagcfg/pkg/facts"
	"github.com/NVIDIA/nagcfg/pkg/metrics"
	"github.com/NVIDIA/nagcfg/pkg/nagios"
	"github.com/NVIDIA/nagcfg/pkg/schema"
	"github.com/NVIDIA/nagcfg/pkg/serializer"
)

// Flags are built per command so parsed state never leaks between runs.

func paramsFlag(required bool) cli.Flag {
	return &cli.StringFlag{
		Name:     "params",
		Aliases:  []string{"p"},
		Required: required,
		Usage: `Path to the parameter file (plugins, conffile, binary, nagios_cfg).
	Format is chosen by extension: .yaml/.yml, .json or .hcl.`,
		Sources: cli.EnvVars("NAGCFG_PARAMS"),
	}
}

func osFamilyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "os-family",
		Aliases: []string{"f"},
		Usage: `OS family to build for (e.g. RedHat, Debian).
	Detected from /etc/os-release when not set.`,
		Sources: cli.EnvVars("NAGCFG_OS_FAMILY"),
	}
}

func osDefaultsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "os-defaults",
		Usage:   "Path to a YAML file extending or overriding the built-in OS family defaults",
		Sources: cli.EnvVars("NAGCFG_OS_DEFAULTS"),
	}
}

func formatFlag(def serializer.Format) cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(def),
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Sources: cli.EnvVars("NAGCFG_FORMAT"),
	}
}

func reportFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "report",
		Aliases: []string{"o"},
		Usage:   "write the report to a file instead of stdout",
		Sources: cli.EnvVars("NAGCFG_REPORT"),
	}
}

// parseOutputFormat returns the writable format named by the format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if !outFormat.CanWrite() {
		return "", fmt.Errorf("unknown output format: %q", outFormat)
	}
	return outFormat, nil
}

// stdout is where commands print results. Tests swap it through the root
// command's Writer.
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// newReportWriter serializes to the report file when set, otherwise to stdout.
func newReportWriter(cmd *cli.Command) (*serializer.Writer, error) {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}
	if path := cmd.String("report"); path != "" {
		return serializer.NewFileWriterOrStdout(outFormat, path), nil
	}
	return serializer.NewWriter(outFormat, stdout(cmd)), nil
}

// writeReport serializes v and closes the writer.
func writeReport(ctx context.Context, cmd *cli.Command, v any) error {
	ser, err := newReportWriter(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := ser.Close(); closeErr != nil {
			slog.Warn("failed to close report writer", "error", closeErr)
		}
	}()

	if err := ser.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	return nil
}

// loadParams decodes the parameter file named by the params flag.
func loadParams(path string) (*nagios.Params, error) {
	slog.Info("loading parameters", "path", path)

	p, err := serializer.FromFile[nagios.Params](path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to load parameters from %q", path), err)
	}
	return p, nil
}

// loadOSDefaults returns the built-in overlays, extended by the file at path
// when set.
func loadOSDefaults(path string) (schema.OSDefaults, error) {
	base := schema.NagiosOSDefaults()
	if path == "" {
		return base, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to open os defaults %q", path), err)
	}
	defer f.Close()

	extra, err := schema.LoadOSDefaults(f, schema.Nagios())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid os defaults %q", path), err)
	}

	slog.Debug("loaded os defaults", "path", path, "families", extra.Families())
	return base.Merge(extra), nil
}

// resolveFamily returns the os-family flag, or the family detected from the
// os-release file on fs.
func resolveFamily(ctx context.Context, cmd *cli.Command, fs afero.Fs) (string, error) {
	if family := strings.TrimSpace(cmd.String("os-family")); family != "" {
		return family, nil
	}

	rel, err := facts.Detect(ctx, fs)
	if err != nil {
		return "", fmt.Errorf("failed to detect OS family (set --os-family): %w", err)
	}
	slog.Info("detected OS family",
		"id", rel.ID,
		"family", rel.Family,
		"source", rel.Source)
	return rel.Family, nil
}

// buildArtifacts loads params and overlays, then resolves and renders them.
// fs is used for OS detection only.
func buildArtifacts(ctx context.Context, cmd *cli.Command, fs afero.Fs) (*nagios.Artifacts, error) {
	start := time.Now()

	params, err := loadParams(cmd.String("params"))
	if err != nil {
		return nil, err
	}
	overlays, err := loadOSDefaults(cmd.String("os-defaults"))
	if err != nil {
		return nil, err
	}
	family, err := resolveFamily(ctx, cmd, fs)
	if err != nil {
		return nil, err
	}

	art, err := nagios.BuildWith(*params, family, schema.Nagios(), overlays)
	metrics.ObserveBuild(start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to build configuration: %w", err)
	}

	if unknown := art.Config.Unknown(); len(unknown) > 0 {
		slog.Warn("ignoring unknown parameters", "names", unknown)
	}

	slog.Debug("built configuration",
		"family", art.OSFamily,
		"options", art.Config.Len(),
		"packages", art.Packages,
		"duration", time.Since(start))
	return art, nil
}
