/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nagcfg/pkg/header"
	"github.com/NVIDIA/nagcfg/pkg/nagios"
	"github.com/NVIDIA/nagcfg/pkg/resolver"
	"github.com/NVIDIA/nagcfg/pkg/serializer"
)

// ValidationReport summarizes a successful resolve.
type ValidationReport struct {
	header.Header `json:",inline" yaml:",inline"`

	OSFamily string `json:"os_family" yaml:"os_family"`
	ConfFile string `json:"conffile" yaml:"conffile"`
	UnitFile string `json:"unit_file" yaml:"unit_file"`

	// Options counts resolved options.
	Options int `json:"options" yaml:"options"`

	// Sources counts resolved options by where their value came from.
	Sources map[resolver.Source]int `json:"sources" yaml:"sources"`

	Packages []string `json:"packages" yaml:"packages"`

	// Unknown lists parameters that are not in the catalog.
	Unknown []string `json:"unknown,omitempty" yaml:"unknown,omitempty"`
}

func newValidationReport(art *nagios.Artifacts) *ValidationReport {
	r := &ValidationReport{
		Header:   header.New(header.KindValidationReport, version),
		OSFamily: art.OSFamily,
		ConfFile: art.ConfFile,
		UnitFile: art.UnitFile,
		Options:  art.Config.Len(),
		Sources:  make(map[resolver.Source]int),
		Packages: art.Packages,
		Unknown:  art.Config.Unknown(),
	}
	for _, name := range art.Config.Catalog().Names() {
		if src, ok := art.Config.Source(name); ok {
			r.Sources[src]++
		}
	}
	return r
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate a parameter file against the option catalog",
		Description: `Resolves the parameter file without rendering or writing anything and
reports how many options were resolved and where their values came from
(user, os or default).

The command fails on the first missing required option or mistyped value,
in catalog order, naming the option.

# Examples

Validate parameters for a Debian host:
  nagcfg validate -p params.yaml --os-family Debian

Write the report as JSON to a file:
  nagcfg validate -p params.json -f RedHat -t json -o report.json`,
		Flags: []cli.Flag{
			paramsFlag(true),
			osFamilyFlag(),
			osDefaultsFlag(),
			formatFlag(serializer.FormatYAML),
			reportFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			art, err := buildArtifacts(ctx, cmd, afero.NewOsFs())
			if err != nil {
				return err
			}

			report := newValidationReport(art)
			slog.Info("parameters are valid",
				"family", report.OSFamily,
				"options", report.Options,
				"unknown", len(report.Unknown))

			return writeReport(ctx, cmd, report)
		},
	}
}
