/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nagcfg/pkg/facts"
	"github.com/NVIDIA/nagcfg/pkg/header"
	"github.com/NVIDIA/nagcfg/pkg/serializer"
)

type releaseReport struct {
	header.Header `json:",inline" yaml:",inline"`
	facts.Release `json:",inline" yaml:",inline"`
}

func factsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "facts",
		EnableShellCompletion: true,
		Usage:                 "Show the OS release and family used when --os-family is not set",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Usage:   "Read os-release below this directory instead of /",
				Sources: cli.EnvVars("NAGCFG_ROOT"),
			},
			formatFlag(serializer.FormatYAML),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			var fs afero.Fs = afero.NewOsFs()
			if root := cmd.String("root"); root != "" {
				fs = afero.NewReadOnlyFs(afero.NewBasePathFs(fs, root))
			}

			rel, err := facts.Detect(ctx, fs)
			if err != nil {
				return err
			}
			return writeReport(ctx, cmd, releaseReport{
				Header:  header.New(header.KindRelease, version),
				Release: *rel,
			})
		},
	}
}
