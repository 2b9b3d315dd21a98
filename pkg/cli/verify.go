/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nagcfg/pkg/bundle"
)

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:                  "verify",
		EnableShellCompletion: true,
		Usage:                 "Verify a rendered bundle against its checksums",
		Description: fmt.Sprintf(`Recomputes the SHA-256 digest of every file listed in %s and
fails on the first missing or modified file.

# Examples

  nagcfg render -p params.yaml --output ./out
  nagcfg verify --dir ./out`, bundle.ChecksumFileName),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dir",
				Aliases:  []string{"d"},
				Required: true,
				Usage:    "Bundle directory",
				Sources:  cli.EnvVars("NAGCFG_OUTPUT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.String("dir")
			if err := bundle.Verify(ctx, afero.NewReadOnlyFs(afero.NewOsFs()), dir); err != nil {
				return fmt.Errorf("bundle %s failed verification: %w", dir, err)
			}

			slog.Info("bundle verified", "dir", dir)
			fmt.Fprintf(stdout(cmd), "Bundle %s is intact.\n", dir)
			return nil
		},
	}
}
