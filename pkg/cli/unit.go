/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nagcfg/pkg/defaults"
	"github.com/NVIDIA/nagcfg/pkg/schema"
	"github.com/NVIDIA/nagcfg/pkg/unit"
)

func unitCmd() *cli.Command {
	return &cli.Command{
		Name:                  "unit",
		EnableShellCompletion: true,
		Usage:                 "Render the nagios systemd unit from explicit paths",
		Description: `Renders nagios.service without a parameter file. Paths that are not set
fall back to the defaults of --os-family (RedHat when not set).

# Examples

Render the RedHat unit:
  nagcfg unit

Render a unit with a custom pid file:
  nagcfg unit --pid-file /run/nagios/nagios.pid

Render the Debian unit running as a different user:
  nagcfg unit --os-family Debian --user monitor --group monitor`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "os-family",
				Aliases: []string{"f"},
				Value:   schema.FamilyRedHat,
				Usage:   "OS family whose default paths fill unset flags",
				Sources: cli.EnvVars("NAGCFG_OS_FAMILY"),
			},
			&cli.StringFlag{
				Name:    "binary",
				Usage:   "Nagios daemon executable",
				Sources: cli.EnvVars("NAGCFG_BINARY"),
			},
			&cli.StringFlag{
				Name:    "config-file",
				Usage:   "Main configuration file passed to the daemon",
				Sources: cli.EnvVars("NAGCFG_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "pid-file",
				Usage:   "Daemon lock file (PIDFile=)",
				Sources: cli.EnvVars("NAGCFG_PID_FILE"),
			},
			&cli.StringFlag{
				Name:    "cmd-file",
				Usage:   "External command pipe removed after stop",
				Sources: cli.EnvVars("NAGCFG_CMD_FILE"),
			},
			&cli.StringFlag{
				Name:    "user",
				Value:   unit.DefaultUser,
				Usage:   "User running the daemon",
				Sources: cli.EnvVars("NAGCFG_USER"),
			},
			&cli.StringFlag{
				Name:    "group",
				Value:   unit.DefaultGroup,
				Usage:   "Group running the daemon",
				Sources: cli.EnvVars("NAGCFG_GROUP"),
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			spec := unitSpecFromCmd(cmd)

			text, err := unit.Render(spec)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(stdout(cmd), text); err != nil {
				return fmt.Errorf("failed to write unit: %w", err)
			}
			return nil
		},
	}
}

// unitSpecFromCmd fills unset path flags from the family defaults.
func unitSpecFromCmd(cmd *cli.Command) unit.Spec {
	family := cmd.String("os-family")
	fam, _ := defaults.ForFamily(family)
	overlay := schema.NagiosOSDefaults().For(family)

	return unit.Spec{
		Binary:     firstSet(cmd.String("binary"), fam.Binary),
		ConfigFile: firstSet(cmd.String("config-file"), fam.ConfFile),
		PIDFile:    firstSet(cmd.String("pid-file"), stringValue(overlay["lock_file"])),
		CmdFile:    firstSet(cmd.String("cmd-file"), stringValue(overlay["command_file"])),
		User:       cmd.String("user"),
		Group:      cmd.String("group"),
	}
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
