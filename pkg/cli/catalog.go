/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nagcfg/pkg/render"
	"github.com/NVIDIA/nagcfg/pkg/schema"
	"github.com/NVIDIA/nagcfg/pkg/serializer"
)

// CatalogEntry is one option as listed by the catalog command.
type CatalogEntry struct {
	Name      string   `json:"name" yaml:"name"`
	Kind      string   `json:"kind" yaml:"kind"`
	Required  bool     `json:"required" yaml:"required"`
	Default   any      `json:"default,omitempty" yaml:"default,omitempty"`
	OSDefault any      `json:"os_default,omitempty" yaml:"os_default,omitempty"`
	Allowed   []string `json:"allowed,omitempty" yaml:"allowed,omitempty"`
}

func catalogEntries(c *schema.Catalog, overlay map[string]any) []CatalogEntry {
	entries := make([]CatalogEntry, 0, c.Len())
	for _, o := range c.Options() {
		entries = append(entries, CatalogEntry{
			Name:      o.Name,
			Kind:      o.Kind.String(),
			Required:  o.Required,
			Default:   o.Default,
			OSDefault: overlay[o.Name],
			Allowed:   o.Allowed,
		})
	}
	return entries
}

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:                  "catalog",
		EnableShellCompletion: true,
		Usage:                 "List the nagios.cfg options with their kinds and defaults",
		Description: `Lists every option of the catalog in render order. With --os-family the
family default is shown next to the catalog default.

# Examples

List options as a table:
  nagcfg catalog

Show Debian defaults as YAML:
  nagcfg catalog --os-family Debian --format yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "os-family",
				Aliases: []string{"f"},
				Usage:   "OS family whose defaults are listed next to the catalog defaults",
				Sources: cli.EnvVars("NAGCFG_OS_FAMILY"),
			},
			osDefaultsFlag(),
			formatFlag(serializer.FormatTable),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			overlays, err := loadOSDefaults(cmd.String("os-defaults"))
			if err != nil {
				return err
			}
			entries := catalogEntries(schema.Nagios(), overlays.For(cmd.String("os-family")))

			if outFormat == serializer.FormatTable {
				return writeCatalogTable(stdout(cmd), entries)
			}
			return serializer.NewWriter(outFormat, stdout(cmd)).Serialize(ctx, entries)
		},
	}
}

func writeCatalogTable(w io.Writer, entries []CatalogEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tREQUIRED\tDEFAULT\tOS DEFAULT")
	for _, e := range entries {
		kind := e.Kind
		if len(e.Allowed) > 0 {
			kind = fmt.Sprintf("%s(%s)", e.Kind, strings.Join(e.Allowed, "|"))
		}
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\n",
			e.Name, kind, e.Required, tableValue(e.Default), tableValue(e.OSDefault))
	}
	return tw.Flush()
}

func tableValue(v any) string {
	if v == nil {
		return "-"
	}
	return render.FormatValue(v)
}
