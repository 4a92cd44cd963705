// Copyright 2026 The GTDash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gtdash/gtdash/internal/config"
	"github.com/gtdash/gtdash/internal/mcpserver"
)

var mcpEncoding string

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running gtdash as an MCP server, exposing the dashboard aggregations as tools to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve [dataset]",
	Short: "Run the MCP server over stdio",
	Long: `Load the dataset once and start an MCP server on stdin/stdout exposing:
  - summary:        case, year, and country totals plus a preview
  - countries:      selectable countries
  - yearly_counts:  attacks per year
  - country_counts: attacks per year for selected countries
  - geo_points:     geolocated incidents, optionally for one year
  - proportions:    region/country/province breakdown
  - dashboard:      the full dashboard document

If the dataset cannot be loaded the server does not start.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(config.Options{
			Dataset:  datasetArg(args),
			Encoding: mcpEncoding,
		})
		if err != nil {
			return err
		}
		table, loadTime, err := loadTable(opts)
		if err != nil {
			return err
		}
		ds := mcpserver.Dataset{
			Path:     opts.Dataset,
			Encoding: opts.Encoding,
			Table:    table,
			LoadTime: loadTime,
		}
		return mcpserver.Run(cmd.Context(), Version, ds, &mcp.StdioTransport{})
	},
}

func init() {
	mcpServeCmd.Flags().StringVar(&mcpEncoding, "encoding", "", "dataset text encoding (default latin-1)")
	mcpCmd.AddCommand(mcpServeCmd)
}
