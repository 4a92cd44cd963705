// Copyright 2026 The GTDash Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the dashboard aggregations as tools over stdio transport.
package mcpserver

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gtdash/gtdash/internal/incident"
)

// Dataset is the loaded table the server answers from, plus where it came
// from. It is loaded once and shared read-only by every tool call.
type Dataset struct {
	Path     string
	Encoding string
	Table    *incident.Table
	LoadTime time.Duration
}

// New creates a new MCP server with gtdash's tools registered.
func New(version string, ds Dataset) (*mcp.Server, error) {
	if ds.Table == nil {
		return nil, errors.New("mcpserver: dataset not loaded")
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "gtdash",
		Title:   "GTDash: Global Terrorism Database dashboard",
		Version: version,
	}, nil)

	t := &tools{ds: ds}
	t.register(server)
	return server, nil
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, ds Dataset, transport mcp.Transport) error {
	server, err := New(version, ds)
	if err != nil {
		return err
	}
	return server.Run(ctx, transport)
}
