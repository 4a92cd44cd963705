// Copyright 2026 The GTDash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMCPCmd_IsRegistered(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "mcp" {
			found = true
			break
		}
	}
	assert.True(t, found, "mcp command should be registered on rootCmd")
}

func TestMCPServeCmd_IsRegistered(t *testing.T) {
	found := false
	for _, cmd := range mcpCmd.Commands() {
		if cmd.Name() == "serve" {
			found = true
			break
		}
	}
	assert.True(t, found, "serve command should be registered on mcpCmd")
}

func TestMCPServeCmd_AcceptsOneDataset(t *testing.T) {
	assert.NoError(t, mcpServeCmd.Args(mcpServeCmd, []string{"gtd.csv"}))
	assert.Error(t, mcpServeCmd.Args(mcpServeCmd, []string{"a.csv", "b.csv"}))
}

func TestMCPServeCmd_RefusesToStartWithoutDataset(t *testing.T) {
	resetFlags()
	setupWorkspace(t)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"mcp", "serve", "missing.csv", "-q"})
	requireExitCode(t, cmd.Execute(), ExitLoadFailure)
}
