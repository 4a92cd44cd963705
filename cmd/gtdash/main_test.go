package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionDefault(t *testing.T) {
	if Version != "dev" {
		t.Errorf("default Version = %q, want %q", Version, "dev")
	}
}

func TestVersionSubcommand(t *testing.T) {
	resetFlags()
	old := Version
	Version = "v0.1.0-test"
	t.Cleanup(func() { Version = old })

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "gtdash v0.1.0-test\n", stdout.String())
}

func TestVersionSubcommand_RejectsArgs(t *testing.T) {
	assert.Error(t, versionCmd.Args(versionCmd, []string{"extra"}))
}

func TestExitError(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{ExitRenderFailure, "gtdash: rendering failed"},
		{ExitLoadFailure, "gtdash: dataset could not be loaded"},
		{ExitInvalidArgs, "gtdash: error"},
	}
	for _, tt := range tests {
		err := exitError(tt.code, "")
		assert.Equal(t, tt.code, err.ExitCode())
		assert.Equal(t, tt.want, err.Error())
	}

	err := exitError(ExitLoadFailure, "gtdash: %s", "boom")
	assert.Equal(t, "gtdash: boom", err.Error())
}
