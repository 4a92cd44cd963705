// Copyright 2026 The GTDash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// testCSV is a small latin-1 encoded dataset. The \xf4 byte is "ô" in
// ISO-8859-1 and invalid on its own in UTF-8.
const testCSV = "eventid,iyear,country_txt,region_txt,provstate,city,latitude,longitude,success\n" +
	"1,1990,USA,North America,Texas,Austin,30.2,-97.7,1\n" +
	"2,1990,USA,North America,Texas,Dallas,,,0\n" +
	"3,1991,France,Western Europe,Corsica,Ajaccio,41.9,8.7,1\n" +
	"4,1992,C\xf4te d'Ivoire,Sub-Saharan Africa,Abidjan,Abidjan,5.3,-4.0,1\n"

// setupWorkspace isolates a test from any real config: it moves into an
// empty temp directory, points XDG_CONFIG_HOME at another, and writes the
// test dataset to data/terrorism.csv (the default dataset path). It returns
// the workspace directory.
func setupWorkspace(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(dir)

	writeTestFile(t, dir, "data/terrorism.csv", testCSV)
	return dir
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// newTestCmd redirects the shared rootCmd output into buffers.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// resetFlags resets every package-level flag to its default value.
func resetFlags() {
	for _, cmd := range []*cobra.Command{reportCmd, countriesCmd, mcpServeCmd, versionCmd, configGetCmd, configSetCmd, configListCmd} {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
	}
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})
	if h := rootCmd.Flags().Lookup("help"); h != nil {
		_ = h.Value.Set("false")
	}
}
