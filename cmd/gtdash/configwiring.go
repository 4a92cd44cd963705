package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gtdash/gtdash/internal/config"
	"github.com/gtdash/gtdash/internal/incident"
)

// resolveOptions layers the CLI values over the project config in the
// working directory and the global config, then validates the result.
// Errors are returned as ExitInvalidArgs.
func resolveOptions(cli config.Options) (config.Options, error) {
	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return config.Options{}, exitError(ExitInvalidArgs, "gtdash: failed to load %s (%v)", config.GlobalConfigPath(), err)
	}
	fileCfg, err := config.Load(".")
	if err != nil {
		return config.Options{}, exitError(ExitInvalidArgs, "gtdash: failed to load config (%v)", err)
	}
	if err := config.Validate(fileCfg); err != nil {
		return config.Options{}, exitError(ExitInvalidArgs, "gtdash: %v", err)
	}

	opts := config.Merge(globalCfg, fileCfg, cli)
	if err := config.ValidateOptions(opts); err != nil {
		return config.Options{}, exitError(ExitInvalidArgs, "gtdash: %v", err)
	}
	return opts, nil
}

// loadTable loads the dataset named by opts. A directory path is
// ExitInvalidArgs; any load error is ExitLoadFailure.
func loadTable(opts config.Options) (*incident.Table, time.Duration, error) {
	if info, err := cmdFS.Stat(opts.Dataset); err == nil && info.IsDir() {
		return nil, 0, exitError(ExitInvalidArgs, "gtdash: %q is a directory, not a dataset file", opts.Dataset)
	}

	start := time.Now()
	table, err := incident.Load(opts.Dataset, opts.Encoding)
	if err != nil {
		return nil, 0, exitError(ExitLoadFailure, "gtdash: cannot load dataset (%v)", err)
	}
	elapsed := time.Since(start)
	slog.Info("dataset loaded", "path", opts.Dataset, "encoding", opts.Encoding, "records", table.Len(), "duration", elapsed.Round(time.Millisecond))
	return table, elapsed, nil
}

// splitList splits a comma-separated flag value, trimming blanks and
// dropping empty entries.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// datasetArg returns the optional positional dataset argument.
func datasetArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
