package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gtdash/gtdash/internal/config"
)

// Config command flags.
var configGlobal bool

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify gtdash configuration",
	Long: `View and modify gtdash configuration.

gtdash reads .gtdash.yaml (or .gtdash.toml) from the working directory.
A global config at ~/.config/gtdash/config.yaml provides defaults.
Project settings override global settings; flags override both.

Note: config set rewrites .gtdash.yaml and will not preserve comments.`,
}

// configGetCmd prints one configuration value.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value. Without --global the project and global
configs are merged, project first.

Examples:
  gtdash config get format
  gtdash config get countries
  gtdash config get --global dataset`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write it back to .gtdash.yaml in the
current directory. Use --global to write ~/.config/gtdash/config.yaml.
List keys (sections, countries) take a comma-separated value. An empty
value clears the key.

Examples:
  gtdash config set format json
  gtdash config set countries "Iraq,Peru"
  gtdash config set top_provinces 8
  gtdash config set --global dataset /data/gtd.csv`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configListCmd lists every configured value with its source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long: `List every configured value, annotated with whether it comes from
the project config or the global config (~/.config/gtdash/config.yaml).`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

func init() {
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "use global config (~/.config/gtdash/config.yaml)")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "write to global config (~/.config/gtdash/config.yaml)")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if err := config.ValidateKey(key); err != nil {
		return exitError(ExitInvalidArgs, "gtdash: %v", err)
	}

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return exitError(ExitInvalidArgs, "gtdash: loading global config (%v)", err)
	}
	cfg := globalCfg
	if !configGlobal {
		repoCfg, err := config.Load(".")
		if err != nil {
			return exitError(ExitInvalidArgs, "gtdash: loading project config (%v)", err)
		}
		cfg = config.Overlay(globalCfg, repoCfg)
	}

	val, err := config.GetValue(cfg, key)
	if err != nil {
		return exitError(ExitInvalidArgs, "gtdash: %v", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatValue(val))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]
	if err := config.ValidateKey(key); err != nil {
		return exitError(ExitInvalidArgs, "gtdash: %v", err)
	}

	targetPath := filepath.Join(".", config.FileName)
	load := func() (*config.Config, error) { return config.Load(".") }
	if configGlobal {
		targetPath = config.GlobalConfigPath()
		load = config.LoadGlobal
	}

	cfg, err := load()
	if err != nil {
		return exitError(ExitInvalidArgs, "gtdash: loading config file (%v)", err)
	}
	if err := config.SetValue(cfg, key, raw); err != nil {
		return exitError(ExitInvalidArgs, "gtdash: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		return exitError(ExitInvalidArgs, "gtdash: %v", err)
	}
	if err := config.WriteFile(targetPath, cfg); err != nil {
		return exitError(ExitInvalidArgs, "gtdash: writing config (%v)", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, raw)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return exitError(ExitInvalidArgs, "gtdash: loading global config (%v)", err)
	}
	repoCfg, err := config.Load(".")
	if err != nil {
		return exitError(ExitInvalidArgs, "gtdash: loading project config (%v)", err)
	}

	type entry struct {
		value  any
		source string
	}
	seen := make(map[string]entry)
	for k, v := range config.Flatten(globalCfg) {
		seen[k] = entry{value: v, source: "global"}
	}
	for k, v := range config.Flatten(repoCfg) {
		seen[k] = entry{value: v, source: "repo"}
	}

	if len(seen) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		_, _ = fmt.Fprintln(w, "Run 'gtdash config set <key> <value>' to set values.")
		return nil
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	globalColor := color.New(color.FgCyan)
	repoColor := color.New(color.FgGreen)
	for _, k := range keys {
		e := seen[k]
		_, _ = fmt.Fprintf(w, "%s = %s %s\n", k, formatValue(e.value), formatSource(e.source, globalColor, repoColor))
	}
	return nil
}

// formatValue prints list values in the comma-separated form config set
// accepts.
func formatValue(v any) string {
	if list, ok := v.([]string); ok {
		return strings.Join(list, ",")
	}
	return fmt.Sprint(v)
}

// formatSource returns a colorized source annotation.
func formatSource(source string, globalColor, repoColor *color.Color) string {
	switch source {
	case "global":
		return globalColor.Sprint("(global)")
	case "repo":
		return repoColor.Sprint("(repo)")
	default:
		return fmt.Sprintf("(%s)", source)
	}
}
