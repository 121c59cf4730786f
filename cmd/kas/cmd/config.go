package cmd

import (
	"fmt"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved project configuration",
		Long: `Print the configuration kas would use in the current project: values
from kas.yaml or kas.toml (kas.yaml wins when both exist) with defaults
filled in. The default window title is the last element of the module path
in go.mod.`,
		Usage: "kas config",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("config takes no arguments")
	}
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	source := cfg.Source
	if source == "" {
		source = "(defaults)"
	}
	module := cfg.ModulePath
	if module == "" {
		module = "(none)"
	}
	d := cfg.Dimensions

	rows := []struct {
		key   string
		value any
	}{
		{"root", cfg.Root},
		{"source", source},
		{"module", module},
		{"window.title", cfg.Title},
		{"window.size", cfg.Size},
		{"window.enforce_min", cfg.EnforceMin},
		{"window.enforce_max", cfg.EnforceMax},
		{"theme.metrics", cfg.Metrics},
		{"theme.margin", d.Margin},
		{"theme.inner_margin", d.InnerMargin},
		{"theme.frame", d.Frame},
		{"theme.font_scale", d.FontScale},
		{"log.verbose", cfg.Verbose},
	}
	for _, r := range rows {
		fmt.Fprintf(stdout, "%-20s %v\n", r.key, r.value)
	}
	return nil
}
