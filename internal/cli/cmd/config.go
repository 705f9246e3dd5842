package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"prettybytes/internal/config"
	"prettybytes/internal/prettybytes"
)

// effective is the JSON shape printed by `config -o json`.
type effective struct {
	File string `json:"file,omitempty"`
	prettybytes.Settings
	Output   string `json:"output"`
	LogLevel string `json:"log_level"`
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "config",
		Short:         "Show the effective configuration and where it came from",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadedConfig(cmd)
			out := cmd.OutOrStdout()

			if cfg.Output == config.OutputJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(effective{
					File:     cfg.File,
					Settings: cfg.Settings,
					Output:   cfg.Output,
					LogLevel: cfg.LogLevel,
				})
			}

			file := cfg.File
			if file == "" {
				file = "(none)"
			}
			lo, hi := cfg.Conversion.UnitRange()
			fmt.Fprintf(out, "Config file: %s\n", file)
			fmt.Fprintf(out, "System:      %s\n", cfg.Conversion.System())
			fmt.Fprintf(out, "Precision:   %d\n", cfg.Conversion.Precision())
			fmt.Fprintf(out, "Units:       %s..%s\n", lo, hi)
			fmt.Fprintf(out, "Signed:      %t\n", cfg.Conversion.Signed())
			fmt.Fprintf(out, "Output:      %s\n", cfg.Output)
			fmt.Fprintf(out, "Log level:   %s\n", cfg.LogLevel)
			return nil
		},
	}
}
