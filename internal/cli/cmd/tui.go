package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"prettybytes/internal/ui"
)

func newTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "tui",
		Short:         "Convert sizes interactively",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(cmd.OutOrStdout()) || !isTerminal(cmd.InOrStdin()) {
				return &ExitError{Code: ExitCLIError, Err: errors.New("tui needs an interactive terminal")}
			}
			cfg := loadedConfig(cmd)
			if err := ui.Run(cmd.Context(), cfg.Settings); err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			return nil
		},
	}
}
