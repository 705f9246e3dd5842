package cmd

import (
	"github.com/spf13/cobra"

	"prettybytes/internal/config"
	"prettybytes/internal/util/format"
)

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "units",
		Short:         "List the decimal and binary unit ladders",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadedConfig(cmd)
			w := cmd.OutOrStdout()

			var err error
			switch cfg.Output {
			case config.OutputJSON:
				err = format.LaddersJSON(w)
			case config.OutputText:
				err = format.LaddersText(w)
			default:
				err = format.LaddersTable(w, isTerminal(w))
			}
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			return nil
		},
	}
}
