package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `To load completions:

Bash:
	source <(prettybytes completion bash)

Zsh:
	prettybytes completion zsh > "${fpath[1]}/_prettybytes"

Fish:
	prettybytes completion fish | source

PowerShell:
	prettybytes completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		// Completion scripts do not depend on the configuration.
		PersistentPreRun: func(*cobra.Command, []string) {},
		ValidArgs:        []string{"bash", "zsh", "fish", "powershell"},
		Args:             cobra.ExactValidArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("unsupported shell %q", args[0])}
			}
		},
	}
	return cmd
}
