package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// specExtensions are the file extensions offered when completing a spec
// argument.
var specExtensions = []string{"toml", "json"}

// completeSpecFiles completes the single spec argument of render and
// inspect with TOML and JSON files.
func completeSpecFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return specExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for cartesian.

Bash:
  $ source <(cartesian completion bash)

Zsh:
  $ cartesian completion zsh > "${fpath[1]}/_cartesian"

Fish:
  $ cartesian completion fish > ~/.config/fish/completions/cartesian.fish

PowerShell:
  PS> cartesian completion powershell | Out-String | Invoke-Expression

Spec arguments of render and inspect complete to .toml and .json files.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}
}
