package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/generator"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

var completionShells = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for floorplan.

Bash:
  $ source <(floorplan completion bash)

Zsh:
  $ floorplan completion zsh > "${fpath[1]}/_floorplan"

Fish:
  $ floorplan completion fish > ~/.config/fish/completions/floorplan.fish

PowerShell:
  PS> floorplan completion powershell | Out-String | Invoke-Expression

Style, hint and format flags complete to their accepted values.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionShells[args[0]](cmd.Root(), os.Stdout)
		},
	}
}

// completeValues returns a flag completion function offering a fixed list.
func completeValues(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// registerGenerateCompletions wires value completion for the shared generation flags.
func registerGenerateCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("style", completeValues(generator.Styles...))
	_ = cmd.RegisterFlagCompletionFunc("hint", completeValues(
		string(layout.Spine), string(layout.Hub), string(layout.Cluster)))
	_ = cmd.RegisterFlagCompletionFunc("theme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
	})
}

// registerFormatCompletion wires value completion for --format.
func registerFormatCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("format", completeValues(
		pipeline.FormatJSON, pipeline.FormatText, pipeline.FormatPNG, pipeline.FormatSVG))
}
