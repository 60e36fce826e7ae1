package cli

import (
	"github.com/spf13/cobra"

	"github.com/mithrel/linemark/internal/render"
	"github.com/mithrel/linemark/internal/util"
	"github.com/mithrel/linemark/pkg/api"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
	}
	gen := &cobra.Command{
		Use:   "generate",
		Short: "Print a completion script for a shell",
	}
	gen.AddCommand(&cobra.Command{
		Use:   "bash",
		Short: "Generate Bash completions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
		},
	})
	gen.AddCommand(&cobra.Command{
		Use:   "zsh",
		Short: "Generate Zsh completions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
		},
	})
	gen.AddCommand(&cobra.Command{
		Use:   "fish",
		Short: "Generate Fish completions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	})
	cmd.AddCommand(gen)
	return cmd
}

func completeBlockTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	all := api.AllBlockTypes()
	out := make([]string, 0, len(all))
	for _, t := range all {
		out = append(out, string(t))
	}
	return util.ScoreCompletions(toComplete, out, 0), cobra.ShellCompDirectiveNoFileComp
}

func completeStyles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return util.ScoreCompletions(toComplete, render.Styles, 0), cobra.ShellCompDirectiveNoFileComp
}
