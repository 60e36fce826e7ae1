package cli

import (
	"github.com/spf13/cobra"

	"github.com/mithrel/linemark/internal/present/format"
)

func newTypesCmd() *cobra.Command {
	var noHeaders bool
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List block types and their templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return format.WriteBlockTypes(cmd.OutOrStdout(), !noHeaders)
		},
	}
	cmd.Flags().BoolVar(&noHeaders, "noheaders", false, "hide column headers")
	return cmd
}
