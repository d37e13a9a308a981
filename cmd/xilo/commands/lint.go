package commands

import (
	"github.com/spf13/cobra"

	"github.com/xilo-pro/xilo"
)

func lintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [stylesheet...]",
		Short: "Check the config and the theme stylesheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return xilo.Lint(cmd.Context(), source, out, args).Error
		},
	}
}
