package commands

import (
	"github.com/spf13/cobra"

	"github.com/xilo-pro/xilo"
	"github.com/xilo-pro/xilo/internal/usecase"
)

func buildCmd() *cobra.Command {
	var (
		dir       string
		publicDir string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the static site to the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := xilo.Build(cmd.Context(), source, out, usecase.BuildInput{
				OutDir:    dir,
				PublicDir: publicDir,
			})
			return result.Error
		},
	}

	cmd.Flags().StringVar(&dir, "out", "", "output directory (default .xilo)")
	cmd.Flags().StringVar(&publicDir, "public", "", "public files directory (default public)")
	return cmd
}
