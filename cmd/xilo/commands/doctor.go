package commands

import (
	"github.com/spf13/cobra"

	"github.com/xilo-pro/xilo"
)

func doctorCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Verify a build directory against its manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			buildDir, err := outDir(dir)
			if err != nil {
				return err
			}
			return xilo.Doctor(cmd.Context(), out, buildDir).Error
		},
	}

	cmd.Flags().StringVar(&dir, "out", "", "build directory to check (default .xilo)")
	return cmd
}
