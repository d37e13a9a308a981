package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/xilo-pro/xilo"
	"github.com/xilo-pro/xilo/internal/adapters/logger"
)

func startCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Serve a built site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			buildDir, err := outDir(dir)
			if err != nil {
				return err
			}

			app, err := xilo.New(
				xilo.WithMode(xilo.ModeProd),
				xilo.WithSource(source),
				xilo.WithArtifactFS(os.DirFS(buildDir)),
				xilo.WithLogger(logger.L()),
			)
			if err != nil {
				return err
			}
			defer app.Stop()

			return app.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&dir, "out", "", "build directory to serve (default .xilo)")
	return cmd
}
