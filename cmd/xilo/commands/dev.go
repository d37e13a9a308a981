package commands

import (
	"github.com/spf13/cobra"

	"github.com/xilo-pro/xilo"
	"github.com/xilo-pro/xilo/internal/adapters/logger"
)

func devCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dev",
		Short: "Serve the site with live rendering and reload on change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.Setup(logConfig(true))

			app, err := xilo.New(
				xilo.WithMode(xilo.ModeDev),
				xilo.WithSource(source),
				xilo.WithLogger(log),
			)
			if err != nil {
				return err
			}
			defer app.Stop()

			listen := addr
			if listen == "" {
				listen = app.Config().Server.Addr
			}
			out.PrintHeader("Xilo Dev")
			out.PrintSuccess("Serving on %s", listen)

			return app.ListenAndServe(cmd.Context(), listen)
		},
	}
}
