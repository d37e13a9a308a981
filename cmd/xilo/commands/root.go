package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xilo-pro/xilo/internal/adapters/cli"
	"github.com/xilo-pro/xilo/internal/adapters/logger"
	"github.com/xilo-pro/xilo/internal/config"
)

var (
	configPath string
	addr       string
	debug      bool
	logFormat  string
	noColor    bool

	source *config.FileSource
	out    *cli.Output
)

func Execute() error {
	out = cli.NewOutput()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		out.PrintError("%v", err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "xilo",
		Short:         "Serve and build the Xilo Pro landing page",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = os.Getenv("XILO_CONFIG")
			}
			if noColor || os.Getenv("NO_COLOR") != "" {
				out.DisableColors()
			}
			switch logFormat {
			case "text", "json":
			default:
				return fmt.Errorf("invalid --log-format %q (want text or json)", logFormat)
			}
			source = config.NewFileSource(configPath)
			logger.Setup(logConfig(debug))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default xilo.yaml if present, or $XILO_CONFIG)")
	root.PersistentFlags().StringVar(&addr, "addr", "", "listen address for dev and start (default from config, :3000)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging with source locations")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output (also NO_COLOR)")

	root.AddCommand(initCmd(), devCmd(), buildCmd(), startCmd(), lintCmd(), doctorCmd())
	return root
}

func logConfig(debug bool) logger.Config {
	return logger.Config{Debug: debug, JSON: logFormat == "json"}
}

// outDir resolves the build directory: flag, then config and environment.
func outDir(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	cfg, err := source.Load()
	if err != nil {
		return "", err
	}
	return cfg.Server.OutDir, nil
}
