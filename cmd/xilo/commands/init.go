package commands

import (
	"github.com/spf13/cobra"

	"github.com/xilo-pro/xilo/internal/adapters/fs"
	"github.com/xilo-pro/xilo/internal/usecase"
)

func initCmd() *cobra.Command {
	var input usecase.InitInput

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create xilo.yaml, public/ and .gitignore in a project directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.ProjectDir = "."
			if len(args) == 1 {
				input.ProjectDir = args[0]
			}
			return usecase.NewInitService(fs.NewOSFileSystem(), out).InitProject(input).Error
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "site title (default derived from the directory name)")
	cmd.Flags().StringVar(&input.Description, "description", "", "meta description (default \"<title> - soon...\")")
	cmd.Flags().StringVar(&input.Message, "message", "", "home page message (default the description)")
	return cmd
}
