package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/edt-labs/edt/internal/mcpserver"
)

func newMCPCommand(getConfig func() *Config) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the documentation index over MCP on stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = getConfig().DocsDir
			}

			srv, err := mcpserver.NewServerForDirectory(dir)
			if err != nil {
				return err
			}

			slog.Info("serving MCP on stdio", "dir", dir)
			return srv.Serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Source directory to index before serving")

	return cmd
}
