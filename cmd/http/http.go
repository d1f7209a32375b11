package http

import "github.com/spf13/cobra"

// NewHTTPCommand groups the API server subcommands.
func NewHTTPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Run the clinic API server",
	}

	cmd.AddCommand(NewStartCommand())

	return cmd
}
