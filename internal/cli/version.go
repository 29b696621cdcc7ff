package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the application version.
// Set at build time with -ldflags "-X github.com/ytget/skeletonne/internal/cli.Version=1.0.0".
var Version = "dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "skeletonne version %s\n", Version)
			return err
		},
	}
}
