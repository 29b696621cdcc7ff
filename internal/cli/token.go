package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/skeletonne/internal/tokens"
)

func newTokenCommand() *cobra.Command {
	var axis string

	cmd := &cobra.Command{
		Use:   "token <value>...",
		Short: "Print the utility class for dimension values",
		Example: `  skeletonne token 50% 24px
  skeletonne token --axis height 48px`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := tokens.ParseAxis(axis)
			if err != nil {
				return err
			}
			for _, value := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), tokens.Class(value, a)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&axis, "axis", "a", "width", "dimension axis: width or height")
	return cmd
}
