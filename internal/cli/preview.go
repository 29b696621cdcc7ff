package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/ytget/skeletonne/internal/preview"
)

func newPreviewCommand(opts *rootOptions) *cobra.Command {
	var (
		scriptPath string
		noColor    bool
	)
	popts := preview.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Paint a layout in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScript(scriptPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			elements, err := buildLayout(s, opts.cfg.ElementDefaults(), opts.logger())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if noColor {
				popts.Renderer = preview.NewRenderer(out, termenv.Ascii)
			} else {
				popts.Renderer = lipgloss.NewRenderer(out)
			}

			if len(elements) == 0 {
				_, err := fmt.Fprintln(out, "(empty layout)")
				return err
			}
			_, err = fmt.Fprintln(out, preview.Render(elements, popts))
			return err
		},
	}

	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "layout script (YAML), - for stdin")
	cmd.Flags().IntVar(&popts.Columns, "columns", preview.DefaultColumns, "preview width in terminal cells")
	cmd.Flags().IntVar(&popts.MaxLines, "max-lines", preview.DefaultMaxLines, "tallest block in terminal lines")
	cmd.Flags().IntVar(&popts.Gap, "gap", preview.DefaultGap, "cells between row members")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")

	return cmd
}
