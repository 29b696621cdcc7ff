package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/skeletonne/internal/codegen"
	"github.com/ytget/skeletonne/internal/export"
	"github.com/ytget/skeletonne/internal/platform"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var (
		scriptPath string
		outFile    string
		save       bool
		reveal     bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate skeleton loader code for a layout",
		Long: `Builds a layout from a script (or the default three-bar stack) and prints
the generated React or HTML code. Use --out to write a file, or --save to write
<dir>/<Component>.<tsx|html> into the configured export directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			logger := opts.logger()

			s, err := loadScript(scriptPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			elements, err := buildLayout(s, cfg.ElementDefaults(), logger)
			if err != nil {
				return err
			}

			genOpts := s.Options(cfg.ExportOptions())
			flagOpts := cfg.ExportOptions()
			if cmd.Flags().Changed("format") {
				genOpts.Format = flagOpts.Format
			}
			if cmd.Flags().Changed("component") {
				genOpts.ComponentName = flagOpts.ComponentName
			}

			service := export.NewService(cfg.Export.Directory, logger.Named("export"))
			out := cmd.OutOrStdout()

			switch {
			case save:
				task, err := service.Export(elements, genOpts)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, task.OutputPath)
				if reveal {
					if err := platform.OpenFileInManager(task.OutputPath); err != nil {
						logger.Warn("Failed to reveal exported file", zap.String("path", task.OutputPath), zap.Error(err))
					}
				}
				return nil

			case outFile != "":
				code, err := service.Code(elements, genOpts)
				if err != nil {
					return err
				}
				path, err := platform.WriteExportFile(filepath.Dir(outFile), filepath.Base(outFile), []byte(code))
				if err != nil {
					return fmt.Errorf("failed to write %s: %w", outFile, err)
				}
				logger.Info("Wrote skeleton code", zap.String("path", path), zap.Int("bytes", len(code)))
				return nil

			default:
				code, err := service.Code(elements, genOpts)
				if err != nil {
					return err
				}
				if cfg.Export.Highlight {
					code = codegen.Highlight(code, genOpts.Normalized().Format, cfg.Export.Style)
				}
				_, err = fmt.Fprint(out, code)
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "layout script (YAML), - for stdin")
	cmd.Flags().StringP("format", "f", "", "output format: react or html")
	cmd.Flags().StringP("component", "n", "", "component name")
	cmd.Flags().Bool("highlight", false, "colorize printed code")
	cmd.Flags().String("style", "", "highlight style (chroma style name)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the code to this file")
	cmd.Flags().BoolVar(&save, "save", false, "write <Component>.<ext> into the export directory")
	cmd.Flags().String("dir", "", "export directory used by --save")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "show the saved file in the file manager")

	return cmd
}
