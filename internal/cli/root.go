package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ytget/skeletonne/internal/config"
	"github.com/ytget/skeletonne/internal/layout"
	"github.com/ytget/skeletonne/internal/model"
	"github.com/ytget/skeletonne/internal/observability"
	"github.com/ytget/skeletonne/internal/script"
	"github.com/ytget/skeletonne/internal/state"
)

// flagKeys maps command flags onto configuration keys, so a flag set on the
// command line overrides the config file and environment.
var flagKeys = map[string]string{
	"format":    "export.format",
	"component": "export.component_name",
	"highlight": "export.highlight",
	"style":     "export.style",
	"dir":       "export.directory",
	"log-level": "logger.level",
}

// rootOptions is shared by every subcommand of one root command
type rootOptions struct {
	configFile string
	cfg        *config.Config
}

func (o *rootOptions) logger() *zap.Logger {
	return observability.GetLogger()
}

// NewRootCommand creates a fresh command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "skeletonne",
		Short:         "Skeletonne builds skeleton loader layouts and exports them as code.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}

			cfg, err := config.Load(v, opts.configFile)
			if err != nil {
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "skeletonne"})
				return err
			}
			opts.cfg = cfg

			observability.InitializeLogger(cfg.Logger)
			observability.GetLogger().Debug("Starting skeletonne",
				zap.String("version", Version),
				zap.String("command", cmd.Name()),
			)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file (default is ./skeletonne.yaml)")
	cmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	cmd.AddCommand(
		newExportCommand(opts),
		newPreviewCommand(opts),
		newTokenCommand(),
		newVersionCommand(),
	)
	return cmd
}

// Execute runs the command line and reports failures on stderr
func Execute(ctx context.Context) error {
	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		observability.GetLogger().Debug("Command execution failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	observability.Sync()
	return err
}

// bindFlags binds the known flags present on fs
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// loadScript reads a script from path, "-" for stdin, or returns an empty
// script that starts from the default stack
func loadScript(path string, stdin io.Reader) (*script.Script, error) {
	switch path {
	case "":
		return &script.Script{}, nil
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read script from stdin: %w", err)
		}
		return script.Parse(data)
	default:
		return script.Load(path)
	}
}

// buildLayout replays s over a fresh store with deterministic ids
func buildLayout(s *script.Script, defaults model.Element, logger *zap.Logger) ([]model.Element, error) {
	ids := layout.NewSequenceGenerator()
	policy := layout.NewPolicy(ids)
	policy.Defaults = defaults

	store := state.NewStore(policy, s.Initial(ids), logger.Named("state"))
	elements, err := s.Run(store)
	if err != nil {
		return nil, err
	}

	logger.Debug("Layout built",
		zap.Int("steps", len(s.Steps)),
		zap.Int("elements", len(elements)),
		zap.Int("units", len(layout.Group(elements))),
	)
	return elements, nil
}
