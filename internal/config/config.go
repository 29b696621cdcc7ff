package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ytget/skeletonne/internal/codegen"
	"github.com/ytget/skeletonne/internal/model"
)

// EnvPrefix is the prefix of environment overrides, e.g. SKELETONNE_EXPORT_FORMAT
const EnvPrefix = "SKELETONNE"

// Config is the command-line configuration
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger"`
	Export   ExportConfig   `mapstructure:"export"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// LoggerConfig configures structured logging
type LoggerConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	ServiceName string `mapstructure:"service_name"`
	LogFile     string `mapstructure:"log_file"`
	MaxSize     int    `mapstructure:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	Compress    bool   `mapstructure:"compress"`
	AddSource   bool   `mapstructure:"add_source"`
}

// ExportConfig configures generated code
type ExportConfig struct {
	ComponentName string `mapstructure:"component_name"`
	Format        string `mapstructure:"format"`
	Highlight     bool   `mapstructure:"highlight"`
	Style         string `mapstructure:"style"`
	Directory     string `mapstructure:"directory"`
}

// DefaultsConfig holds the values of newly added elements
type DefaultsConfig struct {
	Width  string `mapstructure:"width"`
	Height string `mapstructure:"height"`
	Radius string `mapstructure:"radius"`
	Color  string `mapstructure:"color"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "skeletonne")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("export.component_name", codegen.DefaultComponentName)
	v.SetDefault("export.format", string(codegen.FormatReact))
	v.SetDefault("export.highlight", false)
	v.SetDefault("export.style", codegen.DefaultHighlightStyle)
	v.SetDefault("export.directory", ".")

	v.SetDefault("defaults.width", model.DefaultWidth)
	v.SetDefault("defaults.height", model.DefaultHeight)
	v.SetDefault("defaults.radius", string(model.DefaultRadius))
	v.SetDefault("defaults.color", "")
}

// Load reads configuration from path (or ./skeletonne.yaml when path is
// empty) and environment variables. A missing default file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("skeletonne")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated fields
func (c *Config) Validate() error {
	if _, err := codegen.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("invalid export.format: %w", err)
	}
	if !codegen.ValidComponentName(c.Export.ComponentName) {
		return fmt.Errorf("invalid export.component_name: %q", c.Export.ComponentName)
	}
	if _, err := model.ParseRadius(c.Defaults.Radius); err != nil {
		return fmt.Errorf("invalid defaults.radius: %w", err)
	}
	if err := model.ValidateColor(c.Defaults.Color); err != nil {
		return fmt.Errorf("invalid defaults.color: %w", err)
	}
	return nil
}

// ExportOptions returns code generation options
func (c *Config) ExportOptions() codegen.Options {
	format, err := codegen.ParseFormat(c.Export.Format)
	if err != nil {
		format = codegen.FormatReact
	}
	return codegen.Options{Format: format, ComponentName: c.Export.ComponentName}
}

// ElementDefaults returns the template for newly added elements
func (c *Config) ElementDefaults() model.Element {
	e := model.NewElement("", model.OrientationVertical)
	if c.Defaults.Width != "" {
		e.Width = c.Defaults.Width
	}
	if c.Defaults.Height != "" {
		e.Height = c.Defaults.Height
	}
	if r, err := model.ParseRadius(c.Defaults.Radius); err == nil {
		e.BorderRadius = r
	}
	e.Color = c.Defaults.Color
	return e
}
