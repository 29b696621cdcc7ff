package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/skeletonne/internal/codegen"
	"github.com/ytget/skeletonne/internal/model"
	"github.com/ytget/skeletonne/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDefaultWidth  = "default_width"
	KeyDefaultHeight = "default_height"
	KeyDefaultRadius = "default_radius"
	KeyDefaultColor  = "default_color"
	KeyComponentName = "component_name"
	KeyExportFormat  = "export_format"
	KeyExportDir     = "export_directory"
	KeyLanguage      = "app_language"
)

// Default values
const (
	DefaultExportFormat = codegen.FormatReact
	DefaultLanguage     = "system"
)

// Settings manages playground configuration stored in fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDefaultWidth returns the width given to newly added elements
func (s *Settings) GetDefaultWidth() string {
	return s.app.Preferences().StringWithFallback(KeyDefaultWidth, model.DefaultWidth)
}

// SetDefaultWidth sets the width given to newly added elements
func (s *Settings) SetDefaultWidth(width string) {
	if width == "" {
		width = model.DefaultWidth
	}
	s.app.Preferences().SetString(KeyDefaultWidth, width)
}

// GetDefaultHeight returns the height given to newly added elements
func (s *Settings) GetDefaultHeight() string {
	return s.app.Preferences().StringWithFallback(KeyDefaultHeight, model.DefaultHeight)
}

// SetDefaultHeight sets the height given to newly added elements
func (s *Settings) SetDefaultHeight(height string) {
	if height == "" {
		height = model.DefaultHeight
	}
	s.app.Preferences().SetString(KeyDefaultHeight, height)
}

// GetDefaultRadius returns the border radius given to newly added elements
func (s *Settings) GetDefaultRadius() model.Radius {
	r := model.Radius(s.app.Preferences().String(KeyDefaultRadius))
	if !r.IsValid() {
		return model.DefaultRadius
	}
	return r
}

// SetDefaultRadius sets the default border radius; unknown tokens are ignored
func (s *Settings) SetDefaultRadius(r model.Radius) {
	if !r.IsValid() {
		return
	}
	s.app.Preferences().SetString(KeyDefaultRadius, string(r))
}

// GetDefaultColor returns the default block color, empty for theme default
func (s *Settings) GetDefaultColor() string {
	return s.app.Preferences().String(KeyDefaultColor)
}

// SetDefaultColor sets the default block color
func (s *Settings) SetDefaultColor(color string) {
	s.app.Preferences().SetString(KeyDefaultColor, color)
}

// ElementDefaults returns the element template used by add operations
func (s *Settings) ElementDefaults() model.Element {
	e := model.NewElement("", model.OrientationVertical)
	e.Width = s.GetDefaultWidth()
	e.Height = s.GetDefaultHeight()
	e.BorderRadius = s.GetDefaultRadius()
	e.Color = s.GetDefaultColor()
	return e
}

// GetComponentName returns the exported component name
func (s *Settings) GetComponentName() string {
	name := s.app.Preferences().String(KeyComponentName)
	if !codegen.ValidComponentName(name) {
		return codegen.DefaultComponentName
	}
	return name
}

// SetComponentName sets the exported component name; invalid names reset it
func (s *Settings) SetComponentName(name string) {
	if !codegen.ValidComponentName(name) {
		name = codegen.DefaultComponentName
	}
	s.app.Preferences().SetString(KeyComponentName, name)
}

// GetExportFormat returns the configured export format
func (s *Settings) GetExportFormat() codegen.Format {
	f, err := codegen.ParseFormat(s.app.Preferences().String(KeyExportFormat))
	if err != nil {
		return DefaultExportFormat
	}
	return f
}

// SetExportFormat sets the export format
func (s *Settings) SetExportFormat(f codegen.Format) {
	s.app.Preferences().SetString(KeyExportFormat, string(f))
}

// GetExportOptions returns code generation options from the settings
func (s *Settings) GetExportOptions() codegen.Options {
	return codegen.Options{
		Format:        s.GetExportFormat(),
		ComponentName: s.GetComponentName(),
	}
}

// GetExportDirectory returns the directory exported files are written to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = platform.FallbackExportDir
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRadiusOptions returns the selectable radius tokens
func (s *Settings) GetRadiusOptions() []model.Radius {
	return model.RadiusScale()
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
