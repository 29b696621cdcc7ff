package ui

import (
	"errors"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ytget/skeletonne/internal/codegen"
	"github.com/ytget/skeletonne/internal/config"
	"github.com/ytget/skeletonne/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	widthEntry      *widget.Entry
	heightEntry     *widget.Entry
	radiusSelect    *widget.Select
	colorEntry      *widget.Entry
	componentEntry  *widget.Entry
	formatSelect    *widget.Select
	exportDirEntry  *widget.Entry
	languageSelect  *widget.Select
	languageByLabel map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings have been written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.widthEntry = widget.NewEntry()
	sd.widthEntry.SetPlaceHolder(model.DefaultWidth)

	sd.heightEntry = widget.NewEntry()
	sd.heightEntry.SetPlaceHolder(model.DefaultHeight)

	radiusOptions := []string{}
	for _, radius := range sd.settings.GetRadiusOptions() {
		radiusOptions = append(radiusOptions, string(radius))
	}
	sd.radiusSelect = widget.NewSelect(radiusOptions, nil)

	sd.colorEntry = widget.NewEntry()
	sd.colorEntry.SetPlaceHolder(l.GetText(KeyColorPlaceholder))
	sd.colorEntry.Validator = sd.validateColor

	sd.componentEntry = widget.NewEntry()
	sd.componentEntry.SetPlaceHolder(codegen.DefaultComponentName)
	sd.componentEntry.Validator = sd.validateComponentName

	formatOptions := []string{}
	for _, f := range codegen.Formats() {
		formatOptions = append(formatOptions, string(f))
	}
	sd.formatSelect = widget.NewSelect(formatOptions, nil)

	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	// Language selection shows display names
	sd.languageByLabel = make(map[string]string)
	languageOptions := []string{}
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageByLabel[label] = code
		languageOptions = append(languageOptions, label)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDefaults)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyWidth)+":"),
		sd.widthEntry,
		widget.NewLabel(l.GetText(KeyHeight)+":"),
		sd.heightEntry,
		widget.NewLabel(l.GetText(KeyRadius)+":"),
		sd.radiusSelect,
		widget.NewLabel(l.GetText(KeyColor)+":"),
		sd.colorEntry,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyCode)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyComponentName)+":"),
		sd.componentEntry,
		widget.NewLabel(l.GetText(KeyFormat)+":"),
		sd.formatSelect,
		widget.NewLabel(l.GetText(KeyExportDirectory)+":"),
		exportDirRow,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 560))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.widthEntry.SetText(sd.settings.GetDefaultWidth())
	sd.heightEntry.SetText(sd.settings.GetDefaultHeight())
	sd.radiusSelect.SetSelected(string(sd.settings.GetDefaultRadius()))
	sd.colorEntry.SetText(sd.settings.GetDefaultColor())
	sd.componentEntry.SetText(sd.settings.GetComponentName())
	sd.formatSelect.SetSelected(string(sd.settings.GetExportFormat()))
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())

	current := sd.settings.GetLanguage()
	if label, ok := sd.settings.GetLanguageOptions()[current]; ok {
		sd.languageSelect.SetSelected(label)
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) validateColor(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if _, err := colorful.Hex(text); err != nil {
		return errors.New(sd.localization.GetText(KeyInvalidColor))
	}
	return nil
}

func (sd *SettingsDialog) validateComponentName(text string) error {
	if text == "" || codegen.ValidComponentName(text) {
		return nil
	}
	return errors.New(sd.localization.GetText(KeyInvalidName))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the form into the settings; invalid values are skipped
func (sd *SettingsDialog) apply() {
	if width := strings.TrimSpace(sd.widthEntry.Text); width != "" {
		sd.settings.SetDefaultWidth(width)
	}
	if height := strings.TrimSpace(sd.heightEntry.Text); height != "" {
		sd.settings.SetDefaultHeight(height)
	}
	if sd.radiusSelect.Selected != "" {
		sd.settings.SetDefaultRadius(model.Radius(sd.radiusSelect.Selected))
	}
	if sd.validateColor(sd.colorEntry.Text) == nil {
		sd.settings.SetDefaultColor(strings.TrimSpace(sd.colorEntry.Text))
	}

	if name := strings.TrimSpace(sd.componentEntry.Text); name != "" && codegen.ValidComponentName(name) {
		sd.settings.SetComponentName(name)
	}
	if f, err := codegen.ParseFormat(sd.formatSelect.Selected); err == nil {
		sd.settings.SetExportFormat(f)
	}
	if dir := strings.TrimSpace(sd.exportDirEntry.Text); dir != "" {
		sd.settings.SetExportDirectory(dir)
	}

	if code, ok := sd.languageByLabel[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
