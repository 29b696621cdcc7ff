package ui

import (
	"errors"
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/skeletonne/internal/codegen"
	"github.com/ytget/skeletonne/internal/config"
	"github.com/ytget/skeletonne/internal/export"
	"github.com/ytget/skeletonne/internal/layout"
	"github.com/ytget/skeletonne/internal/model"
	"github.com/ytget/skeletonne/internal/platform"
	"github.com/ytget/skeletonne/internal/state"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	store        state.Container
	exportSvc    export.Exporter
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	// Control panel
	controlsLabel    *widget.Label
	addVerticalBtn   *widget.Button
	addHorizontalBtn *widget.Button
	resetBtn         *widget.Button
	rowsBox          *fyne.Container
	rows             []*ElementRow

	// Preview and code panels
	previewLabel *widget.Label
	preview      *Preview
	codeLabel    *widget.Label
	codeText     *widget.Label
	formatSelect *widget.Select
	copyBtn      *widget.Button
	saveBtn      *widget.Button
	code         string

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSeq       int
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, store state.Container, exportSvc export.Exporter, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		store:        store,
		exportSvc:    exportSvc,
		settings:     settings,
		localization: localization,
		logger:       logger,
	}

	ui.applySettings()

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.store.SetUpdateCallback(ui.onLayoutUpdate)
	ui.exportSvc.SetUpdateCallback(ui.onExportUpdate)

	ui.setupUI()
	ui.refresh(ui.store.Snapshot())

	logger.Debug("RootUI initialized",
		zap.Int("elements", store.Len()),
		zap.String("export_dir", exportSvc.OutputDirectory()),
		zap.String("language", localization.GetCurrentLanguage()),
	)
	return ui
}

// applySettings pushes element defaults and the export directory to the services
func (ui *RootUI) applySettings() {
	ui.store.SetDefaults(ui.settings.ElementDefaults())

	dir := ui.settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		ui.logger.Warn("Failed to create export directory", zap.String("dir", dir), zap.Error(err))
	}
	ui.exportSvc.SetOutputDirectory(dir)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	l := ui.localization

	ui.controlsLabel = widget.NewLabel(l.GetText(KeyControls))
	ui.controlsLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.addVerticalBtn = widget.NewButton(IconVertical+" "+l.GetText(KeyAddVertical), func() {
		ui.store.Add(model.OrientationVertical)
	})
	ui.addVerticalBtn.Importance = widget.HighImportance

	ui.addHorizontalBtn = widget.NewButton(IconRow+" "+l.GetText(KeyAddHorizontal), func() {
		ui.store.Add(model.OrientationHorizontal)
	})
	ui.addHorizontalBtn.Importance = widget.HighImportance

	ui.resetBtn = widget.NewButton(IconReset, ui.onReset)
	ui.resetBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	buttons := container.NewGridWithColumns(2, ui.addVerticalBtn, ui.addHorizontalBtn)
	controlsHeader := container.NewBorder(nil, nil, nil, container.NewHBox(ui.resetBtn, settingsBtn), ui.controlsLabel)

	ui.rowsBox = container.NewVBox()
	controls := container.NewBorder(
		container.NewVBox(controlsHeader, buttons, widget.NewSeparator()),
		nil, nil, nil,
		container.NewVScroll(ui.rowsBox),
	)

	// Preview
	ui.previewLabel = widget.NewLabel(l.GetText(KeyPreview))
	ui.previewLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.preview = NewPreview()

	// Code panel
	ui.codeLabel = widget.NewLabel(l.GetText(KeyCode))
	ui.codeLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.codeText = widget.NewLabel("")
	ui.codeText.TextStyle = fyne.TextStyle{Monospace: true}

	formats := []string{}
	for _, f := range codegen.Formats() {
		formats = append(formats, string(f))
	}
	ui.formatSelect = widget.NewSelect(formats, nil)
	ui.formatSelect.SetSelected(string(ui.settings.GetExportFormat()))
	ui.formatSelect.OnChanged = ui.onFormatChange

	ui.copyBtn = widget.NewButton(IconCopy+" "+l.GetText(KeyCopyCode), ui.onCopyCode)
	ui.saveBtn = widget.NewButton(IconFile+" "+l.GetText(KeySaveCode), ui.onSaveCode)
	ui.saveBtn.Importance = widget.HighImportance

	codeHeader := container.NewBorder(nil, nil, ui.codeLabel, container.NewHBox(ui.formatSelect, ui.copyBtn, ui.saveBtn))
	codeScroll := container.NewScroll(ui.codeText)
	codeScroll.SetMinSize(fyne.NewSize(0, CodePanelHeight))
	codePanel := container.NewBorder(codeHeader, nil, nil, nil, codeScroll)

	// Notification panel (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	previewPanel := container.NewBorder(ui.previewLabel, nil, nil, nil, container.NewVScroll(ui.preview))
	right := container.NewVSplit(previewPanel, codePanel)
	right.SetOffset(0.55)

	split := container.NewHSplit(controls, right)
	split.SetOffset(float64(ControlPanelWidth / WindowWidth))

	content := container.NewBorder(nil, ui.notificationContainer, nil, nil, split)
	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	saveItem := fyne.NewMenuItem(ui.localization.GetText(KeySaveCode), ui.onSaveCode)

	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), saveItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))

	ui.controlsLabel.SetText(l.GetText(KeyControls))
	ui.addVerticalBtn.SetText(IconVertical + " " + l.GetText(KeyAddVertical))
	ui.addHorizontalBtn.SetText(IconRow + " " + l.GetText(KeyAddHorizontal))
	ui.previewLabel.SetText(l.GetText(KeyPreview))
	ui.codeLabel.SetText(l.GetText(KeyCode))
	ui.copyBtn.SetText(IconCopy + " " + l.GetText(KeyCopyCode))
	ui.saveBtn.SetText(IconFile + " " + l.GetText(KeySaveCode))

	for _, row := range ui.rows {
		row.RefreshTexts()
	}
	ui.refreshCode(ui.store.Snapshot())
}

// onLayoutUpdate receives store snapshots; it may run on any goroutine
func (ui *RootUI) onLayoutUpdate(elements []model.Element) {
	fyne.Do(func() {
		ui.refresh(elements)
	})
}

// refresh redraws controls, preview and code from a snapshot
func (ui *RootUI) refresh(elements []model.Element) {
	ui.syncRows(elements)
	ui.preview.SetElements(elements)
	ui.refreshCode(elements)
}

// syncRows keeps one ElementRow per element, reusing rows by position so
// inputs being edited keep their focus
func (ui *RootUI) syncRows(elements []model.Element) {
	for len(ui.rows) < len(elements) {
		row := NewElementRow(ui.localization, ui.onElementUpdate, ui.onElementRemove)
		ui.rows = append(ui.rows, row)
		ui.rowsBox.Add(row)
	}
	for len(ui.rows) > len(elements) {
		last := ui.rows[len(ui.rows)-1]
		ui.rowsBox.Remove(last)
		ui.rows = ui.rows[:len(ui.rows)-1]
	}
	for i, e := range elements {
		ui.rows[i].SetElement(i+1, e)
	}
}

// refreshCode regenerates the code panel
func (ui *RootUI) refreshCode(elements []model.Element) {
	code, err := ui.exportSvc.Code(elements, ui.exportOptions())
	switch {
	case errors.Is(err, export.ErrEmptyLayout):
		ui.code = ""
		ui.codeText.SetText(ui.localization.GetText(KeyEmptyLayout))
		ui.copyBtn.Disable()
		ui.saveBtn.Disable()
	case err != nil:
		ui.code = ""
		ui.codeText.SetText(IconError + " " + err.Error())
		ui.copyBtn.Disable()
		ui.saveBtn.Disable()
	default:
		ui.code = code
		ui.codeText.SetText(code)
		ui.copyBtn.Enable()
		ui.saveBtn.Enable()
	}
}

func (ui *RootUI) exportOptions() codegen.Options {
	opts := ui.settings.GetExportOptions()
	if f, err := codegen.ParseFormat(ui.formatSelect.Selected); err == nil {
		opts.Format = f
	}
	return opts
}

func (ui *RootUI) onElementUpdate(id string, patch layout.Patch) {
	ui.store.Update(id, patch)
}

func (ui *RootUI) onElementRemove(id string) {
	ui.store.Remove(id)
}

// onReset restores the starting stack
func (ui *RootUI) onReset() {
	ids := layout.UUIDGenerator{}
	ui.store.Reset(model.DefaultElements(ids.NewElementID(), ids.NewElementID(), ids.NewElementID()))
}

func (ui *RootUI) onFormatChange(selected string) {
	f, err := codegen.ParseFormat(selected)
	if err != nil {
		return
	}
	ui.settings.SetExportFormat(f)
	ui.refreshCode(ui.store.Snapshot())
}

// onCopyCode copies the generated code to the clipboard
func (ui *RootUI) onCopyCode() {
	if ui.code == "" {
		return
	}
	fyne.CurrentApp().Clipboard().SetContent(ui.code)
	ui.showNotification(ui.localization.GetText(KeyCodeCopied))
}

// onSaveCode writes the generated code into the export directory
func (ui *RootUI) onSaveCode() {
	task, err := ui.exportSvc.Export(ui.store.Snapshot(), ui.exportOptions())
	if err != nil {
		ui.logger.Warn("Export failed", zap.Error(err))
		ui.showNotification(IconError + " " + ui.localization.GetText(KeyExportFailed) + ": " + err.Error())
		return
	}
	ui.showNotification(ui.localization.GetText(KeyExportCompleted) + ": " + task.OutputPath)
	ui.showToastNotification(task)
}

// onExportUpdate logs export task transitions
func (ui *RootUI) onExportUpdate(task *model.ExportTask) {
	ui.logger.Debug("Export task updated",
		zap.String("task_id", task.ID),
		zap.String("status", task.Status.String()),
		zap.String("path", task.OutputPath),
	)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings to the running playground
func (ui *RootUI) onSettingsSaved() {
	ui.applySettings()
	ui.formatSelect.SetSelected(string(ui.settings.GetExportFormat()))
	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}
	ui.refreshCode(ui.store.Snapshot())
}

// showNotification displays a message in the notification panel and hides
// it after a while unless a newer message replaced it
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	ui.notificationSeq++
	seq := ui.notificationSeq

	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()

	go func() {
		time.Sleep(NotificationAutoHide)
		fyne.Do(func() {
			if ui.notificationSeq == seq {
				ui.notificationContainer.Hide()
			}
		})
	}()
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Warn("Failed to reveal file", zap.String("path", filePath), zap.Error(err))
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// onOpenFile handles opening an exported file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		ui.logger.Warn("Failed to open file", zap.String("path", filePath), zap.Error(err))
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// onCopyPath handles copying file path to clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	if strings.TrimSpace(filePath) == "" {
		return
	}
	fyne.CurrentApp().Clipboard().SetContent(filePath)
	ui.showNotification(ui.localization.GetText(KeyPathCopied))
}

// showToastNotification shows an in-app toast with actions for the exported file
func (ui *RootUI) showToastNotification(task *model.ExportTask) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyExportCompleted))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(task.GetDisplayName() + " · " + codegen.Format(task.Format).Extension())
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	revealBtn := widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyReveal), func() {
		ui.onRevealFile(task.OutputPath)
	})
	revealBtn.Importance = widget.HighImportance

	openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() {
		ui.onOpenFile(task.OutputPath)
	})

	copyPathBtn := widget.NewButton(ui.localization.GetText(KeyCopyPath), func() {
		ui.onCopyPath(task.OutputPath)
	})

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	actions := container.NewHBox(revealBtn, openBtn, copyPathBtn)
	content := container.NewVBox(header, messageLabel, actions)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toastPopup.Show()

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(toastPopup.Hide)
	}()
}
