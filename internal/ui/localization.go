package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyControls         = "controls"
	KeyPreview          = "preview"
	KeyCode             = "code"
	KeyAddVertical      = "add_vertical"
	KeyAddHorizontal    = "add_horizontal"
	KeyResetLayout      = "reset_layout"
	KeySkeletonTitle    = "skeleton_title"
	KeyRemove           = "remove"
	KeyOrientation      = "orientation"
	KeyWidth            = "width"
	KeyHeight           = "height"
	KeyRadius           = "radius"
	KeyColor            = "color"
	KeyColorPlaceholder = "color_placeholder"
	KeyVertical         = "vertical"
	KeyHorizontal       = "horizontal"
	KeyFormat           = "format"
	KeyCopyCode         = "copy_code"
	KeySaveCode         = "save_code"
	KeyCodeCopied       = "code_copied"
	KeyEmptyLayout      = "empty_layout"
	KeyExportCompleted  = "export_completed"
	KeyExportFailed     = "export_failed"
	KeyReveal           = "reveal"
	KeyOpen             = "open"
	KeyCopyPath         = "copy_path"
	KeyPathCopied       = "path_copied"
	KeyErrorOpeningFile = "error_opening_file"
	KeyDefaults         = "defaults"
	KeyComponentName    = "component_name"
	KeyExportDirectory  = "export_directory"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyInvalidColor     = "invalid_color"
	KeyInvalidName      = "invalid_component_name"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key formatted with args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Skeletonne",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyControls:         "Controls",
		KeyPreview:          "Preview",
		KeyCode:             "Code",
		KeyAddVertical:      "Add Vertical",
		KeyAddHorizontal:    "Add Horizontal",
		KeyResetLayout:      "Reset",
		KeySkeletonTitle:    "Skeleton %d",
		KeyRemove:           "Remove",
		KeyOrientation:      "Orientation",
		KeyWidth:            "Width",
		KeyHeight:           "Height",
		KeyRadius:           "Radius",
		KeyColor:            "Color",
		KeyColorPlaceholder: "#e5e7eb (empty for default)",
		KeyVertical:         "Vertical",
		KeyHorizontal:       "Horizontal",
		KeyFormat:           "Format",
		KeyCopyCode:         "Copy",
		KeySaveCode:         "Save to file",
		KeyCodeCopied:       "Code copied to clipboard",
		KeyEmptyLayout:      "Add an element to generate code",
		KeyExportCompleted:  "Export completed",
		KeyExportFailed:     "Export failed",
		KeyReveal:           "Reveal",
		KeyOpen:             "Open",
		KeyCopyPath:         "Copy path",
		KeyPathCopied:       "Path copied to clipboard",
		KeyErrorOpeningFile: "Error opening file",
		KeyDefaults:         "New element defaults",
		KeyComponentName:    "Component name",
		KeyExportDirectory:  "Export directory",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyInvalidColor:     "Color must be a hex value like #e5e7eb",
		KeyInvalidName:      "Component name must start with a capital letter",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Skeletonne",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyControls:         "Управление",
		KeyPreview:          "Предпросмотр",
		KeyCode:             "Код",
		KeyAddVertical:      "Добавить вертикальный",
		KeyAddHorizontal:    "Добавить горизонтальный",
		KeyResetLayout:      "Сбросить",
		KeySkeletonTitle:    "Скелетон %d",
		KeyRemove:           "Удалить",
		KeyOrientation:      "Ориентация",
		KeyWidth:            "Ширина",
		KeyHeight:           "Высота",
		KeyRadius:           "Скругление",
		KeyColor:            "Цвет",
		KeyColorPlaceholder: "#e5e7eb (пусто - по умолчанию)",
		KeyVertical:         "Вертикальный",
		KeyHorizontal:       "Горизонтальный",
		KeyFormat:           "Формат",
		KeyCopyCode:         "Копировать",
		KeySaveCode:         "Сохранить в файл",
		KeyCodeCopied:       "Код скопирован в буфер обмена",
		KeyEmptyLayout:      "Добавьте элемент, чтобы получить код",
		KeyExportCompleted:  "Экспорт завершен",
		KeyExportFailed:     "Ошибка экспорта",
		KeyReveal:           "Показать",
		KeyOpen:             "Открыть",
		KeyCopyPath:         "Копировать путь",
		KeyPathCopied:       "Путь скопирован в буфер обмена",
		KeyErrorOpeningFile: "Ошибка открытия файла",
		KeyDefaults:         "Параметры новых элементов",
		KeyComponentName:    "Имя компонента",
		KeyExportDirectory:  "Папка экспорта",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyInvalidColor:     "Цвет должен быть в формате #e5e7eb",
		KeyInvalidName:      "Имя компонента должно начинаться с заглавной буквы",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Skeletonne",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyControls:         "Controles",
		KeyPreview:          "Pré-visualização",
		KeyCode:             "Código",
		KeyAddVertical:      "Adicionar Vertical",
		KeyAddHorizontal:    "Adicionar Horizontal",
		KeyResetLayout:      "Redefinir",
		KeySkeletonTitle:    "Esqueleto %d",
		KeyRemove:           "Remover",
		KeyOrientation:      "Orientação",
		KeyWidth:            "Largura",
		KeyHeight:           "Altura",
		KeyRadius:           "Raio",
		KeyColor:            "Cor",
		KeyColorPlaceholder: "#e5e7eb (vazio para padrão)",
		KeyVertical:         "Vertical",
		KeyHorizontal:       "Horizontal",
		KeyFormat:           "Formato",
		KeyCopyCode:         "Copiar",
		KeySaveCode:         "Salvar em arquivo",
		KeyCodeCopied:       "Código copiado para a área de transferência",
		KeyEmptyLayout:      "Adicione um elemento para gerar código",
		KeyExportCompleted:  "Exportação concluída",
		KeyExportFailed:     "Falha na exportação",
		KeyReveal:           "Mostrar",
		KeyOpen:             "Abrir",
		KeyCopyPath:         "Copiar caminho",
		KeyPathCopied:       "Caminho copiado para a área de transferência",
		KeyErrorOpeningFile: "Erro ao abrir arquivo",
		KeyDefaults:         "Padrões de novos elementos",
		KeyComponentName:    "Nome do componente",
		KeyExportDirectory:  "Diretório de exportação",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Navegar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyInvalidColor:     "A cor deve ser um valor hex como #e5e7eb",
		KeyInvalidName:      "O nome do componente deve começar com letra maiúscula",
	}
}
