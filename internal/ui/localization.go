package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyBaseDirectory    = "base_directory"
	KeyBrowse           = "browse"
	KeyURLsLabel        = "urls_label"
	KeyDownload         = "download"
	KeySettings         = "settings"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyLanguage         = "language"
	KeyGalleryDLPath    = "gallery_dl_path"
	KeyTitleTimeout     = "title_timeout"
	KeyProgress         = "progress"
	KeyOpenFolder       = "open_folder"
	KeyNoURLs           = "no_urls"
	KeyNoValidURLs      = "no_valid_urls"
	KeyNoFolder         = "no_folder"
	KeyBatchRunning     = "batch_running"
	KeyDownloadComplete = "download_complete"
	KeyCompletedSummary = "completed_summary"
	KeySettingsSaved    = "settings_saved"
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
		lang = "en"
	}
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetCurrentLanguage returns the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns code → display name for the language menu
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
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

	return key
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Gallery Downloader",
		KeyBaseDirectory:    "Download folder:",
		KeyBrowse:           "Browse…",
		KeyURLsLabel:        "Gallery URLs (one per line):",
		KeyDownload:         "Download",
		KeySettings:         "Settings",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyLanguage:         "Language",
		KeyGalleryDLPath:    "gallery-dl path (empty = PATH):",
		KeyTitleTimeout:     "Title fetch timeout (seconds):",
		KeyProgress:         "Progress:",
		KeyOpenFolder:       "open",
		KeyNoURLs:           "Please enter at least one gallery URL.",
		KeyNoValidURLs:      "No valid URLs found. URLs must start with http:// or https://.",
		KeyNoFolder:         "Please select a download folder.",
		KeyBatchRunning:     "A download is already in progress.",
		KeyDownloadComplete: "Download Complete",
		KeyCompletedSummary: "Successful: %d/%d\nFiles saved to: %s",
		KeySettingsSaved:    "Settings saved",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Загрузчик галерей",
		KeyBaseDirectory:    "Папка загрузки:",
		KeyBrowse:           "Обзор…",
		KeyURLsLabel:        "Ссылки на галереи (по одной на строку):",
		KeyDownload:         "Скачать",
		KeySettings:         "Настройки",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyLanguage:         "Язык",
		KeyGalleryDLPath:    "Путь к gallery-dl (пусто = PATH):",
		KeyTitleTimeout:     "Таймаут получения заголовка (сек):",
		KeyProgress:         "Прогресс:",
		KeyOpenFolder:       "открыть",
		KeyNoURLs:           "Введите хотя бы одну ссылку на галерею.",
		KeyNoValidURLs:      "Ссылки не найдены. Ссылка должна начинаться с http:// или https://.",
		KeyNoFolder:         "Выберите папку загрузки.",
		KeyBatchRunning:     "Загрузка уже выполняется.",
		KeyDownloadComplete: "Загрузка завершена",
		KeyCompletedSummary: "Успешно: %d/%d\nФайлы сохранены в: %s",
		KeySettingsSaved:    "Настройки сохранены",
	}
}
