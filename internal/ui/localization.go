package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyYear             = "year"
	KeyRating           = "rating"
	KeyWatchTrailer     = "watch_trailer"
	KeyNoTrailer        = "no_trailer"
	KeyDescription      = "description"
	KeyGenres           = "genres"
	KeyBack             = "back"
	KeyLoading          = "loading"
	KeyErrorTitle       = "error_title"
	KeyErrorOpeningLink = "error_opening_link"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyCatalogEndpoint  = "catalog_endpoint"
	KeyTrailerTemplate  = "trailer_template"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "pt",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "pt"
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

	// Fallback to Portuguese
	if texts, exists := l.texts["pt"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key with args substituted
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
		"pt": "Português",
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyYear:             "Ano: %d",
		KeyRating:           "Nota: %s",
		KeyWatchTrailer:     "Assistir no Youtube",
		KeyNoTrailer:        "Trailer indisponível",
		KeyDescription:      "Descrição",
		KeyGenres:           "Gêneros",
		KeyBack:             "Voltar",
		KeyLoading:          "Carregando filmes...",
		KeyErrorTitle:       "Erro",
		KeyErrorOpeningLink: "Erro ao abrir link",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyCatalogEndpoint:  "Endereço do catálogo",
		KeyTrailerTemplate:  "Modelo de URL do trailer",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas. O catálogo será recarregado na próxima abertura.",
	}

	// English texts
	l.texts["en"] = map[string]string{
		KeyYear:             "Year: %d",
		KeyRating:           "Rating: %s",
		KeyWatchTrailer:     "Watch on YouTube",
		KeyNoTrailer:        "Trailer unavailable",
		KeyDescription:      "Description",
		KeyGenres:           "Genres",
		KeyBack:             "Back",
		KeyLoading:          "Loading movies...",
		KeyErrorTitle:       "Error",
		KeyErrorOpeningLink: "Error opening link",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyCatalogEndpoint:  "Catalog endpoint",
		KeyTrailerTemplate:  "Trailer URL template",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved. The catalog is reloaded on next start.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyYear:             "Год: %d",
		KeyRating:           "Рейтинг: %s",
		KeyWatchTrailer:     "Смотреть на YouTube",
		KeyNoTrailer:        "Трейлер недоступен",
		KeyDescription:      "Описание",
		KeyGenres:           "Жанры",
		KeyBack:             "Назад",
		KeyLoading:          "Загрузка фильмов...",
		KeyErrorTitle:       "Ошибка",
		KeyErrorOpeningLink: "Ошибка открытия ссылки",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyCatalogEndpoint:  "Адрес каталога",
		KeyTrailerTemplate:  "Шаблон ссылки на трейлер",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки сохранены. Каталог обновится при следующем запуске.",
	}
}
