package config

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/akioflix/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyCatalogEndpoint = "catalog_endpoint"
	KeyTrailerTemplate = "trailer_url_template"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultCatalogEndpoint = "https://yts.mx/api/v2/list_movies.json"
	DefaultTrailerTemplate = "https://www.youtube.com/watch?v=%s"
	DefaultLanguage        = "pt"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCatalogEndpoint returns the configured catalog endpoint
func (s *Settings) GetCatalogEndpoint() string {
	endpoint := s.app.Preferences().String(KeyCatalogEndpoint)
	if endpoint == "" {
		s.SetCatalogEndpoint(DefaultCatalogEndpoint)
		return DefaultCatalogEndpoint
	}
	return endpoint
}

// SetCatalogEndpoint sets the catalog endpoint. Values that are not absolute
// http(s) URLs reset the endpoint to the default.
func (s *Settings) SetCatalogEndpoint(endpoint string) {
	endpoint = strings.TrimSpace(endpoint)
	if !isHTTPURL(endpoint) {
		endpoint = DefaultCatalogEndpoint
	}
	s.app.Preferences().SetString(KeyCatalogEndpoint, endpoint)
}

// GetTrailerTemplate returns the external video URL template
func (s *Settings) GetTrailerTemplate() string {
	template := s.app.Preferences().String(KeyTrailerTemplate)
	if template == "" {
		s.SetTrailerTemplate(DefaultTrailerTemplate)
		return DefaultTrailerTemplate
	}
	return template
}

// SetTrailerTemplate sets the trailer URL template. Templates without exactly
// one %s, or with any other format verb, reset it to the default.
func (s *Settings) SetTrailerTemplate(template string) {
	if !isTrailerTemplate(template) {
		template = DefaultTrailerTemplate
	}
	s.app.Preferences().SetString(KeyTrailerTemplate, template)
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

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"pt": "Português",
		"en": "English",
		"ru": "Русский",
	}
}

func (s *Settings) isStored(key string) bool {
	return s.app.Preferences().String(key) != ""
}

func isHTTPURL(raw string) bool {
	_, err := platform.ParseExternalURL(raw)
	return err == nil
}

func isTrailerTemplate(template string) bool {
	if strings.Count(template, "%s") != 1 {
		return false
	}
	formatted := fmt.Sprintf(template, "x")
	if strings.Contains(formatted, "%!") {
		return false
	}
	return isHTTPURL(formatted)
}
