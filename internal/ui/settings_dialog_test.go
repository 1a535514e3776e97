package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/akioflix/internal/config"
)

func TestSettingsDialog_Save(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("")
	settings := config.NewSettings(a)

	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), w, func() { saved++ })
	sd.Show()

	assert.Equal(t, config.DefaultCatalogEndpoint, sd.endpointEntry.Text)
	assert.Equal(t, config.DefaultTrailerTemplate, sd.templateEntry.Text)
	assert.Equal(t, config.DefaultLanguage, sd.languageSelect.Selected)

	sd.endpointEntry.SetText("http://localhost:9000/list_movies.json")
	sd.templateEntry.SetText("https://example.com/v/%s")
	sd.languageSelect.SetSelected("en")
	sd.onSave(true)

	assert.Equal(t, 1, saved)
	assert.Equal(t, "http://localhost:9000/list_movies.json", settings.GetCatalogEndpoint())
	assert.Equal(t, "https://example.com/v/%s", settings.GetTrailerTemplate())
	assert.Equal(t, "en", settings.GetLanguage())
}

func TestSettingsDialog_Cancel(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("")
	settings := config.NewSettings(a)

	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), w, func() { saved++ })
	sd.Show()

	sd.endpointEntry.SetText("http://localhost:9000/list_movies.json")
	sd.onSave(false)

	assert.Zero(t, saved)
	assert.Equal(t, config.DefaultCatalogEndpoint, settings.GetCatalogEndpoint())
}
