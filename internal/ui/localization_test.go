package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalization_DefaultsToPortuguese(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "pt", l.GetCurrentLanguage())
	assert.Equal(t, "Assistir no Youtube", l.GetText(KeyWatchTrailer))
	assert.Equal(t, "Descrição", l.GetText(KeyDescription))
	assert.Equal(t, "Gêneros", l.GetText(KeyGenres))
	assert.Equal(t, "Ano: 2001", l.Format(KeyYear, 2001))
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
	assert.Equal(t, "Жанры", l.GetText(KeyGenres))

	l.SetLanguage("xx")
	assert.Equal(t, "ru", l.GetCurrentLanguage(), "unknown languages are ignored")

	l.SetLanguage("system")
	assert.Equal(t, "pt", l.GetCurrentLanguage())
}

func TestLocalization_Fallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("en")
	delete(l.texts["en"], KeyGenres)

	assert.Equal(t, "Gêneros", l.GetText(KeyGenres))
	assert.Equal(t, "missing_key", l.GetText("missing_key"))
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !assert.True(t, ok, "language %s has no texts", code) {
			continue
		}
		for key := range l.texts["pt"] {
			assert.Contains(t, texts, key, "language %s misses %s", code, key)
		}
	}
}
