package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/akioflix/internal/config"
	"github.com/ytget/akioflix/internal/model"
	"github.com/ytget/akioflix/internal/navigation"
)

func TestDetailController(t *testing.T) {
	movie := model.Movie{
		ID:            9,
		Title:         "Arrival",
		TitleLong:     "Arrival (2016)",
		Rating:        7.9,
		YTTrailerCode: "tFMo3UJ4B4g",
		Genres:        []string{"Drama", "Mystery", "Sci-Fi"},
	}
	d := NewDetailController(navigation.DetailParams{Movie: movie}, config.DefaultTrailerTemplate)

	assert.Equal(t, model.ScreenStateLoaded, d.State())
	assert.Equal(t, "Arrival", d.Title())
	assert.Equal(t, movie, d.Movie())
	assert.Equal(t, "https://www.youtube.com/watch?v=tFMo3UJ4B4g", d.TrailerURL())
	assert.Equal(t, []string{" - Drama", " - Mystery", " - Sci-Fi"}, d.GenreLines())
}

func TestDetailController_NoGenres(t *testing.T) {
	d := NewDetailController(navigation.DetailParams{Movie: model.Movie{Title: "Untitled"}}, config.DefaultTrailerTemplate)

	assert.NotNil(t, d.GenreLines())
	assert.Empty(t, d.GenreLines())
}

func TestDetailController_NoTrailer(t *testing.T) {
	d := NewDetailController(navigation.DetailParams{Movie: model.Movie{Title: "Untitled"}}, config.DefaultTrailerTemplate)

	assert.Empty(t, d.TrailerURL())
}
