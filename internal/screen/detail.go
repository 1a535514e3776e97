package screen

import (
	"github.com/ytget/akioflix/internal/model"
	"github.com/ytget/akioflix/internal/navigation"
	"github.com/ytget/akioflix/internal/platform"
)

// GenreLinePrefix precedes every genre line
const GenreLinePrefix = " - "

// DetailController renders-ready data for one forwarded movie. It never fetches.
type DetailController struct {
	movie           model.Movie
	trailerTemplate string
}

// NewDetailController creates a controller from the navigation parameter
func NewDetailController(params navigation.DetailParams, trailerTemplate string) *DetailController {
	return &DetailController{
		movie:           params.Movie,
		trailerTemplate: trailerTemplate,
	}
}

// State is always Loaded: the data arrived with the navigation parameter
func (d *DetailController) State() model.ScreenState {
	return model.ScreenStateLoaded
}

// Movie returns the forwarded record
func (d *DetailController) Movie() model.Movie {
	return d.movie
}

// Title returns the screen title
func (d *DetailController) Title() string {
	return d.movie.Title
}

// TrailerURL returns the external video URL, or "" without a trailer id
func (d *DetailController) TrailerURL() string {
	if !d.movie.HasTrailer() {
		return ""
	}
	return platform.TrailerURL(d.trailerTemplate, d.movie.YTTrailerCode)
}

// GenreLines returns one display line per genre
func (d *DetailController) GenreLines() []string {
	lines := make([]string, 0, len(d.movie.Genres))
	for _, genre := range d.movie.Genres {
		lines = append(lines, GenreLinePrefix+genre)
	}
	return lines
}
