package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/akioflix/internal/model"
)

// MovieRow renders one list entry: cover, title, year, colored rating and stars.
// It keeps no state besides the record it currently shows.
type MovieRow struct {
	widget.BaseWidget

	movie        model.Movie
	localization *Localization
	images       *ImageLoader
	onTapped     func()

	// UI components
	cover      *canvas.Image
	titleLabel *widget.Label
	yearText   *canvas.Text
	ratingText *canvas.Text
	starsText  *canvas.Text
	content    *fyne.Container
}

// NewMovieRow creates an empty row; SetMovie fills it
func NewMovieRow(localization *Localization, images *ImageLoader, coverSize fyne.Size) *MovieRow {
	r := &MovieRow{
		localization: localization,
		images:       images,
	}
	r.ExtendBaseWidget(r)
	r.createUI(coverSize)
	return r
}

// SetMovie shows movie and routes taps to onTapped
func (r *MovieRow) SetMovie(movie model.Movie, onTapped func()) {
	r.movie = movie
	r.onTapped = onTapped
	r.updateFromMovie()
}

// Movie returns the record currently shown
func (r *MovieRow) Movie() model.Movie {
	return r.movie
}

// Tapped invokes the selection callback
func (r *MovieRow) Tapped(*fyne.PointEvent) {
	if r.onTapped != nil {
		r.onTapped()
	}
}

// CreateRenderer creates the widget renderer
func (r *MovieRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.content)
}

func (r *MovieRow) createUI(coverSize fyne.Size) {
	r.cover = canvas.NewImageFromResource(nil)
	r.cover.FillMode = canvas.ImageFillContain
	r.cover.SetMinSize(coverSize)

	r.titleLabel = widget.NewLabel("")
	r.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.titleLabel.Truncation = fyne.TextTruncateEllipsis

	r.yearText = canvas.NewText("", MutedTextColor)
	r.yearText.TextSize = YearTextSize

	r.ratingText = canvas.NewText("", RatingLowColor)
	r.ratingText.TextSize = RatingTextSize

	r.starsText = canvas.NewText("", StarsColor)
	r.starsText.TextSize = RatingTextSize

	side := container.NewVBox(r.titleLabel, r.yearText, r.ratingText, r.starsText, layout.NewSpacer())
	r.content = container.NewBorder(nil, nil, container.NewPadded(r.cover), nil, side)
}

func (r *MovieRow) updateFromMovie() {
	m := r.movie

	r.titleLabel.SetText(m.Title)

	r.yearText.Text = r.localization.Format(KeyYear, m.Year)
	r.yearText.Refresh()

	r.ratingText.Text = r.localization.Format(KeyRating, m.RatingText())
	r.ratingText.Color = RatingColor(m.RatingLevel())
	r.ratingText.Refresh()

	r.starsText.Text = m.Stars()
	r.starsText.Refresh()

	if r.images != nil {
		r.images.Load(r.cover, m.MediumCoverImage)
	}
}
