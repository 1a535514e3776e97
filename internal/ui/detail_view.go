package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/akioflix/internal/screen"
)

// DetailView renders one forwarded movie. A right swipe on touch devices
// navigates back.
type DetailView struct {
	widget.BaseWidget

	ctrl         *screen.DetailController
	localization *Localization
	gestures     *GestureHandler

	onTrailer func(url string)
	onBack    func()

	// UI components
	background *canvas.Image
	cover      *canvas.Image
	titleText  *canvas.Text
	yearText   *canvas.Text
	ratingText *canvas.Text
	starsText  *canvas.Text
	trailerBtn *widget.Button
	genreBox   *fyne.Container
	content    fyne.CanvasObject
}

// NewDetailView creates the detail screen for ctrl
func NewDetailView(ctrl *screen.DetailController, localization *Localization, images *ImageLoader, mobileUI *MobileUI, onTrailer func(string), onBack func()) *DetailView {
	v := &DetailView{
		ctrl:         ctrl,
		localization: localization,
		onTrailer:    onTrailer,
		onBack:       onBack,
	}
	v.gestures = NewGestureHandler(v.handleGesture)
	v.ExtendBaseWidget(v)
	v.createUI(images, mobileUI)
	return v
}

// CreateRenderer creates the widget renderer
func (v *DetailView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}

// TouchDown handles touch down events
func (v *DetailView) TouchDown(event *mobile.TouchEvent) {
	v.gestures.TouchDown(event)
}

// TouchUp handles touch up events
func (v *DetailView) TouchUp(event *mobile.TouchEvent) {
	v.gestures.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (v *DetailView) TouchCancel(event *mobile.TouchEvent) {
	v.gestures.TouchCancel(event)
}

func (v *DetailView) handleGesture(gesture GestureType) {
	if gesture == GestureSwipeRight && v.onBack != nil {
		v.onBack()
	}
}

func (v *DetailView) createUI(images *ImageLoader, mobileUI *MobileUI) {
	movie := v.ctrl.Movie()
	coverSize := fyne.NewSize(CoverWidth, CoverHeight)
	if mobileUI != nil {
		coverSize = mobileUI.CoverSize()
	}

	// Banner: dimmed background with cover and long title on top
	v.background = canvas.NewImageFromResource(nil)
	v.background.FillMode = canvas.ImageFillStretch
	v.background.Translucency = BannerImageTranslucency
	v.background.SetMinSize(fyne.NewSize(0, BannerHeight))

	v.cover = canvas.NewImageFromResource(nil)
	v.cover.FillMode = canvas.ImageFillContain
	v.cover.SetMinSize(coverSize)

	if images != nil {
		images.Load(v.background, movie.BackgroundImage)
		images.Load(v.cover, movie.MediumCoverImage)
	}

	v.titleText = canvas.NewText(movie.DisplayTitle(), TitleTextColor)
	v.titleText.TextSize = TitleTextSize
	v.titleText.TextStyle = fyne.TextStyle{Bold: true}

	banner := container.NewStack(
		v.background,
		container.NewPadded(container.NewBorder(nil, nil, v.cover, nil, container.NewCenter(v.titleText))),
	)

	// Body
	v.yearText = canvas.NewText(v.localization.Format(KeyYear, movie.Year), MutedTextColor)
	v.yearText.TextSize = YearTextSize

	v.ratingText = canvas.NewText(v.localization.Format(KeyRating, movie.RatingText()), RatingColor(movie.RatingLevel()))
	v.ratingText.TextSize = RatingTextSize

	v.starsText = canvas.NewText(movie.Stars(), StarsColor)
	v.starsText.TextSize = RatingTextSize

	trailerURL := v.ctrl.TrailerURL()
	v.trailerBtn = widget.NewButton(v.localization.GetText(KeyWatchTrailer), func() {
		if v.onTrailer != nil {
			v.onTrailer(trailerURL)
		}
	})
	v.trailerBtn.Importance = widget.WarningImportance
	if trailerURL == "" {
		v.trailerBtn.SetText(v.localization.GetText(KeyNoTrailer))
		v.trailerBtn.Disable()
	}

	description := widget.NewLabel(movie.DescriptionFull)
	description.Wrapping = fyne.TextWrapWord

	v.genreBox = container.NewVBox()
	for _, line := range v.ctrl.GenreLines() {
		v.genreBox.Add(widget.NewLabel(line))
	}

	body := container.NewVBox(
		v.yearText,
		v.ratingText,
		v.starsText,
		v.trailerBtn,
		sectionHeader(v.localization.GetText(KeyDescription)),
		description,
		sectionHeader(v.localization.GetText(KeyGenres)),
		v.genreBox,
	)

	v.content = container.NewBorder(banner, nil, nil, nil, container.NewVScroll(container.NewPadded(body)))
}

// Images returns the canvas images loaded from the network
func (v *DetailView) Images() []*canvas.Image {
	return []*canvas.Image{v.background, v.cover}
}

// GenreCount returns the number of rendered genre lines
func (v *DetailView) GenreCount() int {
	return len(v.genreBox.Objects)
}

func sectionHeader(text string) fyne.CanvasObject {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}
