package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/akioflix/internal/catalog"
	"github.com/ytget/akioflix/internal/config"
	"github.com/ytget/akioflix/internal/model"
	"github.com/ytget/akioflix/internal/navigation"
	"github.com/ytget/akioflix/internal/platform"
	"github.com/ytget/akioflix/internal/screen"
)

// RootUI hosts the navigation stack in the main window: the movie list at the
// bottom and the detail screen pushed on top of it.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	opener       platform.URLOpener
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger
	mobileUI     *MobileUI
	images       *ImageLoader

	nav  *navigation.Stack
	list *screen.ListController

	// UI components
	backBtn     *widget.Button
	settingsBtn *widget.Button
	titleLabel  *widget.Label
	movieList   *widget.List
	spinner     *widget.ProgressBarInfinite
	loading     *fyne.Container
	loadingText *widget.Label
	listView    fyne.CanvasObject
	body        *fyne.Container
	detail      *DetailView

	closeOnce sync.Once
}

// Option customises a RootUI
type Option func(*RootUI)

// WithURLOpener replaces the handler used for trailer links
func WithURLOpener(opener platform.URLOpener) Option {
	return func(ui *RootUI) {
		ui.opener = opener
	}
}

// WithImageLoader replaces the poster loader
func WithImageLoader(images *ImageLoader) Option {
	return func(ui *RootUI) {
		ui.images = images
	}
}

// NewRootUI builds the main UI and starts the catalog fetch
func NewRootUI(window fyne.Window, app fyne.App, loader catalog.Loader, settings *config.Settings, logger *zap.Logger, opts ...Option) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		opener:       app,
		settings:     settings,
		localization: localization,
		logger:       logger.Named("ui"),
		mobileUI:     NewMobileUI(app),
		nav:          navigation.NewStack(),
	}
	for _, opt := range opts {
		opt(ui)
	}
	if ui.images == nil {
		ui.images = NewImageLoader(nil, ui.logger)
	}

	ui.list = screen.NewListController(loader, ui, ui.logger)
	ui.list.SetChangeCallback(func(model.ScreenState) {
		fyne.Do(ui.onListStateChanged)
	})
	ui.nav.SetChangeCallback(func(navigation.Entry) {
		ui.render()
	})

	ui.setupUI()
	ui.window.SetOnClosed(ui.Close)

	ui.list.Start()
	return ui
}

// Alert shows message in a dialog the user has to dismiss
func (ui *RootUI) Alert(message string) {
	fyne.Do(func() {
		dialog.ShowInformation(ui.localization.GetText(KeyErrorTitle), message, ui.window)
	})
}

// Close cancels the pending catalog fetch and poster downloads
func (ui *RootUI) Close() {
	ui.closeOnce.Do(func() {
		ui.list.Close()
		ui.images.Close()
		ui.logger.Debug("root UI closed")
	})
}

// Navigator exposes the navigation stack
func (ui *RootUI) Navigator() navigation.Navigator {
	return ui.nav
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.backBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyBack), theme.NavigateBackIcon(), ui.onBack)
	ui.backBtn.Importance = widget.LowImportance

	ui.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis

	header := container.NewBorder(nil, nil, ui.backBtn, ui.settingsBtn, ui.titleLabel)

	coverSize := ui.mobileUI.CoverSize()
	ui.movieList = widget.NewList(
		ui.list.Len,
		func() fyne.CanvasObject {
			return NewMovieRow(ui.localization, ui.images, coverSize)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.updateMovieRow(id, obj)
		},
	)
	ui.movieList.OnSelected = func(id widget.ListItemID) {
		ui.movieList.Unselect(id)
		ui.onMovieSelected(id)
	}

	ui.spinner = widget.NewProgressBarInfinite()
	ui.loadingText = widget.NewLabel(ui.localization.GetText(KeyLoading))
	ui.loading = container.NewVBox(ui.loadingText, ui.spinner)
	ui.listView = container.NewBorder(ui.loading, nil, nil, nil, ui.movieList)

	ui.body = container.NewStack()
	ui.window.SetContent(container.NewBorder(header, nil, nil, nil, ui.body))

	ui.render()
}

func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// render shows the screen for the top navigation entry
func (ui *RootUI) render() {
	entry := ui.nav.Current()

	ui.window.SetTitle(entry.Title)
	ui.titleLabel.SetText(entry.Title)

	if ui.detail != nil {
		ui.images.Release(ui.detail.Images()...)
	}

	switch entry.Route {
	case navigation.RouteDetail:
		params, _ := entry.DetailParams()
		ctrl := screen.NewDetailController(params, ui.settings.GetTrailerTemplate())
		ui.detail = NewDetailView(ctrl, ui.localization, ui.images, ui.mobileUI, ui.onOpenTrailer, ui.onBack)
		ui.body.Objects = []fyne.CanvasObject{ui.detail}
		ui.backBtn.Show()
	default:
		ui.detail = nil
		ui.body.Objects = []fyne.CanvasObject{ui.listView}
		ui.backBtn.Hide()
		ui.onListStateChanged()
	}
	ui.body.Refresh()
}

func (ui *RootUI) onListStateChanged() {
	if ui.list.State().IsSettled() {
		ui.spinner.Stop()
		ui.loading.Hide()
	} else {
		ui.loading.Show()
		ui.spinner.Start()
	}
	ui.movieList.Refresh()
}

func (ui *RootUI) updateMovieRow(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*MovieRow)
	if !ok {
		return
	}
	movie, ok := ui.list.Movie(id)
	if !ok {
		return
	}
	row.SetMovie(movie, func() {
		ui.onMovieSelected(id)
	})
}

func (ui *RootUI) onMovieSelected(index int) {
	if ui.nav.Current().Route != navigation.RouteList {
		return
	}
	movie, ok := ui.list.Movie(index)
	if !ok {
		return
	}
	if err := ui.nav.Push(navigation.RouteDetail, navigation.DetailParams{Movie: movie}); err != nil {
		ui.logger.Error("navigation failed", zap.Error(err))
	}
}

func (ui *RootUI) onBack() {
	ui.nav.Pop()
}

func (ui *RootUI) onOpenTrailer(raw string) {
	if err := platform.OpenURL(ui.opener, raw); err != nil {
		ui.logger.Warn("failed to open trailer", zap.String("url", raw), zap.Error(err))
		dialog.ShowInformation(ui.localization.GetText(KeyErrorOpeningLink), err.Error(), ui.window)
	}
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved() {
	ui.applyLanguage(ui.settings.GetLanguage())
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.applyLanguage(langCode)
}

func (ui *RootUI) applyLanguage(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.backBtn.SetText(ui.localization.GetText(KeyBack))
	ui.loadingText.SetText(ui.localization.GetText(KeyLoading))
	ui.createMenu()
	ui.render()
}
