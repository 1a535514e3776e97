package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/akioflix/internal/model"
)

// Fixed colors used by the catalog views
var (
	RatingHighColor = color.RGBA{R: 255, G: 255, B: 0, A: 255} // yellow
	RatingLowColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}   // red
	StarsColor      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	MutedTextColor  = color.RGBA{R: 204, G: 204, B: 204, A: 255} // #ccc
	TitleTextColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// RatingColor returns the label color for a rating level
func RatingColor(level model.RatingLevel) color.Color {
	if level == model.RatingHigh {
		return RatingHighColor
	}
	return RatingLowColor
}

// DarkTheme always renders the dark variant of the default theme
type DarkTheme struct{}

// NewDarkTheme creates a new dark theme
func NewDarkTheme() fyne.Theme {
	return &DarkTheme{}
}

// Color returns theme colors
func (t *DarkTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 18, G: 18, B: 18, A: 255}
	case theme.ColorNameForeground:
		return TitleTextColor
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 165, B: 0, A: 255} // orange, trailer link
	case theme.ColorNamePrimary:
		return color.RGBA{R: 229, G: 9, B: 20, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *DarkTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DarkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *DarkTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return TitleTextSize
	case theme.SizeNameScrollBar:
		return 12
	}

	return theme.DefaultTheme().Size(name)
}
