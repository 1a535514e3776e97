package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Layout sizing (MovieRow / DetailView)
const (
	CoverWidth  float32 = 100
	CoverHeight float32 = 130

	// Mobile-specific sizing
	MobileCoverWidth  float32 = 80
	MobileCoverHeight float32 = 104

	BannerHeight float32 = 170
)

// Background banner opacity
const (
	BannerImageTranslucency = 0.6
)

// Text sizes
const (
	TitleTextSize  float32 = 18
	YearTextSize   float32 = 14
	RatingTextSize float32 = 12
)

// Image loading
const (
	ImageFetchTimeout = 30 * time.Second
)
