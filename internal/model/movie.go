package model

import (
	"math"
	"strconv"
	"strings"
)

// Rating display constants
const (
	StarGlyph       = "★"
	MaxRating       = 10
	HighRatingAbove = 6.0
)

// RatingLevel classifies a rating for coloring
type RatingLevel int

const (
	RatingLow RatingLevel = iota
	RatingHigh
)

// String returns the string representation of RatingLevel
func (rl RatingLevel) String() string {
	if rl == RatingHigh {
		return "high"
	}
	return "low"
}

// Movie is a single catalog record (MovieSummary). It is received once from the
// catalog endpoint and then only read: list rows and the detail screen render
// from the same value.
type Movie struct {
	ID               int      `json:"id"`
	URL              string   `json:"url"`
	Slug             string   `json:"slug"`
	Title            string   `json:"title"`
	TitleLong        string   `json:"title_long"`
	Year             int      `json:"year"`
	Rating           float64  `json:"rating"`
	Runtime          int      `json:"runtime"`
	Genres           []string `json:"genres"`
	Summary          string   `json:"summary"`
	DescriptionFull  string   `json:"description_full"`
	YTTrailerCode    string   `json:"yt_trailer_code"`
	Language         string   `json:"language"`
	BackgroundImage  string   `json:"background_image"`
	MediumCoverImage string   `json:"medium_cover_image"`
}

// Key returns the identifier used as the list row key
func (m Movie) Key() string {
	return strconv.Itoa(m.ID)
}

// Stars returns the star line for the movie rating
func (m Movie) Stars() string {
	return strings.Repeat(StarGlyph, StarCount(m.Rating))
}

// RatingLevel returns RatingHigh for ratings strictly above 6
func (m Movie) RatingLevel() RatingLevel {
	if m.Rating > HighRatingAbove {
		return RatingHigh
	}
	return RatingLow
}

// RatingText formats the rating in its shortest decimal form ("7", "7.2")
func (m Movie) RatingText() string {
	return strconv.FormatFloat(m.Rating, 'f', -1, 64)
}

// HasTrailer reports whether a trailer identifier is present
func (m Movie) HasTrailer() bool {
	return strings.TrimSpace(m.YTTrailerCode) != ""
}

// DisplayTitle returns the long title, falling back to the short one
func (m Movie) DisplayTitle() string {
	if m.TitleLong != "" {
		return m.TitleLong
	}
	return m.Title
}

// StarCount truncates a rating toward zero and clamps it to [0, MaxRating].
func StarCount(rating float64) int {
	if math.IsNaN(rating) || rating <= 0 {
		return 0
	}
	if rating >= MaxRating {
		return MaxRating
	}
	return int(math.Trunc(rating))
}
