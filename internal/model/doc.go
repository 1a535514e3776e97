package model

// Package model defines the catalog data carried between screens: the movie
// summary record as served by the catalog endpoint, the presentational helpers
// derived from it (stars, rating level), and the screen state enum.
