package catalog

// Package catalog implements the catalog loader: a single GET against the
// YTS list endpoint, decoding of the {data: {movies: [...]}} envelope, and the
// FetchError taxonomy surfaced to the user when any of that goes wrong.
