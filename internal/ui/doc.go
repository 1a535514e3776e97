package ui

// Package ui contains the Fyne user interface: the navigation host with its
// header, the movie list rows, and the detail screen. Screen logic lives in the
// screen package; this package only composes widgets. All UI strings are
// localized via Localization.
