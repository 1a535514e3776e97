package navigation

// Package navigation implements the screen stack: named routes, typed route
// parameters, and push/pop with change notification for the view layer.
