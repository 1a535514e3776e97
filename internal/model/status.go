package model

// ScreenState represents the lifecycle state of a screen
type ScreenState string

const (
	// ScreenStateIdle means the screen exists but has not started loading
	ScreenStateIdle ScreenState = "Idle"

	// ScreenStateLoading means the initial catalog fetch is in flight
	ScreenStateLoading ScreenState = "Loading"

	// ScreenStateLoaded means the screen has its data (or gave up on the fetch)
	ScreenStateLoaded ScreenState = "Loaded"
)

// String returns the string representation of ScreenState
func (s ScreenState) String() string {
	return string(s)
}

// IsSettled returns true once no fetch can change the state anymore
func (s ScreenState) IsSettled() bool {
	return s == ScreenStateLoaded
}
