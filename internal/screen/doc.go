package screen

// Package screen holds the toolkit-independent screen controllers. The list
// controller owns the one catalog fetch and its cancellation; the detail
// controller derives everything from the forwarded navigation parameter.
