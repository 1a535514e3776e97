package platform

// Package platform contains OS integration glue: building external video URLs
// and handing them to the platform's default URL handler.
