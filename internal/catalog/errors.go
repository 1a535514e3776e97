package catalog

import (
	"errors"
	"fmt"
)

// ErrMalformedEnvelope is matched by every FetchError caused by an unexpected
// response shape.
var ErrMalformedEnvelope = errors.New("malformed catalog envelope")

// FailureKind tells which stage of the fetch failed
type FailureKind string

const (
	KindNetwork FailureKind = "network"
	KindStatus  FailureKind = "status"
	KindDecode  FailureKind = "decode"
	KindAPI     FailureKind = "api"
)

// FetchError is the single failure kind of the catalog loader. Its message is
// shown to the user verbatim.
type FetchError struct {
	Kind       FailureKind
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e == nil {
		return "catalog fetch failed"
	}
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("request failed with status code %d", e.StatusCode)
	case KindAPI:
		return fmt.Sprintf("catalog error: %v", e.Err)
	case KindDecode:
		return fmt.Sprintf("invalid catalog response: %v", e.Err)
	}
	if e.Err == nil {
		return "network error"
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func malformed(url, format string, args ...any) *FetchError {
	return &FetchError{
		Kind: KindDecode,
		URL:  url,
		Err:  fmt.Errorf("%w: "+format, append([]any{ErrMalformedEnvelope}, args...)...),
	}
}
