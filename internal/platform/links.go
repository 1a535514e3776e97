package platform

import (
	"fmt"
	"net/url"
	"strings"
)

// Supported URL schemes for external links
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// URLOpener opens a URL in the platform's default handler. fyne.App
// satisfies it.
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// TrailerURL interpolates the escaped trailer id into template
func TrailerURL(template, trailerID string) string {
	return fmt.Sprintf(template, url.QueryEscape(strings.TrimSpace(trailerID)))
}

// ParseExternalURL validates that raw is an absolute http(s) URL
func ParseExternalURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty URL")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != SchemeHTTP && u.Scheme != SchemeHTTPS {
		return nil, fmt.Errorf("URL must start with http:// or https://")
	}
	if u.Host == "" {
		return nil, fmt.Errorf("URL has no host: %s", raw)
	}
	return u, nil
}

// OpenURL validates raw and opens it with opener
func OpenURL(opener URLOpener, raw string) error {
	if opener == nil {
		return fmt.Errorf("no URL handler available")
	}
	u, err := ParseExternalURL(raw)
	if err != nil {
		return err
	}
	if err := opener.OpenURL(u); err != nil {
		return fmt.Errorf("open %s: %w", u, err)
	}
	return nil
}
