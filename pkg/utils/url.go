package utils

import (
	"net/http"
	"strings"
)

// BaseURL returns the scheme and host clients used to reach the API,
// without a trailing slash. A configured public URL always wins.
func BaseURL(r *http.Request, publicBaseURL string) string {
	if publicBaseURL != "" {
		return strings.TrimSuffix(publicBaseURL, "/")
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := firstHeaderValue(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		scheme = proto
	}

	host := r.Host
	if forwarded := firstHeaderValue(r.Header.Get("X-Forwarded-Host")); forwarded != "" {
		host = forwarded
	}

	return scheme + "://" + host
}

func firstHeaderValue(value string) string {
	if i := strings.IndexByte(value, ','); i >= 0 {
		value = value[:i]
	}
	return strings.TrimSpace(value)
}
