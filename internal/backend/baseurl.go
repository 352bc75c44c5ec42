package backend

import (
	"net"
	"strings"
)

// ResolveBaseURL picks the backend base URL for the host the page was served
// on: loopback hosts get the development backend, anything else production.
// An explicit override wins over both.
func ResolveBaseURL(host, devURL, prodURL, override string) string {
	if override = strings.TrimSpace(override); override != "" {
		return override
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	switch strings.ToLower(strings.TrimSpace(host)) {
	case "localhost", "127.0.0.1":
		return devURL
	}
	return prodURL
}
