package utils

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP resolves the caller's IP address. Proxy headers win over the
// socket address: X-Forwarded-For (first hop), then X-Real-IP, then the
// request's RemoteAddr. Falls back to loopback when nothing usable is set.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}

	if real := strings.TrimSpace(r.Header.Get("X-Real-IP")); real != "" {
		return real
	}

	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			return host
		}
		return r.RemoteAddr
	}

	return "127.0.0.1"
}
