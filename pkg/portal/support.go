package portal

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
)

func CloseWithLog(c io.Closer) {
	if c == nil {
		return
	}

	if err := c.Close(); err != nil {
		slog.Error("failed to close resource", "err", err)
	}
}

// RequestID resolves the request id from the context first and falls back to
// the inbound header.
func RequestID(r *http.Request) string {
	if r == nil {
		return ""
	}

	if v, ok := r.Context().Value(RequestIdKey).(string); ok {
		if id := strings.TrimSpace(v); id != "" {
			return id
		}
	}

	return strings.TrimSpace(r.Header.Get(RequestIDHeader))
}

// ParseClientIP returns the caller address, honouring the usual proxy
// headers.
func ParseClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}

	if v := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); v != "" {
		parts := strings.Split(v, ",")

		return strings.TrimSpace(parts[0])
	}

	if v := strings.TrimSpace(r.Header.Get("X-Real-IP")); v != "" {
		return v
	}

	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx > 0 {
		host = host[:idx]
	}

	return strings.TrimSpace(host)
}
