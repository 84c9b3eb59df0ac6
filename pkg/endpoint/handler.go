package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"

	"github.com/AngeelRdz/resume-angeel-dev/pkg/portal"
)

func NewApiHandler(fn ApiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			slog.Error("API Error", "message", err.Message, "status", err.Status)

			captureApiError(r, err)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(err.Status)

			resp := ErrorResponse{
				Error:  err.Message,
				Status: err.Status,
				Data:   err.Data,
			}

			if result := json.NewEncoder(w).Encode(resp); result != nil {
				slog.Error("Could not encode error response", "error", result)
			}
		}
	}
}

func captureApiError(r *http.Request, apiErr *ApiError) {
	if apiErr == nil {
		return
	}

	errToCapture := error(apiErr)
	if apiErr.Err != nil {
		errToCapture = apiErr.Err
	}

	notify := func(hub *sentry.Hub) {
		hub.WithScope(func(scope *sentry.Scope) {
			enrichScope(scope, r, apiErr)

			scope.SetLevel(getSentryLevel(apiErr.Status))

			hub.CaptureException(errToCapture)
		})
	}

	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		notify(hub)
		return
	}

	notify(sentry.CurrentHub())
}

func enrichScope(scope *sentry.Scope, r *http.Request, apiErr *ApiError) {
	if scope == nil || r == nil || apiErr == nil {
		return
	}

	scope.SetRequest(r)
	scope.SetExtra("api_error_status_text", http.StatusText(apiErr.Status))
	scope.SetExtra("api_error_message", apiErr.Message)

	if requestID := portal.RequestID(r); requestID != "" {
		scope.SetTag("http.request_id", requestID)
	}

	if apiErr.Data != nil {
		scope.SetExtra("api_error_data", apiErr.Data)
	}

	if apiErr.Err != nil {
		scope.SetExtra("api_error_cause", apiErr.Err.Error())
		scope.SetTag("api.error.cause_type", fmt.Sprintf("%T", apiErr.Err))
		scope.SetExtra("api_error_cause_chain", errorChain(apiErr.Err))
	}

	if clientIP := strings.TrimSpace(portal.ParseClientIP(r)); clientIP != "" {
		scope.SetExtra("http_client_ip", clientIP)
	}
}

func errorChain(err error) []string {
	chain := make([]string, 0, 4)

	for current := err; current != nil; current = errors.Unwrap(current) {
		chain = append(chain, current.Error())
	}

	return chain
}

func getSentryLevel(status int) sentry.Level {
	// A missing profile or a rate-limited client is visibility, not an
	// alert; real failures stay at error level.
	switch status {
	case http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusTooManyRequests:
		return sentry.LevelInfo
	default:
		return sentry.LevelError
	}
}
