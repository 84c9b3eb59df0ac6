package middleware

import (
	"github.com/AngeelRdz/resume-angeel-dev/pkg/endpoint"
)

type Pipeline struct {
	PublicMiddleware PublicMiddleware
}

// Chain wraps h right-to-left, so the first middleware listed runs first.
func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}
