package kernel

import (
	"fmt"
	baseHttp "net/http"

	"github.com/AngeelRdz/resume-angeel-dev/database"
	"github.com/AngeelRdz/resume-angeel-dev/handler"
	"github.com/AngeelRdz/resume-angeel-dev/metal/env"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/endpoint"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/middleware"
)

type Router struct {
	Env      *env.Environment
	Mux      *baseHttp.ServeMux
	Pipeline middleware.Pipeline
	Db       *database.Connection
	app      *App
}

// PublicPipelineFor wraps an anonymous read endpoint with the public
// protections (per-IP rate limiting).
func (r *Router) PublicPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.PublicMiddleware.Handle,
		),
	)
}

func (r *Router) Profile() {
	abstract := handler.MakeProfileHandler(r.app.GetProfileUseCase())

	show := r.PublicPipelineFor(abstract.Handle)

	r.Mux.HandleFunc("GET /api/profile", show)
}

func (r *Router) Home() error {
	abstract, err := handler.MakeHomeHandler(
		r.app.GetProfileUseCase(),
		r.Env.Intl.GetDefaultLocale(),
	)

	if err != nil {
		return fmt.Errorf("bootstrapping error > could not build the home handler: %w", err)
	}

	show := r.PublicPipelineFor(abstract.Handle)

	r.Mux.HandleFunc("GET /api/home", show)

	return nil
}

func (r *Router) KeepAlive() {
	abstract := handler.MakeKeepAliveHandler(&r.Env.Ping)

	apiHandler := endpoint.NewApiHandler(
		r.Pipeline.Chain(abstract.Handle),
	)

	r.Mux.HandleFunc("GET /ping", apiHandler)
}

func (r *Router) KeepAliveDB() {
	abstract := handler.MakeKeepAliveDBHandler(&r.Env.Ping, r.Db)

	apiHandler := endpoint.NewApiHandler(
		r.Pipeline.Chain(abstract.Handle),
	)

	r.Mux.HandleFunc("GET /ping-db", apiHandler)
}
