package kernel

import (
	baseHttp "net/http"
	"sync"

	"github.com/AngeelRdz/resume-angeel-dev/database"
	"github.com/AngeelRdz/resume-angeel-dev/database/repository"
	"github.com/AngeelRdz/resume-angeel-dev/metal/env"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/llogs"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/middleware"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/portal"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/profile"
)

// App is the composition root. Construction wires the expensive, process-wide
// resources (database connection, logs, Sentry, tracing); the per-domain
// collaborators are built lazily and can be discarded with Fresh without
// touching the connection.
type App struct {
	router    *Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
	db        *database.Connection
	tracing   *portal.TracerProvider

	mu         sync.Mutex
	profiles   *repository.Profiles
	getProfile *profile.GetProfile
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	db := MakeDbConnection(env)

	tracing, err := portal.NewTracerProvider(env)
	if err != nil {
		return nil, err
	}

	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
		db:        db,
		tracing:   tracing,
	}

	router := Router{
		Env: env,
		Db:  db,
		Mux: baseHttp.NewServeMux(),
		Pipeline: middleware.Pipeline{
			PublicMiddleware: middleware.MakePublicMiddleware(),
		},
		app: &app,
	}

	app.SetRouter(router)

	return &app, nil
}

func (a *App) Boot() error {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := a.router

	router.Profile()
	router.KeepAlive()
	router.KeepAliveDB()

	return router.Home()
}

// Profiles returns the repository singleton, building it on first use.
func (a *App) Profiles() *repository.Profiles {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.profiles == nil {
		a.profiles = &repository.Profiles{DB: a.db}
	}

	return a.profiles
}

// GetProfileUseCase returns the use-case singleton, building it on first use.
func (a *App) GetProfileUseCase() profile.GetProfile {
	uc := a.getProfileLocked()

	return *uc
}

func (a *App) getProfileLocked() *profile.GetProfile {
	repo := a.Profiles()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.getProfile == nil {
		uc := profile.MakeGetProfile(repo)
		a.getProfile = &uc
	}

	return a.getProfile
}

// Fresh drops the lazily-built collaborators so the next access rebuilds
// them. The database connection deliberately survives: the pool is expensive
// and safe to reuse.
func (a *App) Fresh() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.profiles = nil
	a.getProfile = nil
}
