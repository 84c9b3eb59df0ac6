package main

import (
	"context"
	"log/slog"
	baseHttp "net/http"

	_ "github.com/lib/pq"

	"github.com/AngeelRdz/resume-angeel-dev/metal/kernel"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/endpoint"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/portal"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/scheduler"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	environment, err := kernel.Ignite("./.env", validate)
	if err != nil {
		panic("bootstrapping error > " + err.Error())
	}

	if app, err = kernel.MakeApp(environment, validate); err != nil {
		panic("bootstrapping error > " + err.Error())
	}
}

func main() {
	defer app.CloseDB()
	defer app.CloseLogs()
	defer app.CloseTracing()

	if err := app.Boot(); err != nil {
		panic(err.Error())
	}

	environment := app.GetEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Free-tier Postgres hosting pauses idle databases; an optional cron
	// ping keeps the connection warm.
	if environment.Ping.HasKeepAlive() {
		keepAlive, err := scheduler.New(environment.Ping.KeepAliveCron, func(context.Context) error {
			return app.GetDB().Ping()
		})

		if err != nil {
			panic("scheduler: invalid keep-alive cron: " + err.Error())
		}

		if err = keepAlive.Start(ctx); err != nil {
			panic("scheduler: could not start the keep-alive job: " + err.Error())
		}

		defer keepAlive.Stop()
	}

	serverHandler := endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
		Mux:          app.GetMux(),
		IsProduction: app.IsProduction(),
		DevHost:      environment.App.URL,
		Wrap: func(h baseHttp.Handler) baseHttp.Handler {
			return app.GetSentry().Handler.Handle(h)
		},
	})

	server := &baseHttp.Server{
		Addr:    environment.Network.GetHostURL(),
		Handler: serverHandler,
	}

	if err := endpoint.RunServer(server.Addr, server); err != nil {
		slog.Error("server terminated with an error", "error", err)

		panic("server terminated with an error: " + err.Error())
	}
}
