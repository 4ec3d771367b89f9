package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"

	"scrapegate/core"
	"scrapegate/modules/auth"
	"scrapegate/modules/scrape"
	"scrapegate/pkg/config"
	"scrapegate/pkg/cookie"
	"scrapegate/pkg/extractor"
	"scrapegate/pkg/fetcher"
	"scrapegate/pkg/gotrue"
	"scrapegate/pkg/httpserver"
	"scrapegate/pkg/logger"
	"scrapegate/pkg/requestid"
)

type appConfig struct {
	Log     logger.Config
	Server  httpserver.Config
	Cookie  cookie.Config
	Backend gotrue.Config
	Fetcher fetcher.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Log,
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	// All clients are constructed once and injected; handlers share nothing
	// mutable across requests.
	identity := gotrue.NewFromConfig(cfg.Backend)
	cookies := cookie.NewFromConfig(cfg.Cookie)
	fetchClient := fetcher.NewFromConfig(cfg.Fetcher)

	sessions := auth.NewSessionIssuer(cookies)
	authSvc := auth.NewService(identity, sessions, log)
	scrapeSvc := scrape.NewService(fetchClient, extractor.New(), log)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(core.RequestLogger(log))
	r.Use(core.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(context.Background(), log))
	r.Mount("/auth", authSvc.Handle())

	r.Group(func(protected chi.Router) {
		protected.Use(auth.Middleware(identity, sessions))
		protected.Use(auth.RequireAuth)
		protected.Mount("/scrape", scrapeSvc.Handle())
	})

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}
