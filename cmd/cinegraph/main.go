// Command cinegraph serves the movies graph HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/api"
	"github.com/cinegraph/cinegraph/internal/config"
	"github.com/cinegraph/cinegraph/internal/graphdb"
	"github.com/cinegraph/cinegraph/internal/service"
	"github.com/cinegraph/cinegraph/internal/store"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")

		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := graphdb.Connect(connectCtx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword.Value(), cfg.Neo4jDatabase)
	if err != nil {
		log.WithError(err).Fatal("connecting to neo4j")
	}

	log.WithFields(logrus.Fields{
		"uri":      cfg.Neo4jURI,
		"database": db.Database(),
	}).Info("connected to neo4j")

	base := store.Base{DB: db, Log: log}
	movies := service.NewMovieService(store.NewMovieStore(base), log)
	graph := service.NewGraphService(store.NewGraphStore(base), log)

	router := api.NewRouter(ctx, &api.RouterDeps{
		Log:            log,
		DB:             db,
		Movies:         movies,
		Graph:          graph,
		CORSOrigins:    cfg.CORSOrigins,
		Version:        config.Version,
		RequestTimeout: cfg.RequestTimeout,
		MaxConcurrency: cfg.MaxConcurrency,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown")
	}

	if err := db.Close(shutdownCtx); err != nil {
		log.WithError(err).Error("closing neo4j driver")
	}

	log.Info("server stopped")
}
