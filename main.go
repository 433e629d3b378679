package main

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
	"github.com/godruoyi/go-snowflake"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/skyhook-sh/site/config"
	"github.com/skyhook-sh/site/content"
	"github.com/skyhook-sh/site/database"
	"github.com/skyhook-sh/site/logger"
	"github.com/skyhook-sh/site/notifier"
	"github.com/skyhook-sh/site/starters"
)

const (
	dbConnectTimeout      = 10 * time.Second
	dbMaxOpenConnections  = 10
	retryMaxElapsedTime   = 15 * time.Minute
	serverIdleTimeout     = 1 * time.Minute
	serverReadTimeout     = 10 * time.Second
	serverWriteTimeout    = 30 * time.Second
	serverShutdownTimeout = 10 * time.Second
)

//go:embed sql/migrations/*.sql
var migrationsFS embed.FS

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.New()
	log := logger.New(cfg)

	// https://snowsta.mp
	startTime, _ := time.Parse(time.RFC3339, "2015-01-01T00:00:00Z")
	snowflake.SetStartTime(startTime)
	snowflake.SetMachineID(1)

	articles, err := content.Load()
	if err != nil {
		log.Error("exiting: failed to load articles: %s", err.Error())
		return
	}
	log.Info("loaded %d articles", len(articles))

	formValidator := validator.New(validator.WithRequiredStructEnabled())
	if err := starters.Validate(formValidator, starters.Catalog); err != nil {
		log.Error("exiting: starter catalog is invalid: %s", err.Error())
		return
	}

	slacknotifier := notifier.NewSlack(cfg.Slack.SiteBotToken, log)

	swappableDB := database.NewSwappableDB()

	apiServer := startHTTPServer(cfg, log, formValidator, content.NewCatalog(articles), swappableDB, slacknotifier)
	metricsServer := startMetricsServer(cfg, log)

	db, err := connectToDatabaseWithRetry(ctx, cfg, log)
	if err != nil {
		log.Error("exiting: could not connect to DB after retries: %s", err.Error())
		return
	}
	defer db.Close()

	swappableDB.Swap(db)

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Error("failed to set dialect: %s", err.Error())
	}
	if err := goose.Up(db, "sql/migrations"); err != nil {
		log.Error("failed to run migrations: %s", err.Error())
	}

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down server: %s", err.Error())
	} else {
		log.Info("server shutdown cleanly")
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down server: %s", err.Error())
	} else {
		log.Info("metrics server shutdown cleanly")
	}
}

type dbConnection struct {
	db *sql.DB
}

func connectToDatabaseWithRetry(ctx context.Context, cfg *config.Config, log logger.Logger) (*sql.DB, error) {
	var conn dbConnection

	connectionString := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Endpoint,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	operation := func() (dbConnection, error) {
		connCtx, cancel := context.WithTimeout(ctx, dbConnectTimeout)
		defer cancel()

		db, err := sql.Open("postgres", connectionString)
		if err != nil {
			log.Warn("failed to open the database connection: %v", err.Error())
			return conn, err
		}

		if err := db.PingContext(connCtx); err != nil {
			log.Warn("failed to ping the database: %v", err.Error())
			return conn, err
		}

		db.SetMaxOpenConns(dbMaxOpenConnections)
		log.Info("connected to database")

		conn.db = db
		return conn, nil
	}

	_, err := backoff.Retry[dbConnection](
		ctx,
		operation,
		backoff.WithMaxElapsedTime(retryMaxElapsedTime),
	)

	return conn.db, err
}

func startHTTPServer(
	cfg *config.Config,
	log logger.Logger,
	formValidator *validator.Validate,
	articles *content.Catalog,
	db database.DBWrapper,
	slacknotifier *notifier.Slack,
) *http.Server {
	formDecoder := form.NewDecoder()

	handler := &Handler{
		config:        cfg,
		formDecoder:   formDecoder,
		formValidator: formValidator,
		articles:      articles,
		slacknotifier: slacknotifier,
		db:            db,
		log:           log,
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		IdleTimeout:  serverIdleTimeout,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		Handler:      newRouter(handler),
	}

	go func() {
		log.Info("server started on %s", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("cannot start server: %s", err.Error())
		}
	}()

	return server
}

func startMetricsServer(
	cfg *config.Config,
	log logger.Logger,
) *http.Server {
	mux := chi.NewRouter()

	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.MetricsPort),
		IdleTimeout:  serverIdleTimeout,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		Handler:      mux,
	}

	go func() {
		log.Info("metrics server started on %s", cfg.App.MetricsPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("cannot start metrics server: %s", err.Error())
		}
	}()

	return server
}
