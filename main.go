package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/finance-tracker/backend/internal/config"
	v1 "github.com/finance-tracker/backend/internal/controllers/v1"
	"github.com/finance-tracker/backend/internal/ledger"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/router"
	"github.com/finance-tracker/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	db, err := connect(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if cfg.SeedDemoData {
		user, err := service.Seed(context.Background(), ledger.New(db, cfg.DBTimeout), time.Now)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		if user.ID == uuid.Nil {
			log.Info().Str("email", service.DemoEmail).Msg("Demo data already present")
		} else {
			log.Info().Str("email", service.DemoEmail).Str("user", user.ID.String()).Msg("Demo data created")
		}
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(v1.NewController(db, cfg.DBTimeout), r.Group("/"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("Listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Msg(err.Error())
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

// connect opens PostgreSQL when a database host is configured and the
// SQLite file otherwise.
func connect(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Postgres() {
		log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("Database")
		return models.ConnectPostgres(cfg.PostgresDSN())
	}

	// Create data directory
	err := os.MkdirAll(filepath.Dir(cfg.DBDSN), os.ModePerm)
	if err != nil {
		return nil, err
	}

	log.Info().Str("file", cfg.DBDSN).Msg("Database")
	return models.Connect(cfg.DBDSN)
}
