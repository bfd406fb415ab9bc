package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gallery_users/internal/handlers"
	"gallery_users/internal/logger"
	"gallery_users/internal/repository"
	"gallery_users/internal/repository/db"
	"gallery_users/internal/server"
	"gallery_users/internal/service"

	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// load config.yml + env before the logger so the level is configurable
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log.level"))

	// required process configuration; absence is fatal, not per-request
	secret := viper.GetString("jwt.secret")
	if secret == "" {
		log.Fatalw("jwt.secret is not set (config or JWT_SECRET env)")
	}
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Fatalw("db.path is not set")
	}

	// open DB
	store, err := db.InitDB(dbPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", dbPath, "err", err)
	}
	defer closeDB(store, log)

	// wire dependencies
	repos := repository.NewRepository(store)
	services := service.NewService(repos, secret)
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	go func() {
		port := viper.GetString("port")
		if port == "" {
			port = "8080"
		}
		log.Infow("API listening", "port", port)
		if err := srv.Run(port, apiHandler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.BindEnv("jwt.secret", "JWT_SECRET"); err != nil {
		return err
	}
	return viper.ReadInConfig()
}

func closeDB(store *sql.DB, log *logger.Logger) {
	if err := store.Close(); err != nil {
		log.Errorw("failed to close sqlite", "err", err)
	}
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
