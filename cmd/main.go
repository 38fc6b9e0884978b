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

	"roomsign/internal/handlers"
	"roomsign/internal/ics"
	"roomsign/internal/logger"
	"roomsign/internal/repository"
	"roomsign/internal/repository/db"
	"roomsign/internal/server"
	"roomsign/internal/service"

	"github.com/spf13/viper"
)

// @title        roomsign API
// @version      1.0
// @description  Backend for e-paper room-status signs: calendar-fed display payloads, per-sign configuration, admin API.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// load config.yml first so the log level is configurable
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log_level"))

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos, service.Deps{
		Fetcher:    ics.NewHTTPFetcher(feedTimeout()),
		DefaultTZ:  defaultTimezone(log),
		SigningKey: viper.GetString("auth.signing_key"),
		Log:        log,
	})
	apiHandler := handlers.NewHandler(services, log)

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetDefault("log_level", logger.InfoLevel)
	viper.SetDefault("ics.timeout_seconds", 15)
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "roomsign.db")
		dbPath = "roomsign.db"
	}
	return db.InitDB(dbPath)
}

// defaultTimezone resolves the site-wide fallback zone used when a resource
// has no (valid) zone of its own. An unloadable name falls back to the host
// zone rather than implicit UTC.
func defaultTimezone(log *logger.Logger) *time.Location {
	name := viper.GetString("timezone")
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warnw("invalid default timezone in config; using host zone", "timezone", name, "err", err)
		return time.Local
	}
	return loc
}

func feedTimeout() time.Duration {
	return time.Duration(viper.GetInt("ics.timeout_seconds")) * time.Second
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
