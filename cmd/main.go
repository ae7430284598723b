package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"item-api/internal/handlers"
	"item-api/internal/logger"
	"item-api/internal/models"
	"item-api/internal/repository"
	"item-api/internal/repository/db"
	"item-api/internal/server"
	"item-api/internal/service"

	"github.com/spf13/viper"
)

const (
	defaultPort       = "5000"
	defaultSigningKey = "your_secret_key" // override via auth.signing_key in config
)

func main() {
	// load config.yml first so the log level comes from it
	cfgErr := loadConfig()

	log := logger.Get(logLevel())

	if cfgErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(cfgErr, &notFound) {
			log.Infow("no config file found; using defaults")
		} else {
			log.Fatalw("error reading config", "err", cfgErr)
		}
	}

	// open the audit database (in-memory unless configured otherwise)
	auditDB, err := openAuditDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := auditDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(auditDB, seedUsers(log))
	services := service.NewService(repos, authConfig())
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

func logLevel() string {
	if lvl := viper.GetString("log_level"); lvl != "" {
		return lvl
	}
	return logger.InfoLevel
}

func authConfig() service.AuthConfig {
	key := viper.GetString("auth.signing_key")
	if key == "" {
		key = defaultSigningKey
	}
	return service.AuthConfig{
		SigningKey: key,
		TokenTTL:   viper.GetDuration("auth.token_ttl"), // zero falls back to 1h
	}
}

// seedUsers reads the static account list from config, falling back to the
// built-in pair.
func seedUsers(log *logger.Logger) []models.User {
	var users []models.User
	if err := viper.UnmarshalKey("users", &users); err != nil {
		log.Warnw("invalid users config; using defaults", "err", err)
		return nil
	}
	return users
}

func openAuditDB(log *logger.Logger) (*sql.DB, error) {
	path := viper.GetString("audit.db_path")
	if path == "" {
		log.Infow("audit.db_path not set; keeping audit trail in memory")
		path = db.DefaultPath
	}
	return db.InitDB(path)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = defaultPort
		}
		log.Infow("starting server", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
