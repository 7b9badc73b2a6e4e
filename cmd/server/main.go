package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamecatalog/backend/internal/auth"
	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/database"
	"gamecatalog/backend/internal/handler"
	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/logging"
	"gamecatalog/backend/internal/preferences"
	"gamecatalog/backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	// Swagger imports
	_ "gamecatalog/backend/docs"
)

// @title           Game Catalog API
// @version         1.0
// @description     Studios and the games they develop.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		bootLog := logging.New("info")
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server exited")
		stop()
		os.Exit(1)
	}
}

// app is the wired server: router plus the resources it owns.
type app struct {
	router *gin.Engine
	close  func() error
}

// newApp connects storage, prepares the schema and wires every handler.
// Without the schema nothing else can work, so a failure there is returned.
func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	db, err := database.Connect(cfg.DatabaseDriver, cfg.DatabaseURL, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	closeDB := func() error { return database.Close(db) }

	if err := database.EnsureSchema(ctx, db, cfg.DatabaseDriver, log); err != nil {
		_ = closeDB()
		return nil, fmt.Errorf("prepare database schema: %w", err)
	}

	prefs, err := preferences.Open(cfg.PreferencesFile)
	if err != nil {
		_ = closeDB()
		return nil, fmt.Errorf("open preferences: %w", err)
	}

	if !cfg.AuthEnabled() {
		log.Warn().Msg("ADMIN_PASSWORD_HASH is not set; write endpoints are unauthenticated")
	}

	h := handler.New(handler.Deps{
		Studios:           repository.NewStudioRepo(db),
		Games:             repository.NewGameRepo(db),
		Preferences:       prefs,
		Hub:               hub.New(),
		Policy:            catalog.NewPolicy(cfg.DefaultReleaseYear),
		Logger:            log,
		JWTSecret:         cfg.JWTSecret,
		AdminPasswordHash: cfg.AdminPasswordHash,
	})

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(logging.Middleware(log), gin.Recovery())
	handler.Register(router, h, auth.Middleware(cfg.JWTSecret, cfg.AuthEnabled()))

	return &app{router: router, close: closeDB}, nil
}

// run serves until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// Migrations run to completion even if a signal arrives during startup.
	a, err := newApp(context.WithoutCancel(ctx), cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	// Event streams only end when their request context does, so shutdown
	// cancels the base context every request derives from.
	baseCtx, cancelRequests := context.WithCancel(context.Background())
	defer cancelRequests()
	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     a.router,
		BaseContext: func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancelRequests)

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server is running")
		log.Info().Msgf("Swagger UI is available at http://localhost:%s/swagger/index.html", cfg.Port)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
