// In file: cmd/gateway/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/dileep-u-k/toolhub/internal/llm"
	"github.com/dileep-u-k/toolhub/internal/logging"
	"github.com/dileep-u-k/toolhub/internal/session"
	"github.com/dileep-u-k/toolhub/internal/tools"
	"github.com/dileep-u-k/toolhub/internal/version"
)

// main is the entry point for the application.
// Its primary role is the "Composition Root": it loads configuration,
// initializes all services, injects dependencies, and starts the server.
func main() {
	// 1. LOAD CONFIGURATION
	cfg, err := LoadConfig()
	if err != nil {
		logging.New(nil, "info").Fatal().Err(err).Msg("configuration error")
	}
	log := logging.New(nil, cfg.LogLevel)
	log.Info().Str("version", version.Version).Str("commit", version.Commit).Msg("starting toolhub gateway")
	if !cfg.DotenvLoaded && cfg.GinMode != gin.ReleaseMode {
		log.Warn().Msg("no .env file found for local development")
	}

	// 2. INITIALIZE SERVICES
	catalog, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load tool catalog")
	}
	log.Info().Int("tools", catalog.Len()).Str("source", catalogSource(cfg.CatalogFile)).Msg("catalog loaded")

	store, profiler, closeRedis := initializeStorage(cfg, log)
	defer closeRedis()

	gateway := llm.NewGateway(cfg.DefaultAPIKey,
		llm.WithModel(cfg.Model),
		llm.WithLogger(log.Sub("llm.gateway")),
	)
	if !gateway.HasDefaultCredential() {
		log.Warn().Msg("GEMINI_API_KEY is not set; invocations need a custom key")
	}

	handler := NewGatewayHandler(catalog, gateway, store, profiler, log.Sub("http"))

	// 3. SETUP AND RUN THE WEB SERVER
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	engine := newEngine(handler, cfg.AllowedOrigins, log.Sub("http"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	runServerWithGracefulShutdown(srv, log)
}

// newEngine builds the gin engine with the standard middleware chain.
func newEngine(handler *GatewayHandler, allowedOrigins []string, log *logging.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		corsMiddleware(allowedOrigins),
		loggingMiddleware(log),
	)
	handler.Register(engine)
	return engine
}

// loadCatalog reads the catalog file, or returns the built-in catalog when
// no file is configured.
func loadCatalog(path string) (*tools.Catalog, error) {
	if path == "" {
		return tools.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()
	return tools.Load(f)
}

func catalogSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// initializeStorage connects to Redis when configured. Without Redis the
// session store lives in memory and profiling is disabled.
func initializeStorage(cfg *AppConfig, log *logging.Logger) (session.CredentialStore, *llm.Profiler, func()) {
	if cfg.RedisAddr == "" {
		log.Warn().Msg("REDIS_ADDR is not set; sessions are kept in memory and profiling is disabled")
		return session.NewMemoryStore(), nil, func() {}
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("could not connect to Redis")
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("connected to Redis")

	closeFn := func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close Redis client")
		}
	}
	return session.NewRedisStore(rdb), llm.NewProfiler(rdb, log.Sub("llm.profiler")), closeFn
}

// runServerWithGracefulShutdown handles the server lifecycle.
func runServerWithGracefulShutdown(srv *http.Server, log *logging.Logger) {
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("gateway is listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		return
	}
	log.Info().Msg("server exited gracefully")
}
