package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"folio/config"
	"folio/docs"
	"folio/shared/constant"
	"folio/shared/logger"
	"folio/transport/http/middleware"
	"folio/transport/http/response"
	"folio/transport/http/router"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	healthCheckTimeout = 3 * time.Second
	readHeaderTimeout  = 10 * time.Second
	startupTimeout     = 30 * time.Second
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

// Hook is a startup, health or shutdown step.
type Hook func(ctx context.Context) error

// Lifecycle holds what runs around the server. Startup hooks run before
// listening and abort the start on error. Workers run until shutdown.
// Health hooks back /health. Shutdown hooks run after the listener closes.
type Lifecycle struct {
	Startup  []Hook
	Workers  []func(ctx context.Context)
	Health   []Hook
	Shutdown []Hook
}

type HTTP struct {
	Config        *config.Config
	Router        router.Router
	AppMiddleware middleware.AppMiddleware
	Lifecycle     Lifecycle

	mu     sync.RWMutex
	state  ServerState
	mux    *chi.Mux
	once   sync.Once
	server *http.Server
}

func New(cfg *config.Config, r router.Router, appMiddleware middleware.AppMiddleware, lifecycle Lifecycle) *HTTP {
	return &HTTP{
		Config:        cfg,
		Router:        r,
		AppMiddleware: appMiddleware,
		Lifecycle:     lifecycle,
	}
}

// Serve runs the startup hooks, starts the workers and listens until a
// SIGTERM or interrupt completes the shutdown sequence.
func (h *HTTP) Serve() {
	startCtx, cancelStart := context.WithTimeout(context.Background(), startupTimeout)
	if err := h.Start(startCtx); err != nil {
		cancelStart()
		log.Fatal().Err(err).Msg("Failed to start up")
	}
	cancelStart()

	workerCtx, stopWorkers := context.WithCancel(context.Background())

	var workers sync.WaitGroup

	for _, worker := range h.Lifecycle.Workers {
		workers.Add(1)

		go func(run func(ctx context.Context)) {
			defer workers.Done()

			run(workerCtx)
		}(worker)
	}

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	done := make(chan struct{})

	go h.respondToSigterm(h.setupGracefulShutdown(), done)

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-done

	stopWorkers()
	workers.Wait()

	h.shutdown()
}

// Start builds the routes and runs the startup hooks.
func (h *HTTP) Start(ctx context.Context) error {
	h.setup()

	return runHooks(ctx, h.Lifecycle.Startup)
}

// ServeHTTP serves a single request without the signal handling of Serve.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) State() ServerState {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.state
}

func (h *HTTP) setState(state ServerState) {
	h.mu.Lock()
	h.state = state
	h.mu.Unlock()
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.setupRoutes()
		h.setState(ServerStateReady)
	})
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(
		chiMiddleware.RequestID,
		logger.AccessLog,
		chiMiddleware.Recoverer,
		h.AppMiddleware.Tracing,
		h.AppMiddleware.CORS(),
		h.AppMiddleware.RateLimit(),
	)

	h.mux.Get("/health", h.health)

	if h.Config.Server.Env != constant.ServerEnvProduction {
		docs.SwaggerInfo.Host = h.Config.Server.Host
		h.mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	h.Router.SetupRoutes(h.mux)
}

func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	switch h.State() {
	case ServerStateReady:
	case ServerStateInGracePeriod, ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)

		return
	default:
		response.WithUnhealthy(w)

		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := runHooks(ctx, h.Lifecycle.Health); err != nil {
		log.Error().Err(err).Msg("health check failed")
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) setupGracefulShutdown() chan os.Signal {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	return serverStateCh
}

func (h *HTTP) respondToSigterm(sig chan os.Signal, done chan struct{}) {
	<-sig

	defer close(done)

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		h.closeServer(0)

		return
	}

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.setState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	h.closeServer(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)
}

// closeServer drains in-flight requests for up to timeout, then closes
// whatever is left.
func (h *HTTP) closeServer(timeout time.Duration) {
	if timeout <= 0 {
		if err := h.server.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close HTTP server")
		}

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("Cleanup period elapsed with requests in flight")

		_ = h.server.Close()
	}
}

func (h *HTTP) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	for _, hook := range h.Lifecycle.Shutdown {
		if err := hook(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown hook failed")
		}
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func runHooks(ctx context.Context, hooks []Hook) error {
	for _, hook := range hooks {
		if err := hook(ctx); err != nil {
			return err
		}
	}

	return nil
}
