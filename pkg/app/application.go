package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"turfly/pkg/config"
	"turfly/pkg/contracts"
	"turfly/pkg/metrics"
	"turfly/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

type Application struct {
	cfg              *config.Config
	server           *http.Server
	handler          http.Handler
	idempotencyStore *middleware.InMemoryIdempotencyStore
	rateLimiter      *middleware.RateLimiter
	onShutdown       []func()
}

type Options struct {
	Store    contracts.Pinger
	Tokens   middleware.TokenParser
	Metrics  *metrics.Metrics
	Handlers []contracts.Handler
}

func NewApplication(cfg *config.Config, opts Options) *Application {
	a := &Application{cfg: cfg}

	mux := http.NewServeMux()
	health := a.healthHandler(opts.Store)
	mux.Handle("/health", health)
	mux.Handle("/ready", health)
	if opts.Metrics != nil {
		mux.Handle("/metrics", opts.Metrics.Handler())
		cfg.Log.Info("Prometheus metrics exposed", "path", "/metrics")
	}
	mux.Handle("/", a.appHandler(opts))

	a.handler = mux
	a.server = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	cfg.Log.Info("HTTP server configured", "port", cfg.Port)
	return a
}

func (a *Application) healthHandler(store contracts.Pinger) http.Handler {
	router := httprouter.New()
	NewHealthHandler(store, a.cfg.Log).RegisterRoutes(router)

	var h http.Handler = router
	h = middleware.RequestLogging(a.cfg.Log)(h)
	h = middleware.Recovery(a.cfg.Log)(h)
	a.cfg.Log.Info("Health endpoints configured with minimal middleware (Recovery + Logging only)")
	return h
}

func (a *Application) appHandler(opts Options) http.Handler {
	router := httprouter.New()
	for _, h := range opts.Handlers {
		h.RegisterRoutes(router)
	}

	a.idempotencyStore = middleware.NewInMemoryIdempotencyStore(a.cfg.IdempotencyTTL)
	a.rateLimiter = middleware.NewRateLimiter(
		a.cfg.RateLimitRequests,
		a.cfg.RateLimitWindow,
		middleware.CallerKey,
		a.cfg.Log,
	)

	// Innermost first: the last wrapper runs first on every request.
	var h http.Handler = router
	h = middleware.Idempotency(a.idempotencyStore, middleware.DefaultIdempotencyHeader)(h)
	h = middleware.RequestTimeout(a.cfg.RequestTimeout)(h)
	h = middleware.RateLimit(a.rateLimiter)(h)
	h = middleware.Authenticate(opts.Tokens, a.cfg.Log)(h)
	h = middleware.ContentTypeValidation(a.cfg.Log)(h)
	h = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(h)
	if opts.Metrics != nil {
		h = middleware.Metrics(opts.Metrics)(h)
	}
	h = middleware.RequestLogging(a.cfg.Log)(h)
	h = middleware.Recovery(a.cfg.Log)(h)
	a.cfg.Log.Info("Application endpoints configured with full middleware stack")
	return h
}

// Handler returns the fully wired HTTP handler. Used by tests.
func (a *Application) Handler() http.Handler {
	return a.handler
}

// OnShutdown registers fn to run after the server has stopped.
func (a *Application) OnShutdown(fn func()) {
	a.onShutdown = append(a.onShutdown, fn)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			a.cfg.Log.Fatal("HTTP server failed", "error", err)
		}

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Error("Could not stop server gracefully", "error", err)
		}
	}

	a.Stop()
	a.cfg.Log.Info("Server stopped gracefully")
}

// Stop releases background workers and runs shutdown hooks.
func (a *Application) Stop() {
	a.idempotencyStore.Stop()
	a.rateLimiter.Stop()
	for i := len(a.onShutdown) - 1; i >= 0; i-- {
		a.onShutdown[i]()
	}
	a.onShutdown = nil
}
