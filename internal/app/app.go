package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Karan-Chaurasia/AI-Dictionary/internal/adapter/provider/freedict"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/adapter/provider/spoonacular"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/classify"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/config"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/domain"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/service/lookup"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/spell"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/transport/middleware"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/transport/rest"
)

const limiterCleanupInterval = time.Minute

// App holds the wired lookup service and its HTTP surface.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	recipes *spoonacular.Provider
	svc     *lookup.Service
	limiter *middleware.RateLimiter
	handler http.Handler
}

// New wires providers, the lookup service and the HTTP handler.
// Call Close when done.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	speller, err := spell.NewSuggester(cfg.Spell.MaxLength)
	if err != nil {
		return nil, fmt.Errorf("app: load spell dictionary: %w", err)
	}

	recipes := spoonacular.NewProvider(cfg.Recipe, logger)
	dictionary := freedict.NewProvider(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout, logger)
	svc := lookup.NewService(logger, recipes, dictionary, speller, classify.New())

	a := &App{cfg: cfg, log: logger, recipes: recipes, svc: svc}
	a.handler = a.buildHandler()
	return a, nil
}

func (a *App) buildHandler() http.Handler {
	mux := http.NewServeMux()
	rest.Routes(mux,
		rest.NewLookupHandler(a.svc, a.log),
		rest.NewHealthHandler(a.recipes, BuildVersion()),
	)

	var limit middleware.Middleware
	if rpm := a.cfg.RateLimit.RequestsPerMinute; rpm > 0 {
		a.limiter = middleware.NewRateLimiter(rpm, limiterCleanupInterval)
		limit = a.limiter.Limit()
	}
	return middleware.Chain(
		middleware.Recovery(a.log),
		middleware.RequestID(),
		middleware.ClientIP(a.cfg.Server.TrustProxy),
		middleware.Logger(a.log),
		limit,
	)(mux)
}

// Handler returns the root HTTP handler with middleware applied.
func (a *App) Handler() http.Handler { return a.handler }

// Lookup answers one query without going through HTTP.
func (a *App) Lookup(ctx context.Context, query string) domain.LookupResult {
	return a.svc.Lookup(ctx, query)
}

// RecipeEnabled reports whether the recipe feature has a usable key.
func (a *App) RecipeEnabled() bool { return a.recipes.Enabled() }

// Close releases background resources.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
}

// Serve answers HTTP on ln until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// Run is the server entry point. It loads configuration, initializes the
// logger, wires the application and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.RecipeEnabled() {
		logger.Warn("recipe search disabled: no Spoonacular API key configured")
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("app: listen %s: %w", addr, err)
	}
	return a.Serve(ctx, ln)
}
