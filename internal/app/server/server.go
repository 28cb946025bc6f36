package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"pms/internal/domain/performance"
	"pms/internal/domain/reports"
	"pms/internal/domain/session"
	"pms/internal/domain/users"
	"pms/internal/platform/config"
	"pms/internal/platform/db"
	"pms/internal/platform/metrics"
	"pms/internal/transport/http/api"
	performancehandler "pms/internal/transport/http/handlers/performance"
	reportshandler "pms/internal/transport/http/handlers/reports"
	sessionhandler "pms/internal/transport/http/handlers/session"
	"pms/internal/transport/http/middleware"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Metrics *metrics.Collector
	Router  http.Handler
}

// NewLogger installs a JSON slog handler at the configured level as the
// process default.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return logger
}

// New connects to the database, prepares the schema as configured and
// builds the router. The caller owns the returned App and must Close it.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := performance.ParsePolicy(cfg.GoalStatusPolicy)
	if err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}
	if cfg.RunSeed {
		if _, err := db.Seed(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	secret := cfg.SessionSecret
	if secret == "" {
		secret = uuid.NewString()
		slog.Warn("SESSION_SECRET not set, using an ephemeral secret", "env", cfg.Environment)
	}

	usersService := users.NewService(users.NewStore(pool))
	performanceService := performance.NewService(performance.NewStore(pool), usersService, policy)
	sessionService := session.NewService(usersService, secret, cfg.SessionTTL)
	reportsService := reports.NewService(reports.NewStore(pool), performanceService, cfg.ReportTitle)

	app := &App{Config: cfg, DB: pool, Metrics: metrics.New()}

	router := chi.NewRouter()
	router.Use(baseMiddleware(cfg, app.Metrics, sessionService)...)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, app.Metrics.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.QueryTimeout(cfg.DBQueryTimeout))

		sessionhandler.NewHandler(usersService, sessionService).RegisterRoutes(r)
		performancehandler.NewHandler(performanceService, usersService).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService, performanceService, usersService).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	app.Router = router
	return app, nil
}

// baseMiddleware is the stack every route runs through, outermost first.
// Logger must wrap Recoverer to see recovered 500s, and Session must run
// before the limiters that key on the caller.
func baseMiddleware(cfg config.Config, recorder middleware.RequestRecorder, sessions middleware.SessionParser) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Logger(recorder),
		middleware.Recoverer,
		middleware.SecureHeaders(cfg.Environment == "production"),
		middleware.BodyLimit(cfg.MaxBodyBytes),
		middleware.Session(sessions),
		middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute),
		middleware.SensitiveMutationRateLimit(cfg.RateLimitPerMinute, time.Minute),
	}
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}

// Run serves the app until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg config.Config) error {
	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Addr, "policy", cfg.GoalStatusPolicy)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
