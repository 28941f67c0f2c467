package entrypoint

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
	"go.uber.org/zap"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/database/genres"
	http_controllers "github.com/mrlokans/catalog/internal/http"
	"github.com/mrlokans/catalog/internal/logging"
	"github.com/mrlokans/catalog/internal/metrics"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT or SIGTERM, then drains in-flight
// requests for at most cfg.Global.ShutdownTimeoutInSeconds.
func Serve(router http.Handler, cfg *config.Config, log *zap.Logger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if onShutdown != nil {
			onShutdown(context.Background())
		}
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info("Shutting down server", zap.String("signal", sig.String()), zap.Duration("timeout", timeout))
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Info("Server exiting")
	return nil
}

// Run wires the database, repositories and router, then serves until shutdown.
func Run(cfg *config.Config, version string) error {
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("Starting catalog", zap.String("version", version))

	if cfg.HTTP.GinMode != "" {
		gin.SetMode(cfg.HTTP.GinMode)
	}

	db, err := database.NewDatabase(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	router, err := http_controllers.NewRouter(http_controllers.RouterConfig{
		BookStore:   books.NewRepository(db.DB),
		AuthorStore: authors.NewRepository(db.DB),
		GenreStore:  genres.NewRepository(db.DB),
		Database:    db,
		Logger:      log,
		Metrics:     metrics.New(),
		CORS:        cfg.CORS,
		Version:     version,
	})
	if err != nil {
		db.Close()
		return err
	}

	// Close the database only after in-flight requests have drained
	onShutdown := func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}

	return Serve(router, cfg, log, onShutdown)
}

// Seed creates the schema and loads the default catalog, failing on any error.
func Seed(cfg *config.Config) (database.Stats, error) {
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return database.Stats{}, err
	}
	defer log.Sync()

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return database.Stats{}, err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return database.Stats{}, err
	}

	ctx := context.Background()
	if err := db.Seed(ctx); err != nil {
		return database.Stats{}, fmt.Errorf("failed to seed catalog: %w", err)
	}
	return db.Stats(ctx)
}
