package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"folio.dev/internal/catalog"
	"folio.dev/internal/config"
	"folio.dev/internal/content"
	"folio.dev/internal/handlers"
	"folio.dev/internal/logging"
	"folio.dev/internal/metrics"
	"folio.dev/internal/services"
	"folio.dev/internal/templates"
	"folio.dev/internal/watch"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(logging.Config{Component: "server", Level: cfg.LogLevel})
	if err != nil {
		log.Fatalf("init zap logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	m := metrics.New()

	source := cfg.Source()
	if hs, ok := source.(catalog.HTTPSource); ok {
		hs.Client = &http.Client{Timeout: cfg.FetchTimeout}
		source = hs
	}
	loader := catalog.NewLoader(source, cfg.Policy(), logger)

	// A failed initial load is not fatal: pages answer with an inline error
	// until a reload succeeds
	holder := catalog.NewHolder(nil)
	store := content.NewStore(cfg.ContentDir, content.NewRenderer(cfg.BasePath))
	reloader := services.NewReloadService(loader, holder, store, m, logger)
	if err := reloader.Reload(ctx); err != nil {
		logger.Error("initial catalog load failed", zap.Error(err))
	}

	pages, err := templates.New()
	if err != nil {
		return err
	}

	projectService := services.NewProjectService(holder)
	router := handlers.SetupRoutes(cfg, handlers.Deps{
		Projects: projectService,
		Details:  services.NewDetailService(projectService, store, logger),
		Pages:    pages,
		Metrics:  m,
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", zap.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.Watch && cfg.DataURL == "" {
		w, err := newWatcher(cfg, reloader, logger)
		if err != nil {
			logger.Warn("hot reload disabled", zap.Error(err))
		} else {
			g.Go(func() error { return w.Run(gctx) })
		}
	}

	return g.Wait()
}

func newWatcher(cfg *config.Config, reloader *services.ReloadService, logger *zap.Logger) (*watch.Watcher, error) {
	w, err := watch.New(cfg.Debounce, reloader.Reload, logger)
	if err != nil {
		return nil, err
	}
	if err := w.AddFile(cfg.DataFile); err != nil {
		_ = w.Close()
		return nil, err
	}
	detailsDir := filepath.Join(cfg.ContentDir, "projects")
	switch err := w.AddDir(detailsDir); {
	case err != nil:
		logger.Warn("details directory not watched, restart to reload details", zap.String("dir", detailsDir), zap.Error(err))
	case w.Pending(detailsDir):
		logger.Info("details directory missing, watching for its creation", zap.String("dir", detailsDir))
	}
	return w, nil
}
