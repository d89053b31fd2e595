package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/crimedash/internal/dataset"
	"github.com/mkarlsen/crimedash/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"data_dir", cfg.Data.Dir,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	store, err := buildStore(cmd.Context())
	if err != nil {
		// A bad manifest is a config error and fatal. A missing data file
		// is a degraded state: the server still comes up and every page
		// shows the blocking warning.
		if store == nil {
			return err
		}
		slog.Warn("initial data load failed, serving data-unavailable state", "error", err)
	} else {
		snap, _ := store.Snapshot()
		slog.Info("datasets loaded",
			"snapshot_id", snap.ID.String(),
			"datasets", snap.Len(),
		)
	}

	server := web.NewServer(store, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("server stopped")
	return nil
}

// buildStore wires the registry (optionally replaced by a manifest), the
// loader, and the snapshot store, then runs the initial load. The store
// is returned even when the load fails so the server can surface the
// data-unavailable state.
func buildStore(ctx context.Context) (*dataset.Store, error) {
	if cfg.Data.Manifest != "" {
		sources, err := dataset.LoadManifest(cfg.Data.Manifest)
		if err != nil {
			return nil, err
		}
		dataset.Replace(sources)
		slog.Info("dataset manifest applied",
			"manifest", cfg.Data.Manifest,
			"datasets", len(sources),
		)
	} else {
		slog.Info("using built-in dataset registry", "datasets", dataset.Count())
	}

	loader := dataset.NewLoader(cfg.Data.Dir, dataset.All())
	store := dataset.NewStore(loader)

	if err := store.Load(ctx); err != nil {
		return store, err
	}
	return store, nil
}
