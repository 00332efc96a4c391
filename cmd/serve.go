package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ainews-journalist/internal/api"
	"ainews-journalist/internal/storage"
	"ainews-journalist/worker"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Refresh the document periodically and serve it over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		interval, err := time.ParseDuration(cfg.Server.RefreshInterval)
		if err != nil {
			return err
		}
		b, err := newBuilder(cfg)
		if err != nil {
			return err
		}

		mem := storage.NewMemoryStore()
		sinks := []storage.Sink{mem, storage.NewFileStore(cfg.Output.Path)}
		extra, rdb := secondarySinks(cfg)
		if rdb != nil {
			defer rdb.Close()
		}
		sinks = append(sinks, extra...)

		refresher := &worker.Refresher{Builder: b, Sinks: sinks, Interval: interval}
		httpSrv := &worker.HTTPServer{Addr: cfg.Server.Addr, Handler: api.NewServer(api.NewHandler(mem))}

		// Signal handling for systemd
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		slog.Info("serve: starting", "addr", cfg.Server.Addr, "refresh_interval", interval)
		return worker.NewManager(refresher, httpSrv).Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
