package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sunitj/fastx-mcp/config"
	"github.com/sunitj/fastx-mcp/internal/audit"
	"github.com/sunitj/fastx-mcp/internal/seqkit"
	"github.com/sunitj/fastx-mcp/internal/server"
)

var serveAddr string

// serveCmd runs the HTTP server until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the FastX-MCP HTTP server",
	Long: `Run the FastX-MCP HTTP server.

The server exposes sequence conversion and manipulation endpoints, the
seqkit bridge, the in-memory audit log and the MCP tool manifest. seqkit
is probed on startup; when the binary is missing the server still starts
and the /seqkit endpoints report unavailable.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "address to bind, ex: :8000 (overrides the config file)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	logger := newLogger(cfg.LogLevel)

	auditLog := audit.NewLog(cfg.AuditCapacity)
	bridge := seqkit.New(
		cfg.Seqkit.Binary,
		cfg.Seqkit.ProbeTimeout,
		cfg.Seqkit.StatsTimeout,
		cfg.Seqkit.CommandTimeout,
		logger,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if bridge.Available(ctx) {
		logger.Info("seqkit found", "version", bridge.Version(ctx))
	} else {
		logger.Warn("seqkit not found, /seqkit endpoints will return 503", "binary", cfg.Seqkit.Binary)
	}

	srv := server.New(cfg, logger, auditLog, bridge)
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}
