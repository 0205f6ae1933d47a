package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ganot/creativehub/internal/config"
	"github.com/ganot/creativehub/internal/events"
	"github.com/ganot/creativehub/internal/mcp"
	"github.com/ganot/creativehub/internal/metrics"
	"github.com/ganot/creativehub/internal/seed"
	"github.com/ganot/creativehub/internal/sqlite"
	"github.com/ganot/creativehub/internal/store"
	"github.com/ganot/creativehub/internal/transport"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	if cfg.Log.Path != "" {
		fileWriter, err := newLogFileWriter(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer fileWriter.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	mode, err := store.ParseMode(cfg.Store.Mode)
	if err != nil {
		return err
	}

	var snapshots *sqlite.SnapshotRepository
	if cfg.DB.Path != "" {
		if err := ensureDBDir(cfg.DB.Path); err != nil {
			return fmt.Errorf("prepare database path: %w", err)
		}
		db, err := sqlite.New(cfg.DB.Path)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		if err := db.RunMigrations(); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		snapshots = sqlite.NewSnapshotRepository(db)
	}

	var source seed.Snapshots
	if snapshots != nil {
		source = snapshots
	}
	initial, err := seed.Restore(ctx, source, cfg.Store.SeedPath, time.Now(), logger)
	if err != nil {
		return err
	}
	if issues := seed.Check(initial); len(issues) > 0 {
		for _, issue := range issues {
			logger.Warn("initial state issue", "issue", issue.String())
		}
	}

	s := store.New(initial, store.WithMode(mode), store.WithLogger(logger))

	m := metrics.New(prometheus.DefaultRegisterer)
	m.SetState(s.Snapshot())
	s.Subscribe(m.Observe)

	if snapshots != nil {
		s.Subscribe(store.PersistTo(snapshots, logger))
	}

	if cfg.Events.AMQPURL != "" {
		conn, err := events.Dial(cfg.Events.AMQPURL, cfg.Events.Exchange)
		if err != nil {
			return err
		}
		defer conn.Close()
		publisher := events.NewPublisher(conn.Channel(), cfg.Events.Exchange, logger)
		s.Subscribe(publisher.Listener())
		logger.Info("publishing change events", "exchange", cfg.Events.Exchange)
	}

	handler := mcp.NewHandler(s, m)
	mcpServer := mcp.NewServer(mcp.Config{
		Handler:       handler,
		AuthToken:     cfg.Auth.Token,
		TransportMode: cfg.Transport.Mode,
		Version:       version,
		Logger:        logger,
	})

	logger.Info("store ready", "mode", s.Mode(), "version", s.Version(), "persisted", snapshots != nil)

	if cfg.Transport.Mode == "stdio" {
		return runStdioMode(logger, mcpServer)
	}
	return runHTTPMode(logger, mcpServer, handler, cfg)
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) error {
	logger.Info("starting stdio transport", "auth", "disabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server: %w", err)
	}
	logger.Info("shutting down")
	return nil
}

func runHTTPMode(logger *slog.Logger, mcpServer *sdkmcp.Server, handler *mcp.Handler, cfg config.Config) error {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	opts := transport.Options{
		MCP:     mcpHandler,
		Metrics: promhttp.Handler(),
		Logger:  logger,
	}
	if cfg.Auth.Token != "" {
		opts.Auth = transport.AuthMiddleware(cfg.Auth.Token)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           transport.NewServer(handler, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "auth", cfg.Auth.Token != "")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	return waitForShutdown(logger, httpServer, errCh)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server, errCh <-chan error) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	return server.Shutdown(ctx)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
