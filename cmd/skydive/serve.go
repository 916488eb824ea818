package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skydive/internal/metrics"
	"github.com/vovakirdan/skydive/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the skydive SSH server",
	Long: `Start an SSH server that allows users to connect and dive.

Each SSH connection gets its own session with a level picker menu.
Runs are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.skydive/host_key

Examples:
  skydive serve                           # Listen on :23234 with auto-generated key
  skydive serve --ssh :2222               # Listen on port 2222
  skydive serve --metrics :9090           # Expose Prometheus metrics
  skydive serve --stats-backend redis     # Share lifetime stats through redis

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Address for the Prometheus /metrics endpoint (disabled if empty)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "skydive-ssh")

	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := openStores(ctx, logger)
	defer st.Close()

	deps := tui.ServerDeps{
		Store:  st.runs,
		Stats:  st.stats,
		Logger: logger,
	}
	if flagMetricsAddr != "" {
		collector := metrics.NewCollector()
		deps.Metrics = collector
		go func() {
			if err := collector.Serve(ctx, flagMetricsAddr, logger); err != nil {
				logger.Error("metrics server stopped", "err", err)
			}
		}()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Game:        gameCfg.Config,
	}

	server, err := tui.NewSSHServer(cfg, deps)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting skydive SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
