package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-map/internal/config"
	"github.com/vovakirdan/treasure-map/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the treasure map SSH server",
	Long: `Start an SSH server that lets users connect and watch scenarios.

Each SSH connection gets its own session with a scenario picker, playback
and the run history. Runs are archived per server (all users share the
same history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses ssh.host_key from the config (generated if missing)

Examples:
  treasuremap serve                           # Listen on :23235
  treasuremap serve --ssh :2222               # Listen on port 2222
  treasuremap serve --host-key ./my_host_key  # Use specific host key
  treasuremap serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)
	c := loadCatalog(cfg, logger)

	sshCfg := tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: config.ExpandPath(cfg.SSH.HostKey),
		DBPath:      cfg.Storage.Path,
		IdleTimeout: cfg.SSH.IdleTimeout(),
		TurnRate:    cfg.Playback.TurnsPerSecond,
	}
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sshCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(sshCfg, c, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	port := sshCfg.Address[strings.LastIndex(sshCfg.Address, ":")+1:]
	fmt.Printf("Starting treasure map SSH server on %s\n", sshCfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
