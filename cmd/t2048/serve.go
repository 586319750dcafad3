package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/swap2048/internal/core"
	"github.com/vovakirdan/swap2048/internal/games/t2048"
	"github.com/vovakirdan/swap2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServePreset string
	flagVerbose     bool
)

const defaultLogLevel = log.InfoLevel

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the 2048 SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. Scores are stored per server, so all
users share the same leaderboard and best score.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.t2048/host_key

Examples:
  t2048 serve                           # Listen on :23234 with auto-generated key
  t2048 serve --ssh :2222               # Listen on port 2222
  t2048 serve --host-key ./my_host_key  # Use specific host key
  t2048 serve --preset big              # Serve 6x6 games

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServePreset, "preset", "", "Rule preset for every game")
	serveCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every move")
}

func runServe(cmd *cobra.Command, _ []string) error {
	level := defaultLogLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), "t2048-ssh", level)

	cfg, err := loadConfig(flagServePreset)
	if err != nil {
		return err
	}

	st := openStores(cmd.Context(), cfg, logger)
	defer st.Close()

	opts := tui.Options{
		Runtime:   core.RuntimeConfig{TickRate: flagFPS},
		Animation: cfg.Animation,
		Logger:    logger,
	}
	if st.db != nil {
		opts.Recorder = st.db
	}

	rules := cfg.ToGame()
	newSession := func(l *log.Logger) (*t2048.Session, error) {
		return t2048.NewSession(rules, st.sessionOptions(l)...)
	}

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.HostKeyPath = flagHostKey
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagIdleTimeout > 0 {
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(sshCfg, newSession, opts)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Starting t2048 SSH server on %s\n", server.Addr())
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	return server.ListenAndServe()
}
