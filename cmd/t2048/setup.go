package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swap2048/internal/config"
	"github.com/vovakirdan/swap2048/internal/games/t2048"
	"github.com/vovakirdan/swap2048/internal/storage"
)

const defaultDBPath = "~/.t2048/scores.db"

// loadConfig resolves the configuration: file, then preset, then T2048_*
// environment, then command-line flags.
func loadConfig(preset string) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.Preset(preset)); err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = defaultDBPath
	}
	if err := cfg.ToGame().Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// stores holds the open persistence backends of one command.
type stores struct {
	db    *storage.Store     // nil if the database could not be opened
	redis *storage.RedisBest // nil unless configured
	best  storage.Tiered
}

// openStores opens SQLite and, if configured, Redis. Failures are logged and
// the command continues with whatever opened.
func openStores(ctx context.Context, cfg config.Config, logger *log.Logger) *stores {
	s := &stores{}

	db, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", cfg.Storage.DBPath, "error", err)
	} else {
		s.db = db
		s.best = append(s.best, db)
	}

	if cfg.Storage.RedisAddr != "" {
		r, err := storage.OpenRedis(ctx, cfg.Storage.RedisAddr, cfg.Storage.RedisKey)
		if err != nil {
			logger.Warn("could not connect to redis", "addr", cfg.Storage.RedisAddr, "error", err)
		} else {
			s.redis = r
			s.best = append(s.best, r)
		}
	}
	return s
}

// sessionOptions returns the session options shared by play and serve.
func (s *stores) sessionOptions(logger *log.Logger) []t2048.Option {
	opts := []t2048.Option{
		t2048.WithLogger(logger),
		t2048.WithDeferredSettle(),
	}
	if len(s.best) > 0 {
		opts = append(opts, t2048.WithStore(s.best))
	}
	if flagSeed != 0 {
		opts = append(opts, t2048.WithSeed(flagSeed))
	}
	return opts
}

// bestScore returns the best score across backends, 0 if unavailable.
func (s *stores) bestScore() int {
	if len(s.best) == 0 {
		return 0
	}
	best, err := s.best.BestScore()
	if err != nil {
		return 0
	}
	return best
}

func (s *stores) Close() {
	if s.db != nil {
		s.db.Close()
	}
	if s.redis != nil {
		s.redis.Close()
	}
}

// newLogger returns a timestamped logger writing to w.
func newLogger(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// openLogFile returns a debug logger writing to path, or a silent logger if
// path is empty. The TUI owns the terminal, so play never logs to stderr.
func openLogFile(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return newLogger(f, "t2048", log.DebugLevel), f, nil
}
