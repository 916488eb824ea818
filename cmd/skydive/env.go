package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/skydive/internal/audio"
	"github.com/vovakirdan/skydive/internal/config"
	"github.com/vovakirdan/skydive/internal/core"
	"github.com/vovakirdan/skydive/internal/game"
	"github.com/vovakirdan/skydive/internal/storage"
	"github.com/vovakirdan/skydive/internal/systems"
)

// loadConfig reads the tuning file and applies the difficulty preset.
func loadConfig() (config.SkydiveConfig, error) {
	cfg, err := config.LoadSkydive(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// newFileLogger logs to ~/.skydive/skydive.log, since the TUI owns the
// terminal. It falls back to a discarding logger.
func newFileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".skydive")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "skydive.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	return newLogger(f, "skydive"), func() { f.Close() }
}

// stores holds the run history and lifetime stats for a command.
type stores struct {
	runs       *storage.Store
	stats      *systems.StatsManager
	closeStats func() error
}

// openStores opens the history database and the configured stats backend.
// History may be nil; stats fall back to memory when the backend fails.
func openStores(ctx context.Context, logger *log.Logger) *stores {
	s := &stores{closeStats: func() error { return nil }}

	runs, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "err", err)
	} else {
		s.runs = runs
	}

	kv, closeKV, err := storage.OpenStats(ctx, storage.StatsOptions{
		Backend:   flagStatsBackend,
		BadgerDir: flagBadgerDir,
		Redis:     redisConfig(),
	}, s.runs)
	if err != nil {
		logger.Warn("could not open stats backend, keeping stats in memory", "backend", flagStatsBackend, "err", err)
		kv, closeKV = storage.NewMemoryKV(), func() error { return nil }
	}
	s.stats = systems.NewStatsManager(kv)
	s.closeStats = closeKV
	return s
}

func redisConfig() storage.RedisConfig {
	cfg := storage.DefaultRedisConfig()
	cfg.Addr = flagRedisAddr
	return cfg
}

// Close releases every opened store.
func (s *stores) Close() {
	//nolint:errcheck // Best-effort close on exit
	s.closeStats()
	if s.runs != nil {
		s.runs.Close()
	}
}

// runtimeConfig sizes the session to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newSound opens the speaker, falling back to silence when no audio
// device is available. The returned func releases the device.
func newSound(cfg config.AudioConfig, logger *log.Logger) (game.SoundManager, func()) {
	m := audio.NewManager(audio.Config{
		SFXVolume:   cfg.SFXVolume,
		MusicVolume: cfg.MusicVolume,
		Muted:       cfg.Muted,
	}, logger)
	if err := m.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return &audio.Nop{}, func() {}
	}
	return m, m.Cleanup
}

// seed returns the --seed value, or a time-based one when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// unknownLevel reports a level name the registry does not know.
func unknownLevel(name string) error {
	return fmt.Errorf("unknown level %q (run 'skydive levels' to see available levels)", name)
}
