package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skydive/internal/config"
	"github.com/vovakirdan/skydive/internal/core"
	"github.com/vovakirdan/skydive/internal/game"
	"github.com/vovakirdan/skydive/internal/platform/tui"
	"github.com/vovakirdan/skydive/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Dive into a level",
	Long: `Start a dive on the given level, or on the configured default level.

Controls:
  Enter          - Jump (and dive again after game over)
  Arrows/WASD    - Steer
  Mouse          - Click or drag to steer, right click to dive
  Space          - Dive
  P/Esc          - Pause
  R              - Restart after game over
  B              - Back to the menu when paused or over
  M              - Mute
  Ctrl+S         - Screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower spawns, gentler speed-up
  normal - Default tuning
  hard   - Faster spawns, harsher speed-up
  fixed  - Spawn interval never adapts

Examples:
  skydive play
  skydive play storm-front --difficulty hard
  skydive play sunset-drop --config ./my-skydive.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := cfg.Level
	if len(args) == 1 {
		level = args[0]
	}
	if !registry.Exists(level) {
		return unknownLevel(level)
	}

	logger, closeLog := newFileLogger()
	defer closeLog()

	st := openStores(context.Background(), logger)
	defer st.Close()

	sound, closeSound := newSound(cfg.Audio, logger)
	defer closeSound()

	if _, err := dive(cfg, level, runtimeConfig(), st, sound, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// dive runs one level until the player quits or asks for the menu.
func dive(cfg config.SkydiveConfig, level string, rc core.RuntimeConfig, st *stores, sound game.SoundManager, logger *log.Logger) (goBack bool, err error) {
	mgr, err := registry.NewManager(cfg.Config, level,
		game.Bounds{Width: float32(rc.ScreenW), Height: float32(rc.ScreenH)},
		game.WithSeed(seed()),
		game.WithLogger(logger),
		game.WithSound(sound),
	)
	if err != nil {
		return false, err
	}

	return tui.Run(tui.Session{
		Manager: mgr,
		Store:   st.runs,
		Stats:   st.stats,
		Logger:  logger,
	}, rc)
}
