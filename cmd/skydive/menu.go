package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skydive/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start skydive with a level picker menu",
	Long: `Start skydive in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to jump into a level.
Press B after a game over to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  Tab          - Best runs and lifetime stats
  Q            - Quit

Examples:
  skydive menu
  skydive menu --fps 30
  skydive menu --difficulty easy`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := newFileLogger()
	defer closeLog()

	st := openStores(context.Background(), logger)
	defer st.Close()

	sound, closeSound := newSound(cfg.Audio, logger)
	defer closeSound()

	rc := runtimeConfig()
	for {
		result, err := tui.RunMenu(st.runs, rc)
		if err != nil {
			return err
		}
		rc = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsStats {
			goBack, err := tui.RunScoreboard(st.runs, st.stats, rc.ScreenW, rc.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		goBack, err := dive(cfg, result.Level, rc, st, sound, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !goBack {
			return nil
		}
	}
}
