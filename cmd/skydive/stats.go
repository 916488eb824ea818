package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skydive/internal/registry"
	"github.com/vovakirdan/skydive/internal/storage"
)

var (
	flagStatsReset   bool
	flagStatsRecent  bool
	flagStatsByLevel bool
	flagStatsRun     string
)

var statsCmd = &cobra.Command{
	Use:   "stats [level]",
	Short: "Show best runs and lifetime stats",
	Long: `Display the top 10 runs for a level, or across all levels when none
is given, followed by lifetime totals from the stats backend.

Examples:
  skydive stats
  skydive stats storm-front
  skydive stats --recent
  skydive stats --by-level
  skydive stats --run 3f2b...
  skydive stats --reset
  skydive stats --stats-backend badger`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsReset, "reset", false, "Clear lifetime stats and run history for the level (or all)")
	statsCmd.Flags().BoolVar(&flagStatsRecent, "recent", false, "Show the latest runs instead of the best")
	statsCmd.Flags().BoolVar(&flagStatsByLevel, "by-level", false, "Show per-level totals")
	statsCmd.Flags().StringVar(&flagStatsRun, "run", "", "Show a single run by id")
}

func runStats(_ *cobra.Command, args []string) error {
	level := ""
	if len(args) == 1 {
		level = args[0]
		if !registry.Exists(level) {
			return unknownLevel(level)
		}
	}

	logger := newLogger(os.Stderr, "skydive")
	st := openStores(context.Background(), logger)
	defer st.Close()

	if st.runs == nil {
		return errors.New("run history database is not available")
	}

	switch {
	case flagStatsReset:
		return resetStats(st, level)
	case flagStatsRun != "":
		return showRun(st.runs, flagStatsRun)
	case flagStatsByLevel:
		return showLevelTotals(st.runs)
	}

	title := "All levels"
	if level != "" {
		l, err := registry.Create(level)
		if err != nil {
			return err
		}
		title = l.Title
	}

	heading := "Best Dives"
	runs, err := st.runs.TopRuns(level, 10)
	if flagStatsRecent {
		heading = "Recent Dives"
		title = "All levels"
		level = ""
		runs, err = st.runs.RecentRuns(10)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'skydive play' to set the first high score!")
	} else {
		printRuns(runs, level == "")
	}

	if st.stats == nil {
		return nil
	}
	lt, err := st.stats.Load()
	if err != nil {
		return fmt.Errorf("reading lifetime stats: %w", err)
	}
	fmt.Println()
	fmt.Println("Lifetime:")
	fmt.Printf("  Dives:        %d\n", lt.GamesPlayed)
	fmt.Printf("  Best score:   %d\n", lt.HighestScore)
	fmt.Printf("  Last score:   %d\n", lt.LastScore)
	fmt.Printf("  Average:      %.1f\n", lt.AverageScore())
	fmt.Printf("  Coins:        %d\n", lt.CoinsCollected)
	fmt.Printf("  Multipliers:  %d\n", lt.MultipliersCollected)
	fmt.Printf("  Hits taken:   %d\n", lt.ObstaclesHit)
	return nil
}

func printRuns(runs []storage.RunRecord, showLevel bool) {
	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-6s  %-16s", "Rank", "Score", "Streak", "Coins", "Time", "Date")
	if showLevel {
		fmt.Print("  Level")
	}
	fmt.Println()

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-5d  %-6s  %-16s",
			i+1, r.Score, r.MaxStreak, r.CoinsCollected,
			fmt.Sprintf("%.0fs", r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
		if showLevel {
			fmt.Printf("  %s", r.Level)
		}
		fmt.Println()
	}
}

func resetStats(st *stores, level string) error {
	if err := st.runs.ClearRuns(level); err != nil {
		return err
	}
	if level == "" && st.stats != nil {
		if err := st.stats.ResetStats(); err != nil {
			return err
		}
		fmt.Println("Cleared run history and lifetime stats.")
		return nil
	}
	fmt.Printf("Cleared run history for %s.\n", level)
	return nil
}

func showRun(store *storage.Store, id string) error {
	r, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with id %q", id)
	}
	fmt.Printf("Run %s\n", r.ID)
	fmt.Printf("  Level:        %s\n", r.Level)
	fmt.Printf("  Score:        %d\n", r.Score)
	fmt.Printf("  Max streak:   %d\n", r.MaxStreak)
	fmt.Printf("  Coins:        %d\n", r.CoinsCollected)
	fmt.Printf("  Multipliers:  %d\n", r.MultipliersCollected)
	fmt.Printf("  Hits taken:   %d\n", r.ObstaclesHit)
	fmt.Printf("  Duration:     %.1fs\n", r.Duration)
	fmt.Printf("  Date:         %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func showLevelTotals(store *storage.Store) error {
	all, err := store.AllLevelStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("  %-14s  %-5s  %-8s  %-8s  %-6s  %-16s\n", "Level", "Runs", "Best", "Average", "Streak", "Last played")
	for _, name := range names {
		ls := all[name]
		fmt.Printf("  %-14s  %-5d  %-8d  %-8.1f  %-6d  %-16s\n",
			ls.Level, ls.RunsCount, ls.HighScore, ls.AvgScore, ls.BestStreak,
			ls.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
