// skydive is an endless terminal skydiving game.
//
// Usage:
//
//	skydive levels           - List available levels
//	skydive play [level]     - Dive straight into a level
//	skydive menu             - Pick levels interactively
//	skydive serve            - Start SSH server for remote play
//	skydive stats [level]    - Show best runs and lifetime stats
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--db <path>             - Set database path (default: ~/.skydive/skydive.db)
//	--config <path>         - Load tuning from a YAML file
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--stats-backend <name>  - sqlite, badger, redis or memory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import levels to register them
	_ "github.com/vovakirdan/skydive/internal/levels"
)

var (
	// Global flags
	flagFPS          int
	flagSeed         int64
	flagDBPath       string
	flagConfig       string
	flagDifficulty   string
	flagLogLevel     string
	flagStatsBackend string
	flagBadgerDir    string
	flagRedisAddr    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skydive",
	Short: "Skydive - an endless freefall in your terminal",
	Long: `Skydive is an endless arcade dive: steer through kites, balloons and
hang gliders, grab coins and multipliers, and keep your streak alive.

Available commands:
  levels   - Show all available levels
  play     - Dive into a level directly
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  stats    - View best runs and lifetime stats

Examples:
  skydive levels
  skydive play storm-front
  skydive menu --difficulty hard
  skydive serve --ssh :2222 --metrics :9090
  skydive stats open-sky`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: validateFlags,
}

// validateFlags rejects persistent flag values no command can run with.
func validateFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.skydive/skydive.db", "Path to run history database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagStatsBackend, "stats-backend", "sqlite", "Lifetime stats backend: sqlite, badger, redis, memory")
	pf.StringVar(&flagBadgerDir, "badger-dir", "~/.skydive/stats", "Directory for the badger stats backend")
	pf.StringVar(&flagRedisAddr, "redis-addr", "localhost:6379", "Address for the redis stats backend")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
