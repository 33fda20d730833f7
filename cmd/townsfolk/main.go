// townsfolk is a two-player terminal game played on a cube of townsfolk.
//
// Usage:
//
//	townsfolk list                     - List cube variants
//	townsfolk play <variant>           - Play a variant
//	townsfolk menu                     - Pick variants interactively
//	townsfolk replay <variant> x,y,z…  - Apply moves headless and print the result
//	townsfolk rules                    - Print the rules
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for the townsfolk names
//	--size <n>       - Override the configured cube size
//	--config <path>  - Use a custom config file
//	--log <path>     - Append logs to a file
//	--debug          - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/townsfolk/internal/games/townsfolk"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagSize    int
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "townsfolk",
	Short: "Townsfolk - a two-player conversion game on a cube",
	Long: `Townsfolk is a turn-based terminal game for two players. Convert one
townsperson per turn and collect everyone the conversion drives out of town.

Available commands:
  list     - Show all cube variants
  play     - Play a specific variant
  menu     - Interactive variant picker
  replay   - Apply a list of moves and print the outcome
  rules    - Explain the rules

Examples:
  townsfolk play cube
  townsfolk play cube4 --seed 7
  townsfolk menu --log townsfolk.log --debug
  townsfolk replay cube 0,0,0 1,1,1`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		townsfolk.SetConfigPath(flagConfig)
		townsfolk.SetBoardSize(flagSize)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for townsfolk names (0 = random in play, fixed in replay)")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Cube size for the 'cube' variant (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(rulesCmd)
}

// newLogger builds the logger shared by the CLI and the game.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "townsfolk",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLog returns the logger for interactive commands. The terminal belongs
// to the TUI, so logs go to --log or nowhere.
func openLog() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return newLogger(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log %s: %w", flagLogPath, err)
	}
	return newLogger(f), func() { f.Close() }, nil
}
