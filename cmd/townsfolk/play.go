package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/townsfolk/internal/core"
	"github.com/vovakirdan/townsfolk/internal/games/townsfolk"
	"github.com/vovakirdan/townsfolk/internal/platform/tui"
	"github.com/vovakirdan/townsfolk/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a cube variant",
	Long: `Start a two-player match on the given cube.

Controls:
  Arrows/WASD  - Move the cursor within a layer
  E/Z, PgUp/Dn - Next/previous layer
  Enter/Space  - Select, then confirm the conversion
  Esc/B        - Cancel the selection
  Tab          - Show/hide collected townsfolk
  R            - Restart
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

When you quit, the roll call lists who each player collected.

Examples:
  townsfolk play cube
  townsfolk play cube --size 4
  townsfolk play cube5 --seed 42
  townsfolk play cube --config ./my-town.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'townsfolk list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog, err := openLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := playVariant(gameID, terminalConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playVariant runs one match and then the roll call, if anyone was collected.
func playVariant(gameID string, cfg core.RuntimeConfig, logger *log.Logger) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	townsfolk.SetLogger(logger)

	logger.Info("starting", "variant", gameID, "fps", cfg.TickRate)
	if err := tui.Run(game, cfg, logger); err != nil {
		return err
	}

	tp, ok := game.(registry.TallyProvider)
	if !ok {
		return nil
	}
	tallies := tp.Tallies()
	collected := 0
	for _, t := range tallies {
		collected += len(t.Items)
	}
	if collected == 0 {
		return nil
	}
	return tui.RunRollCall(headline(game), tallies, cfg.ScreenW, cfg.ScreenH)
}

// headline summarizes how the match ended.
func headline(game registry.Game) string {
	if !game.State().GameOver {
		return "The town was left unfinished."
	}
	g, ok := game.(*townsfolk.Game)
	if !ok {
		return "Game over."
	}
	if w, ok := g.Winner(); ok {
		return g.Tallies()[int(w)-1].Player + " wins!"
	}
	return "It's a tie!"
}
