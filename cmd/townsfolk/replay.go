package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/townsfolk/internal/core"
	"github.com/vovakirdan/townsfolk/internal/games/townsfolk"
	"github.com/vovakirdan/townsfolk/internal/games/townsfolk/engine"
	"github.com/vovakirdan/townsfolk/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
)

var replayCmd = &cobra.Command{
	Use:   "replay <variant> <x,y,z>...",
	Short: "Apply moves without a UI and print the outcome",
	Long: `Replay plays the given conversions in order, alternating players,
then prints the final board and the roll call. Coordinates are zero-based.
The default seed is 0, so names repeat between runs.

Examples:
  townsfolk replay cube 0,0,0
  townsfolk replay cube4 0,0,0 1,0,0 3,3,3 --seed 9`,
	Args: cobra.MinimumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&flagWidth, "width", 100, "Board output width")
	replayCmd.Flags().IntVar(&flagHeight, "height", 40, "Board output height")
}

func runReplay(cmd *cobra.Command, args []string) {
	if err := replay(os.Stdout, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func replay(w io.Writer, gameID string, moves []string) error {
	coords := make([]engine.Coord, 0, len(moves))
	for _, m := range moves {
		c, err := parseCoord(m)
		if err != nil {
			return err
		}
		coords = append(coords, c)
	}

	created, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game, ok := created.(*townsfolk.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot be replayed", gameID)
	}

	logger := newLogger(os.Stderr)
	townsfolk.SetLogger(logger)

	game.Reset(core.RuntimeConfig{ScreenW: flagWidth, ScreenH: flagHeight, TickRate: flagFPS, Seed: flagSeed})
	for i, c := range coords {
		turn, err := game.Apply(c)
		if err != nil {
			return fmt.Errorf("move %d %s: %w", i+1, c, err)
		}
		fmt.Fprintf(w, "%2d. %s converts %s: collected %d in %d passes\n",
			i+1, turn.Player, c, len(turn.Cascade.Removed), turn.Cascade.Passes)
		for _, r := range turn.Cascade.Removed {
			fmt.Fprintf(w, "      %s %s\n", r.Coord, r.Identity)
		}
	}

	screen := core.NewScreen(flagWidth, flagHeight)
	game.Render(screen)
	fmt.Fprintln(w)
	fmt.Fprintln(w, trimScreen(screen.String()))
	fmt.Fprintln(w)

	for _, t := range game.Tallies() {
		fmt.Fprintf(w, "%s collected %d:\n", t.Player, len(t.Items))
		for i, name := range t.Items {
			fmt.Fprintf(w, "  %3d  %s\n", i+1, name)
		}
	}
	fmt.Fprintln(w, headline(game))
	return nil
}

var errBadCoord = errors.New("coordinates must look like x,y,z")

// parseCoord reads "x,y,z".
func parseCoord(s string) (engine.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return engine.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return engine.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
		}
		v[i] = n
	}
	return engine.C(v[0], v[1], v[2]), nil
}

// trimScreen drops trailing spaces and blank lines from a rendered screen.
func trimScreen(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
