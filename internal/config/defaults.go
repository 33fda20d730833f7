package config

import (
	_ "embed"
)

//go:embed defaults/townsfolk.yaml
var defaultTownsfolkYAML []byte

// DefaultTownsfolkConfig returns the default configuration.
func DefaultTownsfolkConfig() TownsfolkConfig {
	return TownsfolkConfig{
		Board: BoardConfig{
			Size:      3,
			CellWidth: 3,
		},
		Transition: TransitionConfig{
			RemovalTicks: 12,
		},
		Players: PlayersConfig{
			One: "Player 1",
			Two: "Player 2",
		},
		Display: DisplayConfig{
			ShowScoreboard:     true,
			HighlightNeighbors: true,
		},
	}
}
