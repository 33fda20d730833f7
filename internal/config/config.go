// Package config provides YAML-based configuration loading for the
// townsfolk cube game.
package config

import (
	"errors"
	"fmt"
)

// TownsfolkConfig contains all configuration for the cube game.
type TownsfolkConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Transition TransitionConfig `yaml:"transition"`
	Names      NamesConfig      `yaml:"names"`
	Players    PlayersConfig    `yaml:"players"`
	Display    DisplayConfig    `yaml:"display"`
}

// BoardConfig defines the cube geometry and how wide each cell is drawn.
type BoardConfig struct {
	Size      int `yaml:"size"`       // Edge length N of the N×N×N cube
	CellWidth int `yaml:"cell_width"` // Terminal columns per cell, including spacing
}

// TransitionConfig controls the removal animation after a confirmed turn.
type TransitionConfig struct {
	RemovalTicks int `yaml:"removal_ticks"` // 0 disables the transition
}

// NamesConfig overrides the townsfolk name tables. Empty lists keep the
// built-in tables.
type NamesConfig struct {
	First []string `yaml:"first"`
	Last  []string `yaml:"last"`
}

// PlayersConfig holds display names for the two players.
type PlayersConfig struct {
	One string `yaml:"one"`
	Two string `yaml:"two"`
}

// DisplayConfig holds presentation toggles.
type DisplayConfig struct {
	ShowScoreboard     bool `yaml:"show_scoreboard"`
	HighlightNeighbors bool `yaml:"highlight_neighbors"`
}

// Limits for board settings.
const (
	MinBoardSize = 1
	MaxBoardSize = 9
	MinCellWidth = 2
	MaxCellWidth = 6
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first out-of-range setting.
func (c TownsfolkConfig) Validate() error {
	switch {
	case c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize:
		return fmt.Errorf("%w: board.size %d not in [%d, %d]",
			ErrInvalidConfig, c.Board.Size, MinBoardSize, MaxBoardSize)
	case c.Board.CellWidth < MinCellWidth || c.Board.CellWidth > MaxCellWidth:
		return fmt.Errorf("%w: board.cell_width %d not in [%d, %d]",
			ErrInvalidConfig, c.Board.CellWidth, MinCellWidth, MaxCellWidth)
	case c.Transition.RemovalTicks < 0:
		return fmt.Errorf("%w: transition.removal_ticks must not be negative",
			ErrInvalidConfig)
	case c.Players.One == "" || c.Players.Two == "":
		return fmt.Errorf("%w: players.one and players.two must be set", ErrInvalidConfig)
	case c.Players.One == c.Players.Two:
		return fmt.Errorf("%w: players share the name %q", ErrInvalidConfig, c.Players.One)
	}
	for _, n := range c.Names.First {
		if n == "" {
			return fmt.Errorf("%w: names.first has an empty entry", ErrInvalidConfig)
		}
	}
	for _, n := range c.Names.Last {
		if n == "" {
			return fmt.Errorf("%w: names.last has an empty entry", ErrInvalidConfig)
		}
	}
	return nil
}

// PlayerName returns the display name of player 1 or 2.
func (c TownsfolkConfig) PlayerName(p int) string {
	if p == 2 {
		return c.Players.Two
	}
	return c.Players.One
}
