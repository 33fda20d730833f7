package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a grid is requested with edge length < 1.
	ErrInvalidSize = errors.New("grid size must be positive")
	// ErrNoIdentities is returned when a grid is requested without an IdentitySource.
	ErrNoIdentities = errors.New("identity source is nil")
)

// Grid is the N×N×N cube of cells.
// Cells are stored x-major: index = (x*N + y)*N + z, which makes a plain
// walk over Cells follow the x, then y, then z scan order.
type Grid struct {
	N     int    // Edge length
	Cells []Cell // Flat array of cells, length N³
}

// NewGrid creates the starting grid: every position occupied, affiliation A
// where x+y+z is even and B otherwise. ids is asked for one label per cell.
func NewGrid(n int, ids IdentitySource) (*Grid, error) {
	if ids == nil {
		return nil, fmt.Errorf("engine: %w", ErrNoIdentities)
	}
	if err := checkSize(n); err != nil {
		return nil, err
	}
	return startingGrid(n, ids), nil
}

// NewEmptyGrid creates a grid with every cell empty.
func NewEmptyGrid(n int) (*Grid, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	return emptyGrid(n), nil
}

func checkSize(n int) error {
	if n < 1 {
		return fmt.Errorf("engine: %w (got %d)", ErrInvalidSize, n)
	}
	return nil
}

// startingGrid fills a parity grid; n and ids must already be checked.
func startingGrid(n int, ids IdentitySource) *Grid {
	g := emptyGrid(n)
	for i, c := range g.Coords() {
		aff := AffiliationA
		if c.Parity() == 1 {
			aff = AffiliationB
		}
		g.Cells[i] = Occupant(aff, ids.NextIdentity())
	}
	return g
}

func emptyGrid(n int) *Grid {
	return &Grid{
		N:     n,
		Cells: make([]Cell, n*n*n),
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return (c.X*g.N+c.Y)*g.N + c.Z
}

// Volume returns N³.
func (g *Grid) Volume() int {
	return g.N * g.N * g.N
}

// InBounds returns true if the coordinate lies inside the cube.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.N &&
		c.Y >= 0 && c.Y < g.N &&
		c.Z >= 0 && c.Z < g.N
}

// Get returns the cell at the given coordinate.
// Returns an empty cell if out of bounds.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return Empty()
	}
	return g.Cells[g.index(c)]
}

// Set stores a cell at the given coordinate.
func (g *Grid) Set(c Coord, cell Cell) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = cell
	}
}

// Clear empties the cell at the given coordinate.
func (g *Grid) Clear(c Coord) {
	g.Set(c, Empty())
}

// Flip converts the occupant at c to the other faction.
// Returns false if there is nobody there.
func (g *Grid) Flip(c Coord) bool {
	cell := g.Get(c)
	if !cell.Live() {
		return false
	}
	g.Set(c, cell.Flipped())
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		N:     g.N,
		Cells: cells,
	}
}

// Coords returns every coordinate in x, then y, then z order.
func (g *Grid) Coords() []Coord {
	coords := make([]Coord, 0, g.Volume())
	for x := 0; x < g.N; x++ {
		for y := 0; y < g.N; y++ {
			for z := 0; z < g.N; z++ {
				coords = append(coords, C(x, y, z))
			}
		}
	}
	return coords
}

// OccupiedCoords returns the coordinates of all live cells in scan order.
func (g *Grid) OccupiedCoords() []Coord {
	coords := make([]Coord, 0)
	for _, c := range g.Coords() {
		if g.Get(c).Live() {
			coords = append(coords, c)
		}
	}
	return coords
}

// OccupiedCount returns the number of live cells.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Live() {
			count++
		}
	}
	return count
}

// IsCleared returns true once every townsperson is gone.
func (g *Grid) IsCleared() bool {
	return g.OccupiedCount() == 0
}

// Equal returns true if two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.N != other.N || len(g.Cells) != len(other.Cells) {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}
