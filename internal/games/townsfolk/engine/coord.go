package engine

import "fmt"

// Coord is a position in the cube. Each axis ranges over [0, N).
type Coord struct {
	X int
	Y int
	Z int
}

// C is a convenience constructor for Coord.
func C(x, y, z int) Coord {
	return Coord{X: x, Y: y, Z: z}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Add returns a new Coord offset by (dx, dy, dz).
func (c Coord) Add(dx, dy, dz int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

// Step returns the Coord one step away in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy, dz := d.Delta()
	return c.Add(dx, dy, dz)
}

// Parity returns (x+y+z) mod 2.
func (c Coord) Parity() int {
	p := (c.X + c.Y + c.Z) % 2
	if p < 0 {
		p = -p
	}
	return p
}
