package engine

// ScanResult is what a ray from a cell runs into first.
type ScanResult struct {
	Boundary    bool        // The ray left the cube without meeting anyone
	Affiliation Affiliation // Faction of the cell that was hit
	At          Coord       // Position of the cell that was hit
}

// Scan walks from origin along d and reports the first live cell, or the
// boundary. Empty and removing cells are transparent.
func Scan(g *Grid, origin Coord, d Dir) ScanResult {
	for c := origin.Step(d); g.InBounds(c); c = c.Step(d) {
		cell := g.Get(c)
		if cell.Live() {
			return ScanResult{Affiliation: cell.Affiliation, At: c}
		}
	}
	return ScanResult{Boundary: true}
}

// Neighbors returns the first live cell along each of the six rays from c,
// in Directions order. Rays that reach the boundary contribute nothing.
func Neighbors(g *Grid, c Coord) []Coord {
	out := make([]Coord, 0, len(Directions))
	for _, d := range Directions {
		if r := Scan(g, c, d); !r.Boundary {
			out = append(out, r.At)
		}
	}
	return out
}
