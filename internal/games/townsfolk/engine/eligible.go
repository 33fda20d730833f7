package engine

// Eligible reports whether the townsperson at c is surrounded by their own
// faction: every ray hits the boundary or a cell of the same affiliation.
func Eligible(g *Grid, c Coord) bool {
	cell := g.Get(c)
	if !cell.Live() {
		return false
	}
	for _, d := range Directions {
		r := Scan(g, c, d)
		if !r.Boundary && r.Affiliation != cell.Affiliation {
			return false
		}
	}
	return true
}
