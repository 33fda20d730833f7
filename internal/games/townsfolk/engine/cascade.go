package engine

// Removal records one townsperson taken off the grid during a cascade.
type Removal struct {
	Coord       Coord
	Identity    Identity
	Affiliation Affiliation
	Pass        int // 1-based pass in which the cell was removed
}

// Cascade is the settled outcome of Propagate.
type Cascade struct {
	Grid    *Grid     // Settled grid, no live cell is eligible
	Removed []Removal // In removal order: by pass, then x, y, z
	Passes  int       // Number of passes that removed something
}

// Identities returns the removed identities in removal order.
func (c Cascade) Identities() []Identity {
	ids := make([]Identity, len(c.Removed))
	for i, r := range c.Removed {
		ids[i] = r.Identity
	}
	return ids
}

// Coords returns the removed coordinates in removal order.
func (c Cascade) Coords() []Coord {
	coords := make([]Coord, len(c.Removed))
	for i, r := range c.Removed {
		coords[i] = r.Coord
	}
	return coords
}

// Propagate removes eligible townsfolk until the grid settles.
//
// Every pass judges all cells against the grid as it stood when the pass
// began, then removes the whole batch at once. Propagate takes ownership of
// g: the caller must not use g afterwards except through the returned
// Cascade.Grid.
func Propagate(g *Grid) Cascade {
	result := Cascade{Grid: g}

	for {
		batch := eligibleSet(g)
		if len(batch) == 0 {
			return result
		}

		result.Passes++
		for _, c := range batch {
			cell := g.Get(c)
			result.Removed = append(result.Removed, Removal{
				Coord:       c,
				Identity:    cell.Identity,
				Affiliation: cell.Affiliation,
				Pass:        result.Passes,
			})
			g.Clear(c)
		}
	}
}

// eligibleSet collects every eligible coordinate in scan order without
// touching the grid.
func eligibleSet(g *Grid) []Coord {
	var batch []Coord
	for _, c := range g.Coords() {
		if Eligible(g, c) {
			batch = append(batch, c)
		}
	}
	return batch
}

// Settled reports whether no live cell in g is eligible.
func Settled(g *Grid) bool {
	return len(eligibleSet(g)) == 0
}
