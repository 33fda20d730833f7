package engine

// Cell is a single position of the cube: either empty or an occupied
// townsperson. The zero value is an empty cell.
type Cell struct {
	Occupied    bool
	Affiliation Affiliation // Valid only when Occupied
	Identity    Identity    // Valid only when Occupied
	Removing    bool        // Selected for removal, kept only for display
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Occupant returns an occupied cell.
func Occupant(a Affiliation, id Identity) Cell {
	return Cell{Occupied: true, Affiliation: a, Identity: id}
}

// Live reports whether the cell takes part in the rules: occupied and not
// already on its way out.
func (c Cell) Live() bool {
	return c.Occupied && !c.Removing
}

// Flipped returns a copy of the cell converted to the other faction.
func (c Cell) Flipped() Cell {
	if !c.Occupied {
		return c
	}
	c.Affiliation = c.Affiliation.Flip()
	return c
}

// MarkedRemoving returns a copy of the cell flagged for removal.
func (c Cell) MarkedRemoving() Cell {
	if !c.Occupied {
		return c
	}
	c.Removing = true
	return c
}
