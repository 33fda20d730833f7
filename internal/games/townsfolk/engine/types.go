// Package engine provides the elimination rules for the Townsfolk cube.
// It is UI-agnostic and deterministic: given a grid and one converted
// townsperson it computes the full chain reaction of removals.
package engine

// Affiliation is the faction of an occupied cell.
type Affiliation uint8

const (
	AffiliationNone Affiliation = iota // Only seen on empty cells
	AffiliationA
	AffiliationB
)

// String returns the single-letter faction name.
func (a Affiliation) String() string {
	switch a {
	case AffiliationA:
		return "A"
	case AffiliationB:
		return "B"
	default:
		return "-"
	}
}

// Flip returns the opposing faction. AffiliationNone flips to itself.
func (a Affiliation) Flip() Affiliation {
	switch a {
	case AffiliationA:
		return AffiliationB
	case AffiliationB:
		return AffiliationA
	default:
		return a
	}
}

// Identity is the opaque label of a townsperson, assigned once when the
// grid is created.
type Identity string

// Player identifies one of the two seats at the table.
type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// String returns "Player 1" or "Player 2".
func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Nobody"
	}
}

// Dir is one of the six axis-aligned directions.
type Dir uint8

const (
	DirLeft  Dir = iota // -X
	DirRight            // +X
	DirDown             // -Y
	DirUp               // +Y
	DirBack             // -Z
	DirFront            // +Z
)

// Directions lists every direction in a fixed order.
var Directions = [6]Dir{DirLeft, DirRight, DirDown, DirUp, DirBack, DirFront}

// String returns the name of the direction.
func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirUp:
		return "Up"
	case DirBack:
		return "Back"
	case DirFront:
		return "Front"
	default:
		return "Unknown"
	}
}

// Delta returns the unit offset for one step in this direction.
func (d Dir) Delta() (dx, dy, dz int) {
	switch d {
	case DirLeft:
		return -1, 0, 0
	case DirRight:
		return 1, 0, 0
	case DirDown:
		return 0, -1, 0
	case DirUp:
		return 0, 1, 0
	case DirBack:
		return 0, 0, -1
	case DirFront:
		return 0, 0, 1
	default:
		return 0, 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirUp:
		return DirDown
	case DirBack:
		return DirFront
	case DirFront:
		return DirBack
	default:
		return d
	}
}
