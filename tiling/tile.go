package tiling

import "fmt"

// Tile is an immutable four-edge square. Equality is structural, so a
// Tile is usable directly as a map key.
type Tile struct {
	North, East, South, West Pip
}

// NewTile builds a Tile from its four edge pips.
func NewTile(north, east, south, west Pip) Tile {
	return Tile{North: north, East: east, South: south, West: west}
}

// Cardinal returns the pip on the named edge.
func (t Tile) Cardinal(dir Direction) Pip {
	switch dir {
	case North:
		return t.North
	case East:
		return t.East
	case South:
		return t.South
	case West:
		return t.West
	default:
		panic("tiling: invalid direction")
	}
}

func (t Tile) String() string {
	pip := func(p Pip) string {
		if p == UnallocatedPip {
			return "U"
		}
		return fmt.Sprintf("%x", uint64(p))
	}
	return fmt.Sprintf("Tile(%s, %s, %s, %s)", pip(t.North), pip(t.East), pip(t.South), pip(t.West))
}
