// Package mosaic implements the row evolver and the program runtime
// that drives it: the constraint-propagation engine that turns one row
// of placed tiles into the next, plus the stateful Program that owns a
// DominoPile, the current row, and bit-serial stdio.
package mosaic

import (
	"errors"

	"github.com/jcande/bones/tiling"
)

// ErrNoTilesLeft is returned when a TileCloud has no candidates left,
// either because Constrain narrowed it to nothing or because Select
// was called on an already-empty cloud.
var ErrNoTilesLeft = errors.New("mosaic: no tiles left in cloud")

// Preference controls which member TileCloud.Select prefers once
// propagation has finished narrowing the cloud.
type Preference struct {
	kind int
	ref  tiling.TileRef
}

const (
	preferKindWhatever = iota
	preferKindPrefer
	preferKindAvoid
)

// Whatever accepts any remaining member.
func Whatever() Preference { return Preference{kind: preferKindWhatever} }

// Prefer returns ref if it is still present in the cloud at selection
// time.
func Prefer(ref tiling.TileRef) Preference { return Preference{kind: preferKindPrefer, ref: ref} }

// Avoid returns any member other than ref, falling back to ref only if
// it is the sole survivor.
func Avoid(ref tiling.TileRef) Preference { return Preference{kind: preferKindAvoid, ref: ref} }

// TileCloud is the mutable set of candidate tiles still feasible for
// one cell of the next row.
type TileCloud struct {
	pile    *tiling.DominoPile
	members map[tiling.TileRef]struct{}
	pref    Preference
}

// NewTileCloud builds a cloud from a candidate list, dropping every
// candidate whose side effect is Pure(Hidden) -- an Input domino's alt
// may be placed via input resolution but must never be chosen directly
// out of a cloud.
func NewTileCloud(pile *tiling.DominoPile, candidates []tiling.TileRef, pref Preference) *TileCloud {
	members := make(map[tiling.TileRef]struct{}, len(candidates))
	for _, ref := range candidates {
		if pile.IsHidden(ref) {
			continue
		}
		members[ref] = struct{}{}
	}
	return &TileCloud{pile: pile, members: members, pref: pref}
}

// Len reports the number of candidates still in the cloud.
func (c *TileCloud) Len() int {
	return len(c.members)
}

// PositionalPips returns the set of pips present on dir across every
// current member.
func (c *TileCloud) PositionalPips(dir tiling.Direction) map[tiling.Pip]struct{} {
	pips := make(map[tiling.Pip]struct{}, len(c.members))
	for ref := range c.members {
		pips[c.pile.Tile(ref).Cardinal(dir)] = struct{}{}
	}
	return pips
}

// Constrain narrows the cloud to members whose orientation-edge pip is
// emitted by other (i.e. appears among other's pips on the opposite
// edge). orientation describes where other lies relative to this
// cloud; North/South orientations never make sense here (rows only
// grow east/west) and are a programming error.
func (c *TileCloud) Constrain(other *TileCloud, orientation tiling.Orientation) error {
	if orientation == tiling.North || orientation == tiling.South {
		panic("mosaic: north/south constraints don't make sense in this context")
	}

	available := other.PositionalPips(orientation.Negate())

	keep := make(map[tiling.TileRef]struct{}, len(c.members))
	for ref := range c.members {
		pip := c.pile.Tile(ref).Cardinal(orientation)
		if _, ok := available[pip]; ok {
			keep[ref] = struct{}{}
		}
	}
	c.members = keep

	if len(c.members) == 0 {
		return ErrNoTilesLeft
	}
	return nil
}

// Select resolves the cloud to a single TileRef, honoring Prefer/Avoid
// where possible and otherwise returning any surviving member.
func (c *TileCloud) Select() (tiling.TileRef, error) {
	switch c.pref.kind {
	case preferKindPrefer:
		if _, ok := c.members[c.pref.ref]; ok {
			return c.pref.ref, nil
		}
	case preferKindAvoid:
		for ref := range c.members {
			if ref != c.pref.ref {
				return ref, nil
			}
		}
	}

	for ref := range c.members {
		return ref, nil
	}
	return 0, ErrNoTilesLeft
}
