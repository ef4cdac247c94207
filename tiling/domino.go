package tiling

// PurityBias records whether a Pure tile may still be placed by the Row
// evolver even though it can never be chosen out of a TileCloud. Hidden
// tiles are an Input domino's two alt tiles: legal to place (via input
// resolution) but never legal to select.
type PurityBias int

const (
	Nothing PurityBias = iota
	Hidden
)

// SideEffect classifies what placing a Domino's tile does at runtime.
// It is a closed sum type implemented as an interface with an
// unexported marker method, the same shape as the small closed
// interfaces the rest of this codebase favors over reflection-driven
// dispatch.
type SideEffect interface {
	isSideEffect()
}

// Pure tiles emit or consume nothing.
type Pure struct {
	Bias PurityBias
}

// In tiles consume one input bit; Alts holds the two drop-in
// replacement tiles (index 0 for a 0 bit, index 1 for a 1 bit).
type In struct {
	Alts [2]Tile
}

// Out tiles emit Bit when placed.
type Out struct {
	Bit bool
}

func (Pure) isSideEffect() {}
func (In) isSideEffect()   {}
func (Out) isSideEffect()  {}

// Domino is a Tile plus its side effect.
type Domino struct {
	Tile       Tile
	SideEffect SideEffect
}

// PureDomino builds a Pure, visible domino.
func PureDomino(tile Tile) Domino {
	return Domino{Tile: tile, SideEffect: Pure{Bias: Nothing}}
}

// InputDomino builds an Input domino. alts[0] is substituted in when
// the read bit is 0, alts[1] when it is 1.
func InputDomino(tile Tile, alts [2]Tile) Domino {
	return Domino{Tile: tile, SideEffect: In{Alts: alts}}
}

// OutputDomino builds an Output domino that emits bit when placed.
func OutputDomino(tile Tile, bit bool) Domino {
	return Domino{Tile: tile, SideEffect: Out{Bit: bit}}
}

// hiddenAlt wraps one of an Input domino's alt tiles as its own Pure,
// Hidden domino: legal to place via input resolution, never legal to
// select out of a TileCloud.
func hiddenAlt(tile Tile) Domino {
	return Domino{Tile: tile, SideEffect: Pure{Bias: Hidden}}
}
