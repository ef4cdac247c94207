package tiling

import (
	"errors"
	"fmt"
	"sort"
)

// TileRef is an opaque handle into a DominoPile's indexed buffer.
// References are stable for the lifetime of the pile that produced
// them.
type TileRef int

// ErrTooManyTiles is returned by NewDominoPile when the tile count
// would reach UnallocatedPip, leaving no room for the sentinel void
// pip to remain distinguishable from a legitimate TileRef-adjacent
// count.
var ErrTooManyTiles = errors.New("tiling: too many tiles; TileRef space exhausted")

// maxTileRefCount is the construction-time tile count ceiling. It is a
// var rather than using UnallocatedPip directly so tests can shrink it
// instead of actually allocating billions of tiles to exercise the
// boundary.
var maxTileRefCount = int(UnallocatedPip)

// DominoPile is the complete, read-only, indexed tile-set available to
// a compiled program. It is built once by the compiler and never
// mutated afterward, so concurrent reads (e.g. from multiple
// TileClouds during one Row evolution) are always safe.
type DominoPile struct {
	tiles      []Tile
	sideEffect []SideEffect
	index      map[Tile]TileRef

	// impureWatermark is the index of the first Pure tile; every ref
	// below it is Out- or In-bearing.
	impureWatermark TileRef
	// hiddenWatermark is the index of the first hidden (Input alt)
	// tile; every ref at or above it is a hidden Pure tile that may
	// be placed but never selected.
	hiddenWatermark TileRef

	// inputAlts maps an Input domino's main TileRef to its two alt
	// TileRefs; outputBit maps an Output domino's TileRef to the bit
	// it emits.
	inputAlts map[TileRef][2]TileRef
	outputBit map[TileRef]bool
}

func sideEffectRank(se SideEffect) int {
	switch se.(type) {
	case Out:
		return 0
	case In:
		return 1
	default:
		return 2
	}
}

// NewDominoPile builds an indexed pile from a flat list of dominoes.
// Dominoes are sorted stably Out < In < Pure; each Input domino's two
// alt tiles are then appended as hidden dominoes after the Pure
// region.
func NewDominoPile(dominoes []Domino) (*DominoPile, error) {
	sorted := make([]Domino, len(dominoes))
	copy(sorted, dominoes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sideEffectRank(sorted[i].SideEffect) < sideEffectRank(sorted[j].SideEffect)
	})

	total := len(sorted)
	for _, d := range sorted {
		if _, ok := d.SideEffect.(In); ok {
			total += 2
		}
	}
	if total >= maxTileRefCount {
		return nil, ErrTooManyTiles
	}

	p := &DominoPile{
		tiles:      make([]Tile, 0, total),
		sideEffect: make([]SideEffect, 0, total),
		index:      make(map[Tile]TileRef, total),
		inputAlts:  make(map[TileRef][2]TileRef),
		outputBit:  make(map[TileRef]bool),
	}

	impureWatermark := TileRef(-1)
	for i, d := range sorted {
		if impureWatermark == -1 {
			if _, ok := d.SideEffect.(Pure); ok {
				impureWatermark = TileRef(i)
			}
		}
		p.append(d)
	}
	if impureWatermark == -1 {
		impureWatermark = TileRef(len(sorted))
	}
	p.impureWatermark = impureWatermark
	p.hiddenWatermark = TileRef(len(sorted))

	// Append the hidden alt tiles, tracking them against their main
	// ref's inputAlts entry.
	for i, d := range sorted {
		in, ok := d.SideEffect.(In)
		if !ok {
			continue
		}
		mainRef := TileRef(i)

		var altRefs [2]TileRef
		for k, alt := range in.Alts {
			altRefs[k] = p.append(hiddenAlt(alt))
		}
		p.inputAlts[mainRef] = altRefs
	}

	return p, nil
}

// append adds a domino to the pile's buffer and index, returning its
// new TileRef. Duplicate tiles (by structural equality) overwrite the
// index entry for the later one; callers are expected to pass a
// well-formed tile-set without duplicates.
func (p *DominoPile) append(d Domino) TileRef {
	ref := TileRef(len(p.tiles))
	p.tiles = append(p.tiles, d.Tile)
	p.sideEffect = append(p.sideEffect, d.SideEffect)
	p.index[d.Tile] = ref

	if out, ok := d.SideEffect.(Out); ok {
		p.outputBit[ref] = out.Bit
	}

	return ref
}

// Len returns the total number of tiles in the pile, including the
// hidden Input alts.
func (p *DominoPile) Len() int {
	return len(p.tiles)
}

// Tile returns the tile a TileRef denotes.
func (p *DominoPile) Tile(ref TileRef) Tile {
	return p.tiles[ref]
}

// Get performs a structural lookup, returning the TileRef for tile if
// present.
func (p *DominoPile) Get(tile Tile) (TileRef, bool) {
	ref, ok := p.index[tile]
	return ref, ok
}

// SideEffectKind describes which of the three runtime side-effect
// regions a TileRef belongs to, resolved by a single watermark
// comparison rather than a type switch on every access.
type SideEffectKind int

const (
	KindOut SideEffectKind = iota
	KindIn
	KindPure
)

func (k SideEffectKind) String() string {
	switch k {
	case KindOut:
		return "out"
	case KindIn:
		return "in"
	case KindPure:
		return "pure"
	default:
		return "SideEffectKind(?)"
	}
}

// SideEffects returns the side effect a TileRef carries.
func (p *DominoPile) SideEffects(ref TileRef) SideEffect {
	return p.sideEffect[ref]
}

// Kind resolves a TileRef's side-effect region. Pure membership is a
// watermark comparison; below the watermark the Out/In split falls out
// of the output-bit lookup.
func (p *DominoPile) Kind(ref TileRef) SideEffectKind {
	if ref >= p.impureWatermark {
		return KindPure
	}
	if _, ok := p.outputBit[ref]; ok {
		return KindOut
	}
	return KindIn
}

// IsHidden reports whether ref names one of an Input domino's alt
// tiles: legal to place via input resolution, never legal to select
// from a TileCloud.
func (p *DominoPile) IsHidden(ref TileRef) bool {
	return ref >= p.hiddenWatermark
}

// InputAlts returns the two alt TileRefs for an Input domino's main
// ref.
func (p *DominoPile) InputAlts(ref TileRef) ([2]TileRef, bool) {
	alts, ok := p.inputAlts[ref]
	return alts, ok
}

// OutputBit returns the bit an Output domino's ref emits.
func (p *DominoPile) OutputBit(ref TileRef) (bool, bool) {
	bit, ok := p.outputBit[ref]
	return bit, ok
}

// Matches returns every TileRef whose pip on the opposite edge of dir
// equals ref's pip on dir. For example Matches(ref, East) returns
// every tile whose West pip equals ref's East pip -- i.e. every tile
// that could sit immediately to ref's east.
func (p *DominoPile) Matches(ref TileRef, dir Direction) []TileRef {
	return p.MatchesPip(p.tiles[ref].Cardinal(dir), dir)
}

// MatchesPip returns every TileRef whose pip on the opposite edge of
// dir equals pip.
func (p *DominoPile) MatchesPip(pip Pip, dir Direction) []TileRef {
	opposite := dir.Negate()

	var out []TileRef
	for i, tile := range p.tiles {
		if tile.Cardinal(opposite) == pip {
			out = append(out, TileRef(i))
		}
	}
	return out
}

// MatchesTile returns every TileRef whose pip on the opposite edge of
// dir equals tile's pip on dir.
func (p *DominoPile) MatchesTile(tile Tile, dir Direction) []TileRef {
	return p.MatchesPip(tile.Cardinal(dir), dir)
}

func (p *DominoPile) String() string {
	return fmt.Sprintf("DominoPile(%d tiles, %d impure, %d hidden)", len(p.tiles), p.impureWatermark, len(p.tiles)-int(p.hiddenWatermark))
}
