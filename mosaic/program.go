package mosaic

import (
	"errors"
	"fmt"

	"github.com/jcande/bones/bitio"
	"github.com/jcande/bones/tiling"
)

var (
	// ErrEmptyInitialState is returned by NewProgram when the initial
	// row has no tiles.
	ErrEmptyInitialState = errors.New("mosaic: empty initial state")
	// ErrInvalidTileBorder is returned when the supplied border tile
	// is not present in the tile-set.
	ErrInvalidTileBorder = errors.New("mosaic: border tile not present in tile-set")
	// ErrInvalidTile is returned when an initial-row tile is not
	// present in the tile-set.
	ErrInvalidTile = errors.New("mosaic: tile not present in tile-set")
	// ErrInvalidInputAlts is returned when an Input domino's alt
	// tiles diverge from the base tile on a non-South edge.
	ErrInvalidInputAlts = errors.New("mosaic: input domino alts must differ from the base tile only on the south edge")
	// ErrInvalidInitialTile is returned when the initial row is not
	// self-consistent with its neighbors (or the border at either
	// end).
	ErrInvalidInitialTile = errors.New("mosaic: initial tile does not match its neighbors")
)

// Program owns a DominoPile, the border tile reference, the currently
// materialized row, bit-serial stdio, and the row History used to
// answer coordinate-keyed queries across generations.
type Program struct {
	pile   *tiling.DominoPile
	border tiling.TileRef

	io  *bitio.Buffer
	row []tiling.TileRef

	history *History
}

// NewProgram validates and constructs a Program. dominoes is the
// complete tile-set; borderTile must be present in it; initial is the
// non-empty, self-consistent starting row, bordered on both ends by
// borderTile.
func NewProgram(dominoes []tiling.Domino, borderTile tiling.Tile, initial []tiling.Tile, io *bitio.Buffer) (*Program, error) {
	if len(initial) == 0 {
		return nil, ErrEmptyInitialState
	}

	for _, d := range dominoes {
		in, ok := d.SideEffect.(tiling.In)
		if !ok {
			continue
		}
		for _, alt := range in.Alts {
			if alt.North != d.Tile.North || alt.East != d.Tile.East || alt.West != d.Tile.West {
				return nil, fmt.Errorf("%w: domino %v", ErrInvalidInputAlts, d.Tile)
			}
		}
	}

	pile, err := tiling.NewDominoPile(dominoes)
	if err != nil {
		return nil, err
	}

	border, ok := pile.Get(borderTile)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTileBorder, borderTile)
	}

	row := make([]tiling.TileRef, 0, len(initial))
	for _, tile := range initial {
		ref, ok := pile.Get(tile)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTile, tile)
		}
		row = append(row, ref)
	}

	first, last := 0, len(initial)-1
	for i, tile := range initial {
		pred := borderTile
		if i > first {
			pred = initial[i-1]
		}
		if tile.Cardinal(tiling.West) != pred.Cardinal(tiling.East) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInitialTile, tile)
		}

		succ := borderTile
		if i < last {
			succ = initial[i+1]
		}
		if tile.Cardinal(tiling.East) != succ.Cardinal(tiling.West) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInitialTile, tile)
		}
	}

	if io == nil {
		io = bitio.NewStdio()
	}

	p := &Program{
		pile:   pile,
		border: border,
		io:     io,
		row:    row,
	}
	p.history = newHistory(p)

	return p, nil
}

// State returns a read-only snapshot of the current row's tiles.
func (p *Program) State() []tiling.Tile {
	out := make([]tiling.Tile, len(p.row))
	for i, ref := range p.row {
		out[i] = p.pile.Tile(ref)
	}
	return out
}

// Border returns the border (void) tile.
func (p *Program) Border() tiling.Tile {
	return p.pile.Tile(p.border)
}

// Pile exposes the underlying read-only tile-set, chiefly for
// renderers and debug tooling that need to resolve pips to colors.
func (p *Program) Pile() *tiling.DominoPile {
	return p.pile
}

func (p *Program) performIO(next []tiling.TileRef) ([]tiling.TileRef, error) {
	out := make([]tiling.TileRef, len(next))
	for i, ref := range next {
		switch se := p.pile.SideEffects(ref).(type) {
		case tiling.Out:
			if err := p.io.Put(se.Bit); err != nil {
				return nil, err
			}
			out[i] = ref
		case tiling.In:
			bit, err := p.io.Get()
			if err != nil {
				return nil, err
			}
			alts, ok := p.pile.InputAlts(ref)
			if !ok {
				panic("mosaic: Input side effect without registered alts")
			}
			if bit {
				out[i] = alts[1]
			} else {
				out[i] = alts[0]
			}
		default:
			out[i] = ref
		}
	}
	return out, nil
}

// Step evolves the current row to its successor: the row evolver
// produces a new row, I/O side effects are resolved pointwise in tape
// order, and the result replaces the current row. On error the
// previous row is left untouched.
func (p *Program) Step() error {
	evolved, err := Evolve(p.pile, p.border, p.row)
	if err != nil {
		return err
	}

	next, err := p.performIO(evolved)
	if err != nil {
		return err
	}

	p.row = next
	p.history.append(p.row)

	return nil
}
