package mosaic

import "github.com/jcande/bones/tiling"

// BorderMode controls how TileAt answers a query that falls outside a
// recorded row's materialized cells.
type BorderMode int

const (
	// ExcludeBorder reports false for any off-tape coordinate.
	ExcludeBorder BorderMode = iota
	// IncludeBorder reports the program's border tile for an
	// off-tape coordinate within a recorded row.
	IncludeBorder
)

// History remembers every row a Program has produced, along with each
// row's absolute western column offset, so that TileAt can answer
// coordinate-keyed queries about prior generations the way an external
// renderer needs to.
type History struct {
	program *Program
	rows    [][]tiling.TileRef
	offsets []int
}

func newHistory(p *Program) *History {
	h := &History{program: p}
	h.rows = append(h.rows, cloneRow(p.row))
	h.offsets = append(h.offsets, 0)
	return h
}

func cloneRow(row []tiling.TileRef) []tiling.TileRef {
	out := make([]tiling.TileRef, len(row))
	copy(out, row)
	return out
}

// append records a newly produced row, computing its western offset
// relative to the previous row.
//
// The rule (per the offset-tracking note in the design docs): locate
// the previous row's westernmost non-border tile and find the index k
// of the new row's tile whose North pip equals that tile's South pip;
// the new offset is that tile's absolute column minus k (the previous
// offset minus k when it is the previous row's first tile). Eastward
// growth never requires an offset change, since the new row's index 0
// still aligns with (or sits east of) the previous row's index 0.
func (h *History) append(row []tiling.TileRef) {
	prevRow := h.rows[len(h.rows)-1]
	prevOffset := h.offsets[len(h.offsets)-1]

	offset := prevOffset
	west := 0
	for west < len(prevRow) && prevRow[west] == h.program.border {
		west++
	}
	if west < len(prevRow) {
		westSouth := h.program.pile.Tile(prevRow[west]).South
		for k, ref := range row {
			if h.program.pile.Tile(ref).North == westSouth {
				offset = prevOffset + west - k
				break
			}
		}
	}

	h.rows = append(h.rows, cloneRow(row))
	h.offsets = append(h.offsets, offset)
}

// TileAt returns the tile at absolute column col within the row'th
// generation. A row before the start of time (row < 0) or past the
// last recorded generation is always off-tape and returns false
// regardless of mode, since time does not run backward or beyond what
// has actually been computed. A column outside a valid row's
// materialized cells is off-tape too, but mode may substitute the
// border tile for it.
func (h *History) TileAt(row, col int, mode BorderMode) (tiling.Tile, bool) {
	if row < 0 || row >= len(h.rows) {
		return tiling.Tile{}, false
	}

	gen := h.rows[row]
	offset := h.offsets[row]
	idx := col - offset

	if idx < 0 || idx >= len(gen) {
		if mode == IncludeBorder {
			return h.program.Border(), true
		}
		return tiling.Tile{}, false
	}

	return h.program.pile.Tile(gen[idx]), true
}

// Generations reports how many rows (including the initial row) have
// been recorded.
func (h *History) Generations() int {
	return len(h.rows)
}

// TileAt exposes the Program's recorded row history for coordinate-
// keyed queries, per the renderer query surface.
func (p *Program) TileAt(row, col int, mode BorderMode) (tiling.Tile, bool) {
	return p.history.TileAt(row, col, mode)
}

// Generations reports how many rows (including the initial row) this
// Program has produced so far.
func (p *Program) Generations() int {
	return p.history.Generations()
}
