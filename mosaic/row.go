package mosaic

import (
	"errors"
	"fmt"

	"github.com/jcande/bones/tiling"
)

// ErrUnsatisfiableConstraints is returned when propagation narrows some
// cell's cloud to nothing; the wrapped error carries a description of
// the offending cell.
var ErrUnsatisfiableConstraints = errors.New("mosaic: constraints proved impossible to satisfy")

type unsatisfiableError struct {
	context string
}

func (e *unsatisfiableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsatisfiableConstraints, e.context)
}

func (e *unsatisfiableError) Unwrap() error {
	return ErrUnsatisfiableConstraints
}

// row holds one generation's worth of TileClouds: a west frontier cloud,
// one cloud per current cell, and an east frontier cloud. Evolve
// narrows them via a single left-to-right propagation sweep and
// resolves them into the next generation's tile refs.
type row struct {
	pile   *tiling.DominoPile
	clouds []*TileCloud
	border tiling.TileRef
}

// newRow builds the len(board)+2 candidate clouds for the next
// generation: a west frontier, one cloud per current cell (narrowed by
// that cell's South pip), and an east frontier. The frontier clouds
// model lateral growth of at most one cell per step; they are always
// added and later elided if they resolve back to the border tile.
func newRow(pile *tiling.DominoPile, border tiling.TileRef, board []tiling.TileRef) *row {
	clouds := make([]*TileCloud, 0, len(board)+2)

	latitude := toSet(pile.Matches(border, tiling.South))

	// West frontier: tiles that could sit south of the border (so
	// they extend the tape) and whose west pip mates with the
	// border's east pip (the void lies to their west).
	{
		longitude := toSet(pile.Matches(border, tiling.East))
		clouds = append(clouds, NewTileCloud(pile, intersect(longitude, latitude), Prefer(border)))
	}

	for _, ref := range board {
		candidates := pile.Matches(ref, tiling.South)
		clouds = append(clouds, NewTileCloud(pile, candidates, Avoid(border)))
	}

	// East frontier: mirror of the west frontier.
	{
		longitude := toSet(pile.Matches(border, tiling.West))
		clouds = append(clouds, NewTileCloud(pile, intersect(longitude, latitude), Prefer(border)))
	}

	return &row{pile: pile, clouds: clouds, border: border}
}

func toSet(refs []tiling.TileRef) map[tiling.TileRef]struct{} {
	set := make(map[tiling.TileRef]struct{}, len(refs))
	for _, r := range refs {
		set[r] = struct{}{}
	}
	return set
}

func intersect(a, b map[tiling.TileRef]struct{}) []tiling.TileRef {
	var out []tiling.TileRef
	for r := range a {
		if _, ok := b[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// evolve runs the single left-to-right propagation sweep, selects one
// tile per cloud, and trims a leading/trailing border selection (no
// lateral growth on that side this step).
func (r *row) evolve() ([]tiling.TileRef, error) {
	last := len(r.clouds) - 1
	for i := range r.clouds {
		if i > 0 {
			if err := r.clouds[i].Constrain(r.clouds[i-1], tiling.West); err != nil {
				return nil, &unsatisfiableError{
					context: fmt.Sprintf("western: cloud %d has %d candidates before a matching west predecessor", i, r.clouds[i].Len()),
				}
			}
		}
		if i < last {
			if err := r.clouds[i].Constrain(r.clouds[i+1], tiling.East); err != nil {
				return nil, &unsatisfiableError{
					context: fmt.Sprintf("eastern: cloud %d has %d candidates before a matching east successor", i, r.clouds[i].Len()),
				}
			}
		}
	}

	next := make([]tiling.TileRef, 0, len(r.clouds))
	for i, cloud := range r.clouds {
		ref, err := cloud.Select()
		if err != nil {
			return nil, err
		}

		inBorderPosition := i == 0 || i == last
		if inBorderPosition && ref == r.border {
			continue
		}
		next = append(next, ref)
	}
	return next, nil
}

// Evolve runs the row evolver once: given the previous row and the
// border tile ref, it produces the next row or reports why placement
// was infeasible.
func Evolve(pile *tiling.DominoPile, border tiling.TileRef, board []tiling.TileRef) ([]tiling.TileRef, error) {
	return newRow(pile, border, board).evolve()
}
