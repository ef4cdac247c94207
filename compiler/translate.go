package compiler

import (
	"github.com/jcande/bones/tiling"
	"github.com/jcande/bones/wmach"
)

// mkWrite builds the two entry tiles for a Write instruction: one for
// each possible incoming bit, both routing to the same successor pip
// since a Write instruction's outcome never depends on the current
// bit, only on the operand.
func mkWrite(position int, op wmach.WriteOp) []tiling.Domino {
	north0 := tiling.PipOf(position, 0)
	north1 := tiling.PipOf(position, 1)

	east := tiling.EmptyPip
	west := tiling.EmptyPip

	bit := 0
	if op == wmach.Set {
		bit = 1
	}
	south := tiling.PipOf(position+1, bit)

	tile0 := tiling.NewTile(north0, east, south, west)
	tile1 := tiling.NewTile(north1, east, south, west)

	return []tiling.Domino{tiling.PureDomino(tile0), tiling.PureDomino(tile1)}
}

// mkSeek builds a Seek instruction's two-tile entry point plus the
// three-tile "bound" family it hands off to: the entry tiles carry the
// current bit south unmodified while binding the direction-appropriate
// edge to a pip unique to this instruction, and the bound tiles
// consume that binding to continue into the successor instruction. The
// bound family's third tile (north = UnallocatedPip) lets the seek
// proceed even when nothing has ever written a bit at the new head
// position yet, defaulting to 0.
func mkSeek(position int, op wmach.SeekOp, bind tiling.Pip) []tiling.Domino {
	north0 := tiling.PipOf(position, 0)
	north1 := tiling.PipOf(position, 1)

	var entryEast, entryWest tiling.Pip
	if op == wmach.Left {
		entryEast, entryWest = tiling.EmptyPip, bind
	} else {
		entryEast, entryWest = bind, tiling.EmptyPip
	}

	south0 := tiling.ZeroPip
	south1 := tiling.OnePip

	entry0 := tiling.NewTile(north0, entryEast, south0, entryWest)
	entry1 := tiling.NewTile(north1, entryEast, south1, entryWest)

	var boundEast, boundWest tiling.Pip
	if op == wmach.Left {
		boundEast, boundWest = bind, tiling.EmptyPip
	} else {
		boundEast, boundWest = tiling.EmptyPip, bind
	}

	boundSouth0 := tiling.PipOf(position+1, 0)
	boundSouth1 := tiling.PipOf(position+1, 1)

	bound0 := tiling.NewTile(tiling.ZeroPip, boundEast, boundSouth0, boundWest)
	bound1 := tiling.NewTile(tiling.OnePip, boundEast, boundSouth1, boundWest)
	boundUnallocated := tiling.NewTile(tiling.UnallocatedPip, boundEast, boundSouth0, boundWest)

	return []tiling.Domino{
		tiling.PureDomino(entry0),
		tiling.PureDomino(entry1),
		tiling.PureDomino(bound0),
		tiling.PureDomino(bound1),
		tiling.PureDomino(boundUnallocated),
	}
}

// mkIo builds an Io instruction's tiles. An In reads one bit: the
// entry tile's south edge is a dead marker, immediately replaced by
// the bit-0 or bit-1 alt tile at Step time, never placed as-is. An Out
// writes one bit: the current bit (already distinguished by which
// entry tile -- north0 or north1 -- was placed) is emitted directly,
// no resolution needed.
func mkIo(position int, op wmach.IoOp, dead tiling.Pip) []tiling.Domino {
	north0 := tiling.PipOf(position, 0)
	north1 := tiling.PipOf(position, 1)

	east := tiling.EmptyPip
	west := tiling.EmptyPip

	south0 := tiling.PipOf(position+1, 0)
	south1 := tiling.PipOf(position+1, 1)

	if op == wmach.In {
		tile0 := tiling.NewTile(north0, east, dead, west)
		tile0Zero := tiling.NewTile(north0, east, south0, west)
		tile0One := tiling.NewTile(north0, east, south1, west)

		tile1 := tiling.NewTile(north1, east, dead, west)
		tile1Zero := tiling.NewTile(north1, east, south0, west)
		tile1One := tiling.NewTile(north1, east, south1, west)

		return []tiling.Domino{
			tiling.InputDomino(tile0, [2]tiling.Tile{tile0Zero, tile0One}),
			tiling.InputDomino(tile1, [2]tiling.Tile{tile1Zero, tile1One}),
		}
	}

	tile0 := tiling.NewTile(north0, east, south0, west)
	tile1 := tiling.NewTile(north1, east, south1, west)

	return []tiling.Domino{
		tiling.OutputDomino(tile0, false),
		tiling.OutputDomino(tile1, true),
	}
}

// mkJmp builds a Jmp instruction's two tiles: the bit-1 entry routes to
// trueTarget, the bit-0 entry to falseTarget. Both targets are
// instruction offsets from the wmach program; baseOffset aligns them
// with the tile positions this compiler assigns starting at 1.
func mkJmp(position int, trueTarget, falseTarget wmach.InsnOffset) []tiling.Domino {
	north0 := tiling.PipOf(position, 0)
	north1 := tiling.PipOf(position, 1)

	east := tiling.EmptyPip
	west := tiling.EmptyPip

	south0 := tiling.PipOf(falseTarget+baseOffset, 0)
	south1 := tiling.PipOf(trueTarget+baseOffset, 1)

	tile0 := tiling.NewTile(north0, east, south0, west)
	tile1 := tiling.NewTile(north1, east, south1, west)

	return []tiling.Domino{tiling.PureDomino(tile0), tiling.PureDomino(tile1)}
}
