// Package compiler translates a resolved wmach.Program into a runnable
// mosaic.Program: every instruction becomes a small family of tiles
// glued together by pip-encoded program-counter and tape-bit state.
package compiler

import (
	"fmt"

	"github.com/jcande/bones/bitio"
	"github.com/jcande/bones/mosaic"
	"github.com/jcande/bones/tiling"
	"github.com/jcande/bones/wmach"
)

// baseOffset is the tile position the first instruction compiles to.
// Position 0 is left unused so the initial row's tiles (which carry a
// magic east/west pip found nowhere else) can never be mistaken for a
// real instruction's entry point.
const baseOffset = 1

// Backend bundles a parsed wmach.Program with its bit-serial stdio so
// callers that hold both can compile in one shot.
type Backend struct {
	Program *wmach.Program
	IO      *bitio.Buffer
}

// Compile translates the wrapped wmach.Program into a runnable
// mosaic.Program.
func (b Backend) Compile() (*mosaic.Program, error) {
	return Compile(b.Program, b.IO)
}

// Compile translates prog into a runnable mosaic.Program. io may be
// nil, in which case the compiled program defaults to stdin/stdout.
func Compile(prog *wmach.Program, io *bitio.Buffer) (*mosaic.Program, error) {
	var tiles []tiling.Tile

	// Void wranglers: stopgap tiles that absorb the frontier clouds on
	// either side of the tape. The initial row has none, so the first
	// step places one at each end; after that a row grows only when an
	// instruction's own tiles demand it.
	westAlcove := tiling.NewTile(tiling.UnallocatedPip, tiling.EmptyPip, tiling.UnallocatedPip, tiling.UnallocatedPip)
	eastAlcove := tiling.NewTile(tiling.UnallocatedPip, tiling.UnallocatedPip, tiling.UnallocatedPip, tiling.EmptyPip)
	tiles = append(tiles, westAlcove, eastAlcove)

	// Once a cell settles on a bit with no further instruction acting
	// on it, it keeps emitting that same bit forever.
	persist0 := tiling.NewTile(tiling.ZeroPip, tiling.EmptyPip, tiling.ZeroPip, tiling.EmptyPip)
	persist1 := tiling.NewTile(tiling.OnePip, tiling.EmptyPip, tiling.OnePip, tiling.EmptyPip)
	tiles = append(tiles, persist0, persist1)

	border := tiling.NewTile(tiling.UnallocatedPip, tiling.UnallocatedPip, tiling.UnallocatedPip, tiling.UnallocatedPip)
	tiles = append(tiles, border)

	alloc := newPipAllocator(len(prog.Instructions))
	uniqueMagic := alloc.alloc()

	startPip := tiling.PipOf(baseOffset, 0)
	initial := tiling.NewTile(tiling.UnallocatedPip, uniqueMagic, startPip, uniqueMagic)
	initialWest := tiling.NewTile(tiling.UnallocatedPip, uniqueMagic, tiling.EmptyPip, tiling.UnallocatedPip)
	initialEast := tiling.NewTile(tiling.UnallocatedPip, tiling.UnallocatedPip, tiling.EmptyPip, uniqueMagic)
	tiles = append(tiles, initial, initialWest, initialEast)

	dominoes := make([]tiling.Domino, 0, len(tiles))
	for _, t := range tiles {
		dominoes = append(dominoes, tiling.PureDomino(t))
	}

	for i, insn := range prog.Instructions {
		position := i + baseOffset

		var translated []tiling.Domino
		switch in := insn.(type) {
		case wmach.WriteInsn:
			translated = mkWrite(position, in.Op)
		case wmach.SeekInsn:
			translated = mkSeek(position, in.Op, alloc.alloc())
		case wmach.IoInsn:
			translated = mkIo(position, in.Op, alloc.alloc())
		case wmach.JmpInsn:
			translated = mkJmp(position, in.True, in.False)
		case wmach.DebugInsn:
			return nil, fmt.Errorf("%w: instruction %d", ErrDebugUnsupported, i)
		default:
			panic(fmt.Sprintf("compiler: unknown instruction type %T", insn))
		}

		dominoes = append(dominoes, translated...)
	}

	return mosaic.NewProgram(dominoes, border, []tiling.Tile{initialWest, initial, initialEast}, io)
}
