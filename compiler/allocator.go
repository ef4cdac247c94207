package compiler

import "github.com/jcande/bones/tiling"

// pipAllocator hands out pips that are guaranteed not to collide with
// any position-encoded pip (tiling.PipOf) used by the program being
// compiled, or with each other. The original W-machine-to-tile
// translation reused an instruction's own position as its Seek "bind"
// pip and a single hardcoded 0xdead as every Input instruction's
// pending-read marker; both are only coincidentally collision-free; a
// program with enough instructions can make pip_of(position, bit)
// land exactly on 0xdead. This allocator instead carves out a
// dedicated range above every pip this compilation could possibly
// produce from position encoding, and hands out one fresh pip from it
// per request.
type pipAllocator struct {
	next tiling.Pip
}

// newPipAllocator reserves a range starting just past the highest
// position pip instructionCount instructions (starting at baseOffset)
// could ever produce.
func newPipAllocator(instructionCount int) *pipAllocator {
	ceiling := tiling.PipOf(instructionCount+baseOffset+1, 0)
	return &pipAllocator{next: ceiling}
}

// alloc returns a fresh pip, distinct from every other pip this
// allocator has produced and from every position-encoded pip in the
// program that created it.
func (a *pipAllocator) alloc() tiling.Pip {
	p := a.next
	a.next++
	return p
}
