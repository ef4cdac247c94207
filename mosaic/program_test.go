package mosaic

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jcande/bones/bitio"
	"github.com/jcande/bones/tiling"
)

func newTile(north, east, south, west tiling.Pip) tiling.Tile {
	return tiling.NewTile(north, east, south, west)
}

// TestSetAndShiftProgram mirrors the reference set-and-shift fixture: a
// single set bit walks east one cell per generation, leaving a trail of
// "stay set" tiles behind it.
func TestSetAndShiftProgram(t *testing.T) {
	border := newTile(0, 0, 0, 0)
	starterTile := newTile(0, 0, 10, 0)
	setAndShift := newTile(10, 7, 1, 0)
	staySet := newTile(1, 0, 1, 0)
	shiftAndRepeat := newTile(0, 0, 10, 7)

	dominoes := []tiling.Domino{
		tiling.PureDomino(border),
		tiling.PureDomino(starterTile),
		tiling.PureDomino(setAndShift),
		tiling.PureDomino(staySet),
		tiling.PureDomino(shiftAndRepeat),
	}

	p, err := NewProgram(dominoes, border, []tiling.Tile{starterTile}, nil)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := p.Step(); err != nil {
			t.Fatalf("Step() #%d: %v", i, err)
		}
	}

	want := []tiling.Tile{staySet, staySet, setAndShift, shiftAndRepeat}
	got := p.State()
	if len(got) != len(want) {
		t.Fatalf("State() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("State()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCheckEmptyState(t *testing.T) {
	border := newTile(0, 0, 0, 0)
	dominoes := []tiling.Domino{tiling.PureDomino(border)}

	_, err := NewProgram(dominoes, border, nil, nil)
	if !errors.Is(err, ErrEmptyInitialState) {
		t.Fatalf("NewProgram() err = %v, want ErrEmptyInitialState", err)
	}
}

func TestVerifyAlts(t *testing.T) {
	border := newTile(0, 0, 0, 0)
	tile := newTile(1, 1, 0, 1)
	alt0 := newTile(1, 0xbad, 0, 1)
	alt1 := newTile(1, 1, 0, 1)

	dominoes := []tiling.Domino{
		tiling.PureDomino(border),
		tiling.InputDomino(tile, [2]tiling.Tile{alt0, alt1}),
	}

	_, err := NewProgram(dominoes, border, []tiling.Tile{border}, nil)
	if !errors.Is(err, ErrInvalidInputAlts) {
		t.Fatalf("NewProgram() err = %v, want ErrInvalidInputAlts", err)
	}
}

func TestVerifyBorderCheck(t *testing.T) {
	border := newTile(0, 0, 0, 0)
	initial := newTile(1, 1, 1, 1)
	dominoes := []tiling.Domino{tiling.PureDomino(initial)}

	_, err := NewProgram(dominoes, border, []tiling.Tile{initial}, nil)
	if !errors.Is(err, ErrInvalidTileBorder) {
		t.Fatalf("NewProgram() err = %v, want ErrInvalidTileBorder", err)
	}
}

func TestVerifyInitialTilesPreset(t *testing.T) {
	border := newTile(0, 0, 0, 0)
	extra := newTile(1, 1, 1, 1)
	dominoes := []tiling.Domino{tiling.PureDomino(border)}

	_, err := NewProgram(dominoes, border, []tiling.Tile{border, extra}, nil)
	if !errors.Is(err, ErrInvalidTile) {
		t.Fatalf("NewProgram() err = %v, want ErrInvalidTile", err)
	}
}

func TestVerifyInitialTiles(t *testing.T) {
	border := newTile(0, 0, 0, 0)
	left := newTile(0, 1, 0, 0)
	right := newTile(0, 0xbad, 0, 1)

	dominoes := []tiling.Domino{
		tiling.PureDomino(border),
		tiling.PureDomino(left),
		tiling.PureDomino(right),
	}

	_, err := NewProgram(dominoes, border, []tiling.Tile{left, right}, nil)
	if !errors.Is(err, ErrInvalidInitialTile) {
		t.Fatalf("NewProgram() err = %v, want ErrInvalidInitialTile", err)
	}
}

// TestImpossibleInitialBit constructs a tile-set where the sole initial
// tile's south pip has no matching northern pip anywhere in the pile, so
// the very first Step must fail with ErrUnsatisfiableConstraints.
func TestImpossibleInitialBit(t *testing.T) {
	border := newTile(0, 0, 0, 0)
	badStart := newTile(0, 0, 0xBAD, 0)

	dominoes := []tiling.Domino{
		tiling.PureDomino(border),
		tiling.PureDomino(badStart),
	}

	p, err := NewProgram(dominoes, border, []tiling.Tile{badStart}, nil)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}

	if err := p.Step(); !errors.Is(err, ErrUnsatisfiableConstraints) {
		t.Fatalf("Step() err = %v, want ErrUnsatisfiableConstraints", err)
	}
}

// TestWriteZeroProgram exercises a single write: the sole cell always
// resolves to a "zero persists" tile once written, regardless of how
// many times it is stepped.
func TestWriteZeroProgram(t *testing.T) {
	border := newTile(0, 0, 0, 0)
	starter := newTile(0, 0, 5, 0)
	writeZero := newTile(5, 0, 9, 0)
	persistZero := newTile(9, 0, 9, 0)

	dominoes := []tiling.Domino{
		tiling.PureDomino(border),
		tiling.PureDomino(starter),
		tiling.PureDomino(writeZero),
		tiling.PureDomino(persistZero),
	}

	p, err := NewProgram(dominoes, border, []tiling.Tile{starter}, nil)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := p.Step(); err != nil {
			t.Fatalf("Step() #%d: %v", i, err)
		}
	}

	want := persistZero
	got := p.State()
	if len(got) != 1 || got[0] != want {
		t.Fatalf("State() = %v, want [%v]", got, want)
	}
}

// TestEchoBitProgram verifies that an Input tile followed by an Output
// tile echoes one bit: the Output tile placed matches the bit read from
// the input stream, and the emitted bit is held in the output register.
func TestEchoBitProgram(t *testing.T) {
	border := newTile(0, 0, 0, 0)
	starter := newTile(0, 0, 1, 0)

	readTile := newTile(1, 0, 0xdead, 0)
	readZero := newTile(1, 0, 2, 0)
	readOne := newTile(1, 0, 3, 0)

	writeZero := newTile(2, 0, 4, 0)
	writeOne := newTile(3, 0, 4, 0)
	done := newTile(4, 0, 4, 0)

	dominoes := []tiling.Domino{
		tiling.PureDomino(border),
		tiling.PureDomino(starter),
		tiling.InputDomino(readTile, [2]tiling.Tile{readZero, readOne}),
		tiling.OutputDomino(writeZero, false),
		tiling.OutputDomino(writeOne, true),
		tiling.PureDomino(done),
	}

	in := bytes.NewReader([]byte{0b00000001})
	var out bytes.Buffer
	buf := bitio.NewBuffer(in, &out)

	p, err := NewProgram(dominoes, border, []tiling.Tile{starter}, buf)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := p.Step(); err != nil {
			t.Fatalf("Step() #%d: %v", i, err)
		}
	}

	got := p.State()
	if len(got) != 1 || got[0] != writeOne {
		t.Fatalf("State() after read = %v, want [%v]", got, writeOne)
	}

	if err := p.Step(); err != nil {
		t.Fatalf("Step() #2: %v", err)
	}
	got = p.State()
	if len(got) != 1 || got[0] != done {
		t.Fatalf("State() after write = %v, want [%v]", got, done)
	}

	// The output register only flushes a byte once 8 bits have
	// accumulated (see bitio's own tests for that boundary); a single
	// echoed bit is held in the register rather than written yet.
	if out.Len() != 0 {
		t.Fatalf("unexpected early flush: %v", out.Bytes())
	}
}

// TestLateralGrowthWest exercises a single program step that extends the
// tape one cell to the west, verifying History.TileAt tracks the offset.
func TestLateralGrowthWest(t *testing.T) {
	border := newTile(0, 0, 0, 0)
	starter := newTile(0, 0, 10, 0)
	growWest := newTile(10, 0, 1, 7)
	newWest := newTile(0, 7, 1, 0)

	dominoes := []tiling.Domino{
		tiling.PureDomino(border),
		tiling.PureDomino(starter),
		tiling.PureDomino(growWest),
		tiling.PureDomino(newWest),
	}

	p, err := NewProgram(dominoes, border, []tiling.Tile{starter}, nil)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}

	if err := p.Step(); err != nil {
		t.Fatalf("Step(): %v", err)
	}

	got := p.State()
	want := []tiling.Tile{newWest, growWest}
	if len(got) != len(want) {
		t.Fatalf("State() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("State()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	tile, ok := p.TileAt(1, -1, ExcludeBorder)
	if !ok || tile != newWest {
		t.Errorf("TileAt(1, -1) = %v, %v, want %v, true", tile, ok, newWest)
	}
	tile, ok = p.TileAt(1, 0, ExcludeBorder)
	if !ok || tile != growWest {
		t.Errorf("TileAt(1, 0) = %v, %v, want %v, true", tile, ok, growWest)
	}
	if _, ok := p.TileAt(1, 1, ExcludeBorder); ok {
		t.Errorf("TileAt(1, 1) should be off-tape")
	}
	if _, ok := p.TileAt(-1, 0, IncludeBorder); ok {
		t.Errorf("TileAt(-1, 0) should always be off-tape regardless of mode")
	}
}

// TestLateralGrowthBothFrontiers exercises a single step that forces
// growth at both the west and east frontiers simultaneously: the sole
// cell's tile carries a distinct bind pip on each outward edge, each
// matched by its own dedicated frontier tile, so neither side collapses
// back to the border.
func TestLateralGrowthBothFrontiers(t *testing.T) {
	border := newTile(0, 0, 0, 0)
	starter := newTile(0, 0, 10, 0)
	growBoth := newTile(10, 9, 1, 7)
	newWest := newTile(0, 7, 1, 0)
	newEast := newTile(0, 0, 1, 9)

	dominoes := []tiling.Domino{
		tiling.PureDomino(border),
		tiling.PureDomino(starter),
		tiling.PureDomino(growBoth),
		tiling.PureDomino(newWest),
		tiling.PureDomino(newEast),
	}

	p, err := NewProgram(dominoes, border, []tiling.Tile{starter}, nil)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}

	if err := p.Step(); err != nil {
		t.Fatalf("Step(): %v", err)
	}

	got := p.State()
	want := []tiling.Tile{newWest, growBoth, newEast}
	if len(got) != len(want) {
		t.Fatalf("State() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("State()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if tile, ok := p.TileAt(1, -1, ExcludeBorder); !ok || tile != newWest {
		t.Errorf("TileAt(1, -1) = %v, %v, want %v, true", tile, ok, newWest)
	}
	if tile, ok := p.TileAt(1, 0, ExcludeBorder); !ok || tile != growBoth {
		t.Errorf("TileAt(1, 0) = %v, %v, want %v, true", tile, ok, growBoth)
	}
	if tile, ok := p.TileAt(1, 1, ExcludeBorder); !ok || tile != newEast {
		t.Errorf("TileAt(1, 1) = %v, %v, want %v, true", tile, ok, newEast)
	}
	if _, ok := p.TileAt(1, 2, ExcludeBorder); ok {
		t.Errorf("TileAt(1, 2) should be off-tape")
	}
}
