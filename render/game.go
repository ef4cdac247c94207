// Package render implements a non-interactive ebiten visualizer for a
// running mosaic.Program. It paints recorded generations as strips of
// colored cells; panning, zooming, and pointer handling are left out
// entirely -- this is a read-only window onto a Program's history, not
// an interactive canvas.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/jcande/bones/mosaic"
	"github.com/jcande/bones/tiling"
)

const (
	cellSize = 4
	maxRows  = 256
)

// Game drives a mosaic.Program one Step per Update tick and paints its
// row history. It implements ebiten.Game.
type Game struct {
	program *mosaic.Program
	steps   int
	halted  bool

	colors  map[tiling.Pip]color.RGBA
	palette []color.RGBA
}

// New builds a Game around an already-compiled Program.
func New(program *mosaic.Program) *Game {
	return &Game{
		program: program,
		colors:  make(map[tiling.Pip]color.RGBA),
		palette: defaultPalette(),
	}
}

func defaultPalette() []color.RGBA {
	return []color.RGBA{
		{R: 0x1b, G: 0x1b, B: 0x1b, A: 0xff},
		{R: 0xd6, G: 0x2d, B: 0x20, A: 0xff},
		{R: 0x2d, G: 0x8c, B: 0x3c, A: 0xff},
		{R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
		{R: 0xca, G: 0x8a, B: 0x04, A: 0xff},
		{R: 0x9d, G: 0x4e, B: 0xdd, A: 0xff},
		{R: 0x0e, G: 0x7a, B: 0x90, A: 0xff},
		{R: 0xe8, G: 0x7a, B: 0x1e, A: 0xff},
	}
}

func (g *Game) colorFor(p tiling.Pip) color.RGBA {
	if c, ok := g.colors[p]; ok {
		return c
	}
	c := g.palette[len(g.colors)%len(g.palette)]
	g.colors[p] = c
	return c
}

// Update advances the program one step per tick. Once the program can
// no longer progress (unsatisfiable constraints, exhausted input) it
// simply stops stepping rather than erroring out of the render loop;
// the last painted state stays on screen.
func (g *Game) Update() error {
	if g.halted {
		return nil
	}
	if err := g.program.Step(); err != nil {
		g.halted = true
		return nil
	}
	g.steps++
	return nil
}

// Layout uses the window's own size as the logical resolution, so one
// logical pixel is one window pixel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Draw paints every recorded generation still within maxRows of the
// present, most recent at the bottom. Each cell's color is resolved
// from its North pip, the value the head was holding when that cell
// was placed.
func (g *Game) Draw(screen *ebiten.Image) {
	gens := g.program.Generations()
	first := 0
	if gens > maxRows {
		first = gens - maxRows
	}

	for row := first; row < gens; row++ {
		g.drawRow(screen, row, (row-first)*cellSize)
	}

	status := fmt.Sprintf("step %d / %d generations", g.steps, gens)
	if g.halted {
		status += " (halted)"
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) drawRow(screen *ebiten.Image, row, y int) {
	width := screen.Bounds().Dx()
	cols := width / cellSize
	half := cols / 2

	for col := -half; col < half; col++ {
		tile, ok := g.program.TileAt(row, col, mosaic.ExcludeBorder)
		if !ok {
			continue
		}

		c := g.colorFor(tile.North)
		x := (col + half) * cellSize
		for dx := 0; dx < cellSize; dx++ {
			for dy := 0; dy < cellSize; dy++ {
				screen.Set(x+dx, y+dy, c)
			}
		}
	}
}
