// Command bones parses a wmach program, compiles it to a mosaic
// tiling, and runs it -- headless, rendered in a window, or under an
// interactive debug REPL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jcande/bones/bitio"
	"github.com/jcande/bones/compiler"
	"github.com/jcande/bones/mosaic"
	"github.com/jcande/bones/render"
	"github.com/jcande/bones/wmach"
)

func main() {
	programPath := flag.String("program", "", "path to a wmach source file (required)")
	inPath := flag.String("in", "", "input file for the program's bit-serial stdin (default: stdin)")
	outPath := flag.String("out", "", "output file for the program's bit-serial stdout (default: stdout)")
	steps := flag.Int("steps", 0, "number of generations to run headless (0 = run to completion)")
	doRender := flag.Bool("render", false, "open an ebiten window visualizing the running program")
	doDebug := flag.Bool("debug", false, "enter an interactive debug REPL instead of running directly")
	flag.Parse()

	if *programPath == "" {
		fmt.Fprintln(os.Stderr, "bones: -program is required")
		flag.Usage()
		os.Exit(2)
	}

	prog, err := wmach.ParseFile(*programPath)
	if err != nil {
		log.Fatalf("bones: parsing %s: %v", *programPath, err)
	}

	io, closeIO, err := openIO(*inPath, *outPath)
	if err != nil {
		log.Fatalf("bones: %v", err)
	}
	defer closeIO()

	p, err := compiler.Compile(prog, io)
	if err != nil {
		log.Fatalf("bones: compiling %s: %v", *programPath, err)
	}

	switch {
	case *doRender:
		runRendered(p)
	case *doDebug:
		runDebug(context.Background(), p)
	default:
		runHeadless(p, *steps)
	}
}

// openIO resolves -in/-out into a bitio.Buffer, defaulting to stdio
// when either path is left empty.
func openIO(inPath, outPath string) (*bitio.Buffer, func(), error) {
	in := os.Stdin
	out := os.Stdout
	closers := make([]func() error, 0, 2)

	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening -in %s: %w", inPath, err)
		}
		in = f
		closers = append(closers, f.Close)
	}
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening -out %s: %w", outPath, err)
		}
		out = f
		closers = append(closers, f.Close)
	}

	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Printf("bones: closing io: %v", err)
			}
		}
	}

	return bitio.NewBuffer(in, out), closeAll, nil
}

func runHeadless(p *mosaic.Program, steps int) {
	n := 0
	for steps == 0 || n < steps {
		if err := p.Step(); err != nil {
			log.Printf("bones: halted after %d steps: %v", n, err)
			return
		}
		n++
	}
	log.Printf("bones: ran %d steps", n)
}

func runRendered(p *mosaic.Program) {
	ebiten.SetWindowSize(960, 540)
	ebiten.SetWindowTitle("bones")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(render.New(p)); err != nil {
		log.Fatalf("bones: %v", err)
	}
}
