package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/jcande/bones/mosaic"
	"github.com/jcande/bones/tiling"
)

// runDebug drives an interactive menu loop over a compiled Program,
// modeled on a classic step/breakpoint/dump debugger: the tile-machine
// analogue of single-stepping an emulator's instruction stream is
// single-stepping its row generations.
func runDebug(ctx context.Context, p *mosaic.Program) {
	breakpoints := make(map[int]struct{})
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("bones debug REPL. Type 'h' for help.")
	for {
		fmt.Printf("(gen %d) > ", p.Generations()-1)
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "h", "help":
			printDebugHelp()

		case "s", "step":
			n := 1
			if len(fields) > 1 {
				if v, err := strconv.Atoi(fields[1]); err == nil {
					n = v
				}
			}
			stepN(p, n, breakpoints)

		case "r", "run":
			runToBreakpointOrInterrupt(ctx, p, breakpoints)

		case "b", "break":
			if len(fields) < 2 {
				fmt.Println("usage: break <generation>")
				continue
			}
			gen, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("invalid generation:", fields[1])
				continue
			}
			breakpoints[gen] = struct{}{}

		case "c", "clear":
			breakpoints = make(map[int]struct{})

		case "d", "dump":
			dumpRow(p)

		case "q", "quit":
			return

		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

func printDebugHelp() {
	fmt.Println(`commands:
  s [n]        step n generations (default 1)
  r            run until a breakpoint or interrupt
  b <gen>      set a breakpoint at generation gen
  c            clear all breakpoints
  d            dump the current row's tiles
  q            quit`)
}

func stepN(p *mosaic.Program, n int, breakpoints map[int]struct{}) {
	for i := 0; i < n; i++ {
		if err := p.Step(); err != nil {
			fmt.Println("halted:", err)
			return
		}
		if _, hit := breakpoints[p.Generations()-1]; hit {
			fmt.Printf("breakpoint hit at generation %d\n", p.Generations()-1)
			return
		}
	}
}

// runToBreakpointOrInterrupt steps the program until it halts, hits a
// breakpoint, or the user sends SIGINT/SIGTERM -- the same shape as
// an emulator's run-to-completion command, just without a clock rate
// to throttle.
func runToBreakpointOrInterrupt(ctx context.Context, p *mosaic.Program, breakpoints map[int]struct{}) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("interrupted")
			return
		default:
		}

		if err := p.Step(); err != nil {
			fmt.Println("halted:", err)
			return
		}
		if _, hit := breakpoints[p.Generations()-1]; hit {
			fmt.Printf("breakpoint hit at generation %d\n", p.Generations()-1)
			return
		}
	}
}

func dumpRow(p *mosaic.Program) {
	pile := p.Pile()
	state := p.State()
	for i, tile := range state {
		kind := ""
		if ref, ok := pile.Get(tile); ok && pile.Kind(ref) != tiling.KindPure {
			kind = fmt.Sprintf(" <%v>", pile.Kind(ref))
		}
		fmt.Printf("  [%d] %v%s\n", i, tile, kind)
	}
	if len(state) == 0 {
		fmt.Println("  (empty row)")
	}
}
