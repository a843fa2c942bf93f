// Command egress-view renders a saved layout bundle full-screen in the
// terminal: walls, exits and, with -agents, simulated escape routes.
//
// Quit with q, Escape or Ctrl-C.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/egresslab/egress/artifact"
	"github.com/egresslab/egress/evac"
	"github.com/egresslab/egress/grid"
)

// defaultRoot is where egress-gen drops bundles.
const defaultRoot = "layouts"

var (
	wallStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	exitStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	pathStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	startStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	barStyle   = tcell.StyleDefault.Reverse(true)
)

// view is everything the renderer needs: the grid plus overlay cell
// sets, all immutable after load.
type view struct {
	g      *grid.Grid
	dir    string
	exits  map[grid.Cell]bool
	starts map[grid.Cell]bool
	paths  map[grid.Cell]bool
	res    *evac.Result
}

func main() {
	var (
		agents = flag.Int("agents", 0, "simulate this many people and overlay their routes")
		seed   = flag.Int64("seed", 0, "placement seed, 0 derives one from the clock")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [layout-dir]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Renders a layout bundle in the terminal. Without an argument the\n")
		fmt.Fprintf(os.Stderr, "newest bundle under %s/ is used.\n\n", defaultRoot)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s layouts/20260823_142501\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -agents 12 -seed 7\n", os.Args[0])
	}
	flag.Parse()

	dir := flag.Arg(0)
	if dir == "" {
		latest, err := artifact.ResolveLatest(defaultRoot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "egress-view: %v\n", err)
			os.Exit(1)
		}
		dir = latest
	}

	v, err := load(dir, *agents, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "egress-view: %v\n", err)
		os.Exit(1)
	}

	if err := run(v); err != nil {
		fmt.Fprintf(os.Stderr, "egress-view: %v\n", err)
		os.Exit(1)
	}
}

// load reads the bundle and, when agents > 0, simulates the overlay.
func load(dir string, agents int, seed int64) (*view, error) {
	b, err := artifact.Load(dir)
	if err != nil {
		return nil, err
	}

	v := &view{
		g:      b.Grid,
		dir:    dir,
		exits:  make(map[grid.Cell]bool, len(b.Exits)),
		starts: make(map[grid.Cell]bool),
		paths:  make(map[grid.Cell]bool),
	}
	for _, e := range b.Exits {
		v.exits[e] = true
	}

	if agents > 0 {
		res, err := evac.Simulate(b.Grid, b.Exits,
			evac.WithAgents(agents), evac.WithSeed(seed))
		if err != nil {
			return nil, err
		}
		v.res = res
		for i := range res.Agents {
			a := &res.Agents[i]
			v.starts[a.Start] = true
			for _, c := range a.Path {
				v.paths[c] = true
			}
		}
	}

	return v, nil
}

func run(v *view) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	draw(screen, v)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, v)
		}
	}
}

// draw downsamples the grid into the terminal area above the status
// bar. Terminal characters are about twice as tall as wide, so each
// screen cell covers an s wide, 2s tall block of grid cells.
func draw(s tcell.Screen, v *view) {
	s.Clear()
	tw, th := s.Size()
	rows := th - 1
	if tw < 1 || rows < 1 {
		s.Show()
		return
	}

	gw, gh := v.g.Width(), v.g.Height()
	scale := (gw + tw - 1) / tw
	if half := ((gh+rows-1)/rows + 1) / 2; half > scale {
		scale = half
	}
	if scale < 1 {
		scale = 1
	}
	bw, bh := scale, 2*scale

	for cy := 0; cy < rows; cy++ {
		// Row 0 is the top of the floor, grid y runs bottom-up.
		yHi := gh - cy*bh
		if yHi <= 0 {
			break
		}
		yLo := yHi - bh
		if yLo < 0 {
			yLo = 0
		}
		for cx := 0; cx < tw && cx*bw < gw; cx++ {
			xLo := cx * bw
			xHi := xLo + bw
			if xHi > gw {
				xHi = gw
			}
			ch, style := classify(v, xLo, xHi, yLo, yHi)
			s.SetContent(cx, cy, ch, nil, style)
		}
	}

	status := fmt.Sprintf(" %s  %dx%d cells", v.dir, gw, gh)
	if v.res != nil {
		status += fmt.Sprintf("  people %d  escaped %d (%.1f%%)",
			v.res.Placed, v.res.Escaped(), v.res.SuccessRate)
	}
	status += "  [q quits] "
	for x := 0; x < tw; x++ {
		s.SetContent(x, th-1, ' ', nil, barStyle)
	}
	for x, r := range []rune(status) {
		if x >= tw {
			break
		}
		s.SetContent(x, th-1, r, nil, barStyle)
	}

	s.Show()
}

// classify picks one rune for a block of grid cells. Overlays win over
// geometry so a thin route stays visible at any zoom.
func classify(v *view, xLo, xHi, yLo, yHi int) (rune, tcell.Style) {
	var hasExit, hasStart, hasPath, hasWall bool
	for x := xLo; x < xHi; x++ {
		for y := yLo; y < yHi; y++ {
			c := grid.Cell{X: x, Y: y}
			switch {
			case v.exits[c]:
				hasExit = true
			case v.starts[c]:
				hasStart = true
			case v.paths[c]:
				hasPath = true
			case !v.g.Walkable(x, y):
				hasWall = true
			}
		}
	}

	switch {
	case hasExit:
		return 'E', exitStyle
	case hasStart:
		return 'o', startStyle
	case hasPath:
		return '·', pathStyle
	case hasWall:
		return '█', wallStyle
	}

	return ' ', tcell.StyleDefault
}
