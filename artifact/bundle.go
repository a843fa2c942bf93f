// This file implements the bundle itself: assembly from a layout and
// grid, the directory writer, the loader and the grid file codec.
package artifact

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/egresslab/egress/core"
	"github.com/egresslab/egress/grid"
)

// Bundle is one generated floor, ready to persist or just loaded.
type Bundle struct {
	// Grid is the rasterized walkability field.
	Grid *grid.Grid

	// Exits holds the exit cells, in layout door order.
	Exits []grid.Cell

	// Config carries the generation facts for the config file.
	Config Config
}

// NewBundle derives a bundle from a layout and its rasterization.
func NewBundle(l *core.Layout, g *grid.Grid) (*Bundle, error) {
	if l == nil {
		return nil, ErrNilLayout
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	exits := grid.ExitCells(g, l)

	var doorDepth float64
	if len(l.Doors) > 0 {
		r := l.Doors[0].Rect
		doorDepth = math.Min(r.W, r.H)
	}

	return &Bundle{
		Grid:  g,
		Exits: exits,
		Config: Config{
			Width:      l.Width,
			Height:     l.Height,
			Resolution: g.Resolution(),
			NumRooms:   len(l.Rooms),
			NumExits:   len(exits),
			DoorDepth:  doorDepth,
		},
	}, nil
}

// Save writes the three bundle files into dir, creating it as needed.
func (b *Bundle) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("artifact: create bundle dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, GridFile), encodeGrid(b.Grid), 0o644); err != nil {
		return fmt.Errorf("artifact: write grid: %w", err)
	}

	exits := make([][2]int, len(b.Exits))
	for i, e := range b.Exits {
		exits[i] = [2]int{e.X, e.Y}
	}
	if err := writeJSON(filepath.Join(dir, ExitsFile), exits); err != nil {
		return err
	}

	return writeJSON(filepath.Join(dir, ConfigFile), b.Config)
}

// Load reads a bundle back from dir. The config is decoded first
// because the grid file does not carry the resolution itself.
func Load(dir string) (*Bundle, error) {
	b := &Bundle{}
	if err := readJSON(filepath.Join(dir, ConfigFile), &b.Config); err != nil {
		return nil, err
	}

	data, err := readFile(filepath.Join(dir, GridFile))
	if err != nil {
		return nil, err
	}
	if b.Grid, err = decodeGrid(data, b.Config.Resolution); err != nil {
		return nil, err
	}
	if w := int(b.Config.Width * float64(b.Config.Resolution)); w != b.Grid.Width() {
		return nil, fmt.Errorf("%w: grid width %d does not match config (%d)",
			ErrCorrupt, b.Grid.Width(), w)
	}
	if h := int(b.Config.Height * float64(b.Config.Resolution)); h != b.Grid.Height() {
		return nil, fmt.Errorf("%w: grid height %d does not match config (%d)",
			ErrCorrupt, b.Grid.Height(), h)
	}

	var exits [][2]int
	if err := readJSON(filepath.Join(dir, ExitsFile), &exits); err != nil {
		return nil, err
	}
	b.Exits = make([]grid.Cell, len(exits))
	for i, e := range exits {
		c := grid.Cell{X: e[0], Y: e[1]}
		if !b.Grid.InBounds(c.X, c.Y) {
			return nil, fmt.Errorf("%w: exit %v outside the grid", ErrCorrupt, c)
		}
		b.Exits[i] = c
	}

	return b, nil
}

// encodeGrid renders the grid file: magic, u32-LE dims, payload.
func encodeGrid(g *grid.Grid) []byte {
	payload := g.Bytes()
	buf := make([]byte, 0, 12+len(payload))
	buf = append(buf, gridMagic...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(g.Width()))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(g.Height()))

	return append(buf, payload...)
}

// decodeGrid parses the grid file against the config's resolution.
func decodeGrid(data []byte, resolution int) (*grid.Grid, error) {
	if len(data) < 12 || string(data[:4]) != gridMagic {
		return nil, fmt.Errorf("%w: bad grid file header", ErrCorrupt)
	}
	w := int(binary.LittleEndian.Uint32(data[4:8]))
	h := int(binary.LittleEndian.Uint32(data[8:12]))

	g, err := grid.FromBytes(w, h, resolution, data[12:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return g, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("artifact: encode %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("artifact: write %s: %w", filepath.Base(path), err)
	}

	return nil
}

func readJSON(path string, v any) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, filepath.Base(path), err)
	}

	return nil
}

// readFile maps absent files onto ErrMissing so callers can branch on
// the sentinel instead of fs internals.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrMissing, path)
	case err != nil:
		return nil, fmt.Errorf("artifact: read %s: %w", filepath.Base(path), err)
	}

	return data, nil
}
