package pathfind_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/egresslab/egress/grid"
	"github.com/egresslab/egress/pathfind"
)

func benchGrid(b *testing.B, w, h int, wallP float64) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, w*h)
	for i := range data {
		if rng.Float64() < wallP {
			data[i] = 1
		}
	}

	g, err := grid.FromBytes(w, h, 1, data)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkFind_Open(b *testing.B) {
	g := benchGrid(b, 200, 200, 0)
	start := grid.Cell{X: 0, Y: 0}
	goal := grid.Cell{X: 199, Y: 199}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfind.Find(g, start, goal); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFind_Cluttered(b *testing.B) {
	g := benchGrid(b, 200, 200, 0.2)
	start := grid.Cell{X: 0, Y: 0}
	goal := grid.Cell{X: 199, Y: 199}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfind.Find(g, start, goal); err != nil && !errors.Is(err, pathfind.ErrNoPath) {
			b.Fatal(err)
		}
	}
}

func BenchmarkFind_StrictJumps(b *testing.B) {
	g := benchGrid(b, 200, 200, 0.2)
	start := grid.Cell{X: 0, Y: 0}
	goal := grid.Cell{X: 199, Y: 199}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := pathfind.Find(g, start, goal, pathfind.WithStrictJumps())
		if err != nil && !errors.Is(err, pathfind.ErrNoPath) {
			b.Fatal(err)
		}
	}
}
