package evac_test

import (
	"fmt"

	"github.com/egresslab/egress/evac"
	"github.com/egresslab/egress/grid"
)

// ExampleSimulate evacuates three people from a short open corridor.
// Every cell can reach the single exit, so everyone gets out.
func ExampleSimulate() {
	g, _ := grid.FromBytes(6, 1, 1, make([]byte, 6))
	exits := []grid.Cell{{X: 5, Y: 0}}

	res, _ := evac.Simulate(g, exits,
		evac.WithAgents(3), evac.WithSeed(1))

	fmt.Println("placed:", res.Placed)
	fmt.Printf("success: %.0f%%\n", res.SuccessRate)
	fmt.Println("assigned to exit:", res.ExitUsage[exits[0]])

	// Output:
	// placed: 3
	// success: 100%
	// assigned to exit: 3
}
