package connect_test

import (
	"fmt"

	"github.com/egresslab/egress/connect"
	"github.com/egresslab/egress/core"
)

// ExampleRooms spans a two-room floor with a single door on the shared
// wall.
func ExampleRooms() {
	l, err := core.NewLayout(20, 15)
	if err != nil {
		fmt.Println("layout failed:", err)
		return
	}
	l.AddRoom(core.Rect{X: 0, Y: 0, W: 10, H: 15}, "Kitchen")
	l.AddRoom(core.Rect{X: 10, Y: 0, W: 10, H: 15}, "Living Room")

	rep, err := connect.Rooms(l)
	if err != nil {
		fmt.Println("connect failed:", err)
		return
	}

	d, _ := l.Door(rep.Doors[0])
	fmt.Println("doors carved:", len(rep.Doors))
	fmt.Println("fully connected:", rep.Connected())
	fmt.Printf("door anchor: (%.1f, %.1f)\n", d.Rect.X, d.Rect.Y)
	// Output:
	// doors carved: 1
	// fully connected: true
	// door anchor: (9.8, 7.0)
}
