package office_test

import (
	"fmt"

	"github.com/egresslab/egress/office"
)

// ExampleBuild assembles the default 50×30 m office floor.
func ExampleBuild() {
	l, _ := office.Build()

	fmt.Println("rooms:", len(l.Rooms))
	fmt.Println("doors:", len(l.Doors))
	fmt.Println("exits:", len(l.ExitDoors()))
	fmt.Println("markers:", len(l.Equipment))

	// Output:
	// rooms: 11
	// doors: 12
	// exits: 2
	// markers: 20
}
