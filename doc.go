// Package egress is your in-memory playground for generating indoor
// floor plans and stress-testing how fast people can get out of them —
// from BSP room splitting to weighted any-angle pathfinding.
//
// 🚀 What is egress?
//
//	A small, deterministic simulation toolkit that brings together:
//		• Floor plans: recursive BSP partitioning into rooms that tile the floor
//		• Connectivity: Prim-style door spanning trees + perimeter exit placement
//		• Rasterization: metric layouts → binary walkability grids (configurable px/m)
//		• Pathfinding: weighted A* over 32 headings (8 unit moves + 24 jumps)
//		• Evacuation: N agents, nearest-exit assignment, distance/time/step metrics
//
// ✨ Why choose egress?
//
//   - Reproducible – every random choice flows from one injected seed
//   - Rock-solid contracts – sentinel errors, option validation, in-code docs
//   - Parallel where it pays – per-agent searches fan out over a worker pool
//   - Composable – each stage is a plain function over plain data
//
// Under the hood, everything is organized under these subpackages:
//
//	core/     — Rect, Room, Door, Layout: the shared floor-plan data model
//	bsp/      — SpacePartitioner: recursive random splits down to leaf rooms
//	connect/  — door spanning tree + exit placement over room adjacency
//	grid/     — walkability grids: rasterization, components, byte encoding
//	pathfind/ — weighted 32-direction A* with corner-cut protection
//	evac/     — evacuation runs: agent placement, metrics, aggregation
//	office/   — hand-shaped office floors (corridor, offices, equipment)
//	artifact/ — layout directories on disk: grid, exits, config, latest.txt
//	report/   — plain-text evacuation reports
//
// Quick ASCII example:
//
//	┌─────┬───────┐
//	│     d       │      a 20×15 m floor split into three rooms,
//	├──d──┤       E      doors (d) spanning them, one exit (E)
//	│     │       │      on the east wall.
//	└─────┴───────┘
//
// Dive into README-sized doc.go files in each subpackage for contracts,
// complexity notes and runnable examples.
//
//	go get github.com/egresslab/egress
package egress
