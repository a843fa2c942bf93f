// Package artifact persists generated floors as layout bundles and
// resolves them back, so generation and simulation can run as separate
// processes.
//
// A bundle is one directory holding three files:
//
//	walkability_map.grid - the rasterized grid: "EGRD" magic, u32-LE
//	                       width and height, then one byte per cell in
//	                       [x][y] order (0 walkable, 1 wall)
//	exit_positions.json  - exit cells as [x, y] pairs
//	layout_config.json   - floor dimensions, resolution and counts
//
// SaveTimestamped groups bundles under a root directory, one
// timestamp-named subdirectory per run, and records the newest run in
// the root's latest.txt so tools can default to it:
//
//	layouts/
//	├── 20260823_142501/
//	│   ├── walkability_map.grid
//	│   ├── exit_positions.json
//	│   └── layout_config.json
//	└── latest.txt
//
// Errors:
//
//	ErrNilLayout - NewBundle received a nil layout.
//	ErrNilGrid   - NewBundle received a nil grid.
//	ErrMissing   - a bundle file or the latest.txt pointer is absent.
//	ErrCorrupt   - a bundle file exists but cannot be decoded.
package artifact
