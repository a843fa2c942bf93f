// This file declares the bundle file names, the Config schema and
// sentinel errors.
package artifact

import "errors"

// Sentinel errors for persistence.
var (
	// ErrNilLayout indicates NewBundle received a nil layout.
	ErrNilLayout = errors.New("artifact: nil layout")

	// ErrNilGrid indicates NewBundle received a nil grid.
	ErrNilGrid = errors.New("artifact: nil grid")

	// ErrMissing indicates an absent bundle file or latest.txt pointer.
	ErrMissing = errors.New("artifact: missing")

	// ErrCorrupt indicates a bundle file that exists but cannot be
	// decoded or fails cross-validation.
	ErrCorrupt = errors.New("artifact: corrupt")
)

// Bundle file names inside a layout directory.
const (
	// GridFile holds the encoded walkability grid.
	GridFile = "walkability_map.grid"

	// ExitsFile holds the exit cells as JSON [x, y] pairs.
	ExitsFile = "exit_positions.json"

	// ConfigFile holds the Config JSON.
	ConfigFile = "layout_config.json"

	// LatestFile, in the bundle root, names the newest bundle
	// directory.
	LatestFile = "latest.txt"
)

// timeLayout formats bundle directory names.
const timeLayout = "20060102_150405"

// gridMagic opens every encoded grid file.
const gridMagic = "EGRD"

// Config is the layout_config.json schema: the generation facts a
// simulation run needs without re-deriving them from the grid.
type Config struct {
	// Width and Height are the floor extents in meters.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Resolution is the grid density in cells per meter.
	Resolution int `json:"resolution"`

	// NumRooms and NumExits describe the generated layout.
	NumRooms int `json:"num_rooms"`
	NumExits int `json:"num_exits"`

	// DoorDepth is how far door rectangles straddle walls, in meters.
	DoorDepth float64 `json:"door_depth"`

	// Timestamp is the bundle directory name; SaveTimestamped fills
	// it in.
	Timestamp string `json:"timestamp"`
}
