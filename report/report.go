// This file renders and saves the simulation report.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/egresslab/egress/artifact"
	"github.com/egresslab/egress/evac"
)

// ErrNilResult indicates Write or Save received a nil result.
var ErrNilResult = errors.New("report: nil result")

// FileName is the file Save writes inside a bundle directory.
const FileName = "pathfinding_report.txt"

// ruleWidth sizes the banner and section rules.
const ruleWidth = 70

// Write renders the report for one simulation run onto w.
//
// The layout facts come from cfg, the run facts from res; the two are
// independent, so a report can describe a run against any bundle.
func Write(w io.Writer, cfg artifact.Config, res *evac.Result) error {
	if res == nil {
		return ErrNilResult
	}

	if _, err := io.WriteString(w, render(cfg, res)); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}

	return nil
}

// Save renders the report into dir as pathfinding_report.txt and
// returns the written path. dir is usually a bundle directory.
func Save(dir string, cfg artifact.Config, res *evac.Result) (string, error) {
	if res == nil {
		return "", ErrNilResult
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(render(cfg, res)), 0o644); err != nil {
		return "", fmt.Errorf("report: write %s: %w", FileName, err)
	}

	return path, nil
}

// render builds the full report text. Writes to a strings.Builder
// never fail, so rendering is infallible and the callers only handle
// I/O errors.
func render(cfg artifact.Config, res *evac.Result) string {
	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)
	sub := strings.Repeat("-", ruleWidth)

	b.WriteString(rule + "\n")
	b.WriteString("A* PATHFINDING SIMULATION REPORT\n")
	b.WriteString(rule + "\n\n")

	b.WriteString("LAYOUT CONFIGURATION:\n")
	b.WriteString(sub + "\n")
	fmt.Fprintf(&b, "Map Size: %gm x %gm\n", cfg.Width, cfg.Height)
	fmt.Fprintf(&b, "Resolution: %d px/meter\n", cfg.Resolution)
	fmt.Fprintf(&b, "Walking Speed: %g m/s\n", res.Speed)
	fmt.Fprintf(&b, "Number of Rooms: %d\n", cfg.NumRooms)
	fmt.Fprintf(&b, "Number of Exits: %d\n\n", cfg.NumExits)

	escaped := res.Escaped()
	b.WriteString("PATHFINDING RESULTS:\n")
	b.WriteString(sub + "\n")
	// Total People is the requested headcount; the detail section below
	// only lists the agents that actually fit on the grid.
	fmt.Fprintf(&b, "Total People: %d\n", res.Requested)
	fmt.Fprintf(&b, "Successful Paths: %d\n", escaped)
	fmt.Fprintf(&b, "Failed Paths: %d\n", res.Placed-escaped)
	fmt.Fprintf(&b, "Success Rate: %.1f%%\n\n", res.SuccessRate)
	// The evacuation time is the slowest escapee, meaningless when
	// nobody got out.
	if escaped > 0 {
		fmt.Fprintf(&b, "Total Evacuation Time (max): %.2f s\n\n", res.TotalTime)
	} else {
		b.WriteString("\n")
	}

	b.WriteString("EXIT USAGE STATISTICS:\n")
	b.WriteString(sub + "\n")
	for _, e := range res.Exits {
		fmt.Fprintf(&b, "Exit at (%d, %d): %d people\n", e.X, e.Y, res.ExitUsage[e])
	}
	b.WriteString("\n")

	b.WriteString("DETAILED PATH INFORMATION:\n")
	b.WriteString(sub + "\n")
	for i := range res.Agents {
		a := &res.Agents[i]
		fmt.Fprintf(&b, "\nPerson %d:\n", i+1)
		fmt.Fprintf(&b, "  Start Position: (%d, %d)\n", a.Start.X, a.Start.Y)
		fmt.Fprintf(&b, "  Target Exit: (%d, %d)\n", a.Exit.X, a.Exit.Y)
		if a.Escaped {
			fmt.Fprintf(&b, "  Path Length: %d steps\n", len(a.Path))
			fmt.Fprintf(&b, "  Path Length (m): ~%.2f m\n", a.Distance)
			fmt.Fprintf(&b, "  Human Steps (~%g m): %d\n", res.StepUnit, a.Steps)
			fmt.Fprintf(&b, "  Est. Time: %.2f s @ %.2f m/s\n", a.Time, res.Speed)
			b.WriteString("  Path Status: OK SUCCESS\n")
		} else {
			b.WriteString("  Path Status: X FAILED\n")
		}
	}

	b.WriteString("\n" + rule + "\n")

	return b.String()
}
