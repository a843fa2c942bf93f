// Package report renders a simulation run as a sectioned plain-text
// report, the human-readable companion to a layout bundle.
//
// The report has four sections under a banner:
//
//	LAYOUT CONFIGURATION  - floor size, resolution, speed, counts
//	PATHFINDING RESULTS   - headcount, success rate, evacuation time
//	EXIT USAGE STATISTICS - agents assigned per exit, in exit order
//	DETAILED PATH INFORMATION - one block per agent with its route
//	                        metrics and an OK SUCCESS / X FAILED line
//
// Write renders onto any io.Writer; Save drops the rendered text into
// a bundle directory as pathfinding_report.txt next to the layout
// files it describes.
//
// Errors:
//
//	ErrNilResult - Write or Save received a nil result.
package report
