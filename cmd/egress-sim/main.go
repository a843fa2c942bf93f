// Command egress-sim runs evacuation simulations over saved layout
// bundles and writes a pathfinding report next to each one.
//
// Layout directories are given as positional arguments; with none, the
// newest bundle under layouts/ is resolved through latest.txt.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/egresslab/egress/artifact"
	"github.com/egresslab/egress/evac"
	"github.com/egresslab/egress/report"
)

// defaultRoot is where egress-gen drops bundles.
const defaultRoot = "layouts"

func main() {
	var (
		people   = flag.Int("num-people", evac.DefaultAgents, "how many people to simulate")
		speed    = flag.Float64("speed", evac.DefaultSpeed, "walking speed in meters per second")
		stepUnit = flag.Float64("step-unit", evac.DefaultStepUnit, "stride length in meters")
		seed     = flag.Int64("seed", 0, "placement seed, 0 derives one from the clock")
		workers  = flag.Int("workers", 0, "routing workers, 0 uses one per CPU")
		noSave   = flag.Bool("no-save", false, "skip writing pathfinding_report.txt")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [layout-dir ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Simulates an evacuation over each saved layout bundle and writes a\n")
		fmt.Fprintf(os.Stderr, "text report into the bundle directory. Without arguments the newest\n")
		fmt.Fprintf(os.Stderr, "bundle under %s/ is used.\n\n", defaultRoot)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -num-people 50 -seed 7 layouts/20260823_142501\n", os.Args[0])
	}
	flag.Parse()

	dirs := flag.Args()
	if len(dirs) == 0 {
		latest, err := artifact.ResolveLatest(defaultRoot)
		if err != nil {
			slog.Error("no layout directory given and none recorded", "err", err)
			os.Exit(1)
		}
		dirs = []string{latest}
	}

	opts := []evac.Option{
		evac.WithAgents(*people),
		evac.WithSpeed(*speed),
		evac.WithStepUnit(*stepUnit),
		evac.WithSeed(*seed),
	}
	if *workers > 0 {
		opts = append(opts, evac.WithWorkers(*workers))
	}

	// Per-directory failures skip that layout, the batch carries on.
	simulated := 0
	for _, dir := range dirs {
		if err := runOne(dir, *noSave, opts); err != nil {
			slog.Error("layout skipped", "dir", dir, "err", err)
			continue
		}
		simulated++
	}
	if simulated == 0 {
		os.Exit(1)
	}
}

// runOne loads one bundle, simulates it and saves the report.
func runOne(dir string, noSave bool, opts []evac.Option) error {
	b, err := artifact.Load(dir)
	if err != nil {
		return err
	}

	res, err := evac.Simulate(b.Grid, b.Exits, opts...)
	if err != nil {
		return err
	}

	slog.Info("simulation finished",
		"dir", dir,
		"people", res.Placed,
		"escaped", res.Escaped(),
		"success_rate", fmt.Sprintf("%.1f%%", res.SuccessRate),
		"evac_time", fmt.Sprintf("%.2fs", res.TotalTime),
	)
	if res.Placed < res.Requested {
		slog.Warn("not enough walkable cells for the headcount",
			"requested", res.Requested, "placed", res.Placed)
	}

	if noSave {
		return nil
	}
	path, err := report.Save(dir, b.Config, res)
	if err != nil {
		return err
	}
	slog.Info("report saved", "path", path)

	return nil
}
