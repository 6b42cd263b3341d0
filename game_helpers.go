package main

import (
	"fmt"
	"io"

	"github.com/sheikhrachel/zonelife/model"
	"github.com/sheikhrachel/zonelife/utils"
)

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, pattern model.Pattern) {
	fmt.Fprintf(w, "Pattern: %s (%dx%d, %d cells)\n",
		pattern.Name, pattern.Size.W, pattern.Size.H, len(pattern.Cells))
	fmt.Fprintf(w, "Grid: %dx%d | Special zone from (%d,%d) | Reverse every %d generations\n",
		config.GridSize.W, config.GridSize.H, config.GridSize.W/2, config.GridSize.H/2, config.ReverseInterval)
	fmt.Fprintf(w, "Interval: %s | Max generations: %d\n", config.UpdateInterval, config.MaxGenerations)
	fmt.Fprintln(w, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(w)
}

// statusPrinter is the headless render sink: one status line every N generations
type statusPrinter struct {
	w     io.Writer
	every int
}

func newStatusPrinter(w io.Writer, every int) *statusPrinter {
	return &statusPrinter{w: w, every: max(every, 1)}
}

// Render prints the seed and every n-th generation
func (p *statusPrinter) Render(v model.View) error {
	if v.Iterations%p.every != 0 {
		return nil
	}
	status := "Active"
	if v.Population == 0 {
		status = "Extinct"
	}
	_, err := fmt.Fprintf(p.w, "Gen: %d | Living: %d | Time: %.2fs | Status: %s%s\n",
		v.Generation, v.Population, v.Time.Seconds(), status, boundsInfo(v.Cells))
	return err
}

func boundsInfo(cells *model.CellSet) string {
	lo, hi, ok := cells.Bounds()
	if !ok {
		return ""
	}
	return fmt.Sprintf(" | Bounding box: %v-%v", lo, hi)
}

// displayFinalStats shows the totals once the simulation stops
func displayFinalStats(w io.Writer, clock *model.Clock, stats *utils.Stats) {
	fmt.Fprintf(w, "Final stats: %d generations, %d living, %.2fs simulated in %.1fs\n",
		clock.Iterations(), clock.Population(), clock.Time().Seconds(), stats.Runtime().Seconds())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
