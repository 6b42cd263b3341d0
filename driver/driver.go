// Package driver runs a simulation clock against a real-time ticker and routes
// user commands to it.
package driver

import (
	"context"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/sheikhrachel/zonelife/model"
	"github.com/sheikhrachel/zonelife/utils"
)

// memorySampleEvery is how many ticks pass between process memory samples
const memorySampleEvery = 20

var (
	errQuit     = errors.New("quit requested")
	errFinished = errors.New("generation limit reached")
)

// Command is a user request delivered to a running driver
type Command int

const (
	CommandReset Command = iota
	CommandTogglePause
	CommandStepOnce
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandReset:
		return "reset"
	case CommandTogglePause:
		return "toggle-pause"
	case CommandStepOnce:
		return "step"
	case CommandQuit:
		return "quit"
	}
	return "unknown"
}

// Renderer consumes committed generations. Failures are logged and never stop the simulation.
type Renderer interface {
	Render(v model.View) error
}

// Options tunes a Driver. Zero values pick defaults.
type Options struct {
	Interval       time.Duration
	MaxGenerations int
	Logger         *log.Logger
	Stats          *utils.Stats
}

// Driver owns the timer that calls Clock.Tick. Tick, Reset and rendering are
// serialized through a single-slot semaphore.
type Driver struct {
	clock    *model.Clock
	pattern  model.Pattern
	renderer Renderer

	interval       time.Duration
	maxGenerations int
	logger         *log.Logger
	stats          *utils.Stats

	sem      *semaphore.Weighted
	paused   atomic.Bool
	lastTick time.Time
}

// New creates a driver. renderer may be nil.
func New(clock *model.Clock, pattern model.Pattern, renderer Renderer, opts Options) *Driver {
	if opts.Interval <= 0 {
		opts.Interval = 50 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.Stats == nil {
		opts.Stats = utils.NewStats()
	}
	return &Driver{
		clock:          clock,
		pattern:        pattern,
		renderer:       renderer,
		interval:       opts.Interval,
		maxGenerations: opts.MaxGenerations,
		logger:         opts.Logger,
		stats:          opts.Stats,
		sem:            semaphore.NewWeighted(1),
	}
}

// Paused reports whether the ticker is currently ignored
func (d *Driver) Paused() bool { return d.paused.Load() }

// Stats returns the performance counters updated on every tick
func (d *Driver) Stats() *utils.Stats { return d.stats }

/*
Run seeds the clock and ticks it every interval until ctx is done, a
CommandQuit arrives or the generation limit is reached. None of those is
reported as an error.

commands may be nil when no interactive input is wired.
*/
func (d *Driver) Run(ctx context.Context, commands <-chan Command) error {
	if err := d.Reset(ctx); err != nil {
		return stopReason(err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return d.tickLoop(ctx)
	})
	eg.Go(func() error {
		return d.commandLoop(ctx, commands)
	})

	return stopReason(eg.Wait())
}

// Reset reseeds the clock from the driver's pattern and renders the seed
func (d *Driver) Reset(ctx context.Context) error {
	if err := d.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer d.sem.Release(1)

	d.clock.Reset(d.pattern)
	d.lastTick = time.Time{}
	d.logger.Printf("reset to %q: %d live cells", d.pattern.Name, d.clock.Population())
	d.render()
	return nil
}

// Tick advances one generation and renders it
func (d *Driver) Tick(ctx context.Context) error {
	if err := d.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer d.sem.Release(1)

	now := time.Now()
	d.clock.Tick(d.interval)

	var frame time.Duration
	if !d.lastTick.IsZero() {
		frame = now.Sub(d.lastTick)
	}
	d.lastTick = now
	d.stats.Update(d.clock.Generation(), d.clock.Population(), frame)

	if d.clock.Iterations()%memorySampleEvery == 1 {
		if err := d.stats.SampleMemory(); err != nil {
			d.logger.Printf("memory sample failed: %v", err)
		}
	}

	d.render()

	if d.maxGenerations > 0 && d.clock.Iterations() >= d.maxGenerations {
		d.logger.Printf("stopping after %d generations", d.clock.Iterations())
		return errFinished
	}
	return nil
}

func (d *Driver) tickLoop(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if d.paused.Load() {
				continue
			}
			if err := d.Tick(ctx); err != nil {
				return err
			}
		}
	}
}

func (d *Driver) commandLoop(ctx context.Context, commands <-chan Command) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			if err := d.handle(ctx, cmd); err != nil {
				return err
			}
		}
	}
}

func (d *Driver) handle(ctx context.Context, cmd Command) error {
	switch cmd {
	case CommandReset:
		return d.Reset(ctx)
	case CommandTogglePause:
		paused := !d.paused.Load()
		d.paused.Store(paused)
		if err := d.sem.Acquire(ctx, 1); err != nil {
			return err
		}
		d.render()
		d.sem.Release(1)
	case CommandStepOnce:
		if !d.paused.Load() {
			return nil
		}
		return d.Tick(ctx)
	case CommandQuit:
		return errQuit
	default:
		d.logger.Printf("ignoring unknown command %d", cmd)
	}
	return nil
}

// render must be called with the semaphore held
func (d *Driver) render() {
	if d.renderer == nil {
		return
	}
	view := model.View{
		Cells:       d.clock.CellSet(),
		GridSize:    d.clock.GridSize(),
		Generation:  d.clock.Generation(),
		Population:  d.clock.Population(),
		Iterations:  d.clock.Iterations(),
		Time:        d.clock.Time(),
		MemoryUsage: d.stats.MemoryUsage,
		Paused:      d.paused.Load(),
	}
	if err := d.renderer.Render(view); err != nil {
		d.logger.Printf("render failed: %v", err)
	}
}

func stopReason(err error) error {
	switch {
	case err == nil,
		errors.Is(err, errQuit),
		errors.Is(err, errFinished),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return nil
	}
	return err
}
