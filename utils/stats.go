package utils

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	MemoryUsage          uint64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	proc *process.Process
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// SampleMemory records the resident set size of the current process
func (s *Stats) SampleMemory() error {
	if s.proc == nil {
		proc, err := process.NewProcess(int32(os.Getpid()))
		if err != nil {
			return errors.Wrap(err, "[SampleMemory] failed to open current process")
		}
		s.proc = proc
	}

	info, err := s.proc.MemoryInfo()
	if err != nil {
		return errors.Wrap(err, "[SampleMemory] failed to read memory info")
	}
	s.MemoryUsage = info.RSS
	return nil
}

// Runtime is the wall-clock time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
