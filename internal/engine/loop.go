// Wall-clock tick driver for the headless runner. The engine itself is
// caller-stepped via Simulation.Tick; the Loop only paces those calls.
package engine

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// Loop drives the simulation forward on a wall-clock cadence.
type Loop struct {
	Tick     uint64        // Current tick counter (monotonic, never resets)
	Speed    float64       // Multiplier: 1.0 = real-time, 0 = paused
	Interval time.Duration // Base tick interval; 0 runs flat out

	// ReportEvery emits OnReport every N ticks (0 disables reporting).
	ReportEvery uint64

	OnTick   func(tick uint64)
	OnReport func(tick uint64)

	// Stop may be called from a signal goroutine while Run loops.
	running atomic.Bool
}

// NewLoop creates a driver with default pacing.
func NewLoop() *Loop {
	return &Loop{
		Speed:       1.0,
		Interval:    16 * time.Millisecond,
		ReportEvery: 500,
	}
}

// Run steps the simulation until Stop is called. Blocks.
func (l *Loop) Run() {
	l.running.Store(true)
	slog.Info("simulation loop started", "tick", l.Tick, "speed", l.Speed, "interval", l.Interval)

	for l.running.Load() {
		if l.Speed <= 0 {
			// Paused — sleep briefly and check again.
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()

		l.step()

		if l.Interval > 0 {
			elapsed := time.Since(start)
			target := time.Duration(float64(l.Interval) / l.Speed)
			if elapsed < target {
				time.Sleep(target - elapsed)
			}
		}
	}

	slog.Info("simulation loop stopped", "tick", l.Tick)
}

// Stop halts the loop after the current tick completes. Safe to call from
// another goroutine.
func (l *Loop) Stop() {
	l.running.Store(false)
}

func (l *Loop) step() {
	l.Tick++

	if l.OnTick != nil {
		l.OnTick(l.Tick)
	}
	if l.ReportEvery > 0 && l.Tick%l.ReportEvery == 0 && l.OnReport != nil {
		l.OnReport(l.Tick)
	}
}
