// Command antsim runs the ant-colony foraging simulation headless.
package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"antfarm/internal/engine"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	seed := flag.Int64("seed", 0, "Master random seed (0 = random)")
	cols := flag.Int("cols", 0, "Grid columns (overrides config)")
	rows := flag.Int("rows", 0, "Grid rows (overrides config)")
	terrain := flag.String("terrain", "", "Terrain generator: maze or cave (overrides config)")
	maxTicks := flag.Uint64("ticks", 0, "Stop after N ticks (0 = run forever)")
	report := flag.Uint64("report", 500, "Log a stats report every N ticks (0 = disabled)")
	interval := flag.Duration("interval", 0, "Wall-clock pause per tick (0 = flat out)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		loaded, err := engine.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *cols != 0 {
		cfg.Cols = *cols
	}
	if *rows != 0 {
		cfg.Rows = *rows
	}
	if *terrain != "" {
		cfg.Terrain = engine.TerrainKind(*terrain)
	}

	sim, err := engine.NewSimulation(cfg)
	if err != nil {
		slog.Error("failed to set up simulation", "error", err)
		os.Exit(1)
	}

	loop := engine.NewLoop()
	loop.Interval = *interval
	loop.ReportEvery = *report
	loop.OnTick = func(tick uint64) {
		sim.Tick()
		if *maxTicks > 0 && tick >= *maxTicks {
			loop.Stop()
		}
	}
	loop.OnReport = func(uint64) {
		sim.Report()
	}

	// Graceful shutdown between ticks.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig.String())
		loop.Stop()
	}()

	start := time.Now()
	loop.Run()

	sim.UpdateStats()
	slog.Info("run complete",
		"ticks", sim.CurrentTick(),
		"ants", sim.Stats.Ants,
		"food_found", sim.Stats.FoodFound,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
}
