package main

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"collision-lab/internal/debug"
	"collision-lab/internal/engineconfig"
	"collision-lab/internal/env"
	"collision-lab/internal/graphics"
	"collision-lab/internal/logger"
	"collision-lab/internal/scene"
	"collision-lab/internal/sim"
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	if err := env.Load(".env"); err != nil {
		log.Warn("env file not loaded", zap.Error(err))
	}
	cfg, _ := engineconfig.Load()

	// Overlay toggles can change at runtime via the config file; the watch
	// callback runs on its own goroutine, so the live copy is guarded.
	var mu sync.Mutex
	live := cfg
	stop, err := engineconfig.Watch(func(p engineconfig.Prefs) {
		mu.Lock()
		live = p
		mu.Unlock()
		log.Info("config reloaded")
	})
	if err != nil {
		log.Warn("config watch unavailable", zap.Error(err))
	} else {
		defer stop()
	}

	graphics.Open(cfg.WindowWidth, cfg.WindowHeight, cfg.TargetFPS, "collision lab")
	defer graphics.Close()

	state, err := sim.Initialize(cfg, log)
	if err != nil {
		// No retry and no fallback asset; the error is already logged.
		return
	}
	defer rl.UnloadModel(state.Model)

	scn := scene.New(cfg.GridVisible)
	dbg := debug.New()
	dbg.SetShowFPS(cfg.ShowFPS)
	dbg.SetShowMemAlloc(cfg.ShowMemAlloc)

	update := func() {
		mu.Lock()
		p := live
		mu.Unlock()
		scn.SetGridVisible(p.GridVisible)
		dbg.SetShowFPS(p.ShowFPS)
		dbg.SetShowMemAlloc(p.ShowMemAlloc)

		scn.Update()
		sim.Tick(state)
	}
	draw := func() {
		scn.Draw(state)
		dbg.Draw()
	}
	graphics.Loop(update, draw)

	log.Info("shutting down")
}
