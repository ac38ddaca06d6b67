package main

import (
	"flag"
	"log"
	"os"
	"time"

	"snake-world/config"
	"snake-world/game"
	"snake-world/game/random"
	"snake-world/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}
	log.SetPrefix("[SNAKE] ")

	w, err := newWorld(cfg)
	if err != nil {
		log.Fatalf("new world: %v", err)
	}
	log.Printf("session %s: width %d, head %d, reward %d", w.ID(), w.Width(), w.SnakeHeadIndex(), w.RewardCell())

	if cfg.Headless {
		runHeadless(w, cfg.Ticks)
		return
	}
	runWindow(w, cfg)
}

func newWorld(cfg config.Config) (*game.World, error) {
	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seed, err = random.NewSeed(); err != nil {
			return nil, err
		}
	}
	log.Printf("seed %d", seed)

	rng := random.New(seed)
	w, err := game.New(cfg.Width, game.RandomSpawn(rng, cfg.Width), rng)
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		w.SetLogger(log.Default())
	}
	return w, nil
}

func runHeadless(w *game.World, ticks int) {
	for i := 0; i < ticks; i++ {
		w.Update()
	}
	snap := w.Snapshot()
	log.Printf("session %s: tick %d, length %d, head %d, reward %d", w.ID(), snap.Tick, snap.Length, snap.Head, snap.Reward)
}

func runWindow(w *game.World, cfg config.Config) {
	renderer := ui.NewRenderer(cfg.CellSize, cfg.Width)
	width, height := renderer.WindowSize()

	rl.InitWindow(width, height, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	lastUpdate := time.Now()
	updateInterval := cfg.TickInterval()

	for !rl.WindowShouldClose() {
		if dir, ok := ui.ReadDirection(); ok {
			w.ChangeSnakeDirection(dir)
		}

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= updateInterval {
			w.Update()
			lastUpdate = time.Now()
		}

		renderer.Draw(w.Snapshot())
	}
	log.Printf("session %s: closed after %d ticks, length %d", w.ID(), w.Tick(), w.SnakeLength())
}
