// SchemBoard is an interactive schematic editor: place logic-block symbols
// on a grid, wire their ports together, and toggle inputs to light sinks.
package main

import (
	"flag"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"schemboard/internal/board"
	"schemboard/internal/config"
	"schemboard/internal/render"
)

func main() {
	configPath := flag.String("config", "schemboard.yaml", "path to the config file")
	flag.Parse()

	logger := log.New(os.Stdout, "[schemboard] ", log.LstdFlags)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Printf("config: %v, continuing with defaults", err)
	}

	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "SchemBoard")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))
	// Escape cancels place mode; it must not close the window.
	rl.SetExitKey(0)

	world := board.NewWorld(cfg)
	canvas := render.NewCanvas()

	for !rl.WindowShouldClose() {
		render.Pump(world)

		rl.BeginDrawing()
		world.Draw(canvas, render.MousePosition())
		rl.EndDrawing()
	}
}
