package main

import (
	"flag"
	"log"
	"os"

	"orbitrig/internal/config"
	"orbitrig/internal/game"
	"orbitrig/internal/telemetry"
)

func main() {
	scenePath := flag.String("scene", "", "JSON scene file (default: built-in scene)")
	settingsPath := flag.String("settings", "", "YAML rig settings file (default: built-in settings)")
	telemetryAddr := flag.String("telemetry", "", "serve rig telemetry on this address, e.g. localhost:8090")
	dumpSettings := flag.Bool("dump-settings", false, "print the effective settings and exit")
	flag.Parse()

	cfg := config.Default()
	if *settingsPath != "" {
		var err error
		if cfg, err = config.Load(*settingsPath); err != nil {
			log.Fatalf("Config: %v", err)
		}
	}

	if *dumpSettings {
		config.Dump(os.Stdout, cfg)
		return
	}

	var hub *telemetry.Hub
	if *telemetryAddr != "" {
		hub = telemetry.NewHub()
		go func() {
			if err := hub.ListenAndServe(*telemetryAddr); err != nil {
				log.Printf("[telemetry] server stopped: %v", err)
			}
		}()
	}

	g := game.New(game.Options{
		ScenePath: *scenePath,
		Config:    cfg,
		Telemetry: hub,
	})
	if err := g.Run(); err != nil {
		log.Fatalf("Game: %v", err)
	}
}
