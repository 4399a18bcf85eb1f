//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"voxgen/internal/app"
	"voxgen/internal/models"
	_ "voxgen/internal/models/growth"
	_ "voxgen/internal/models/life"
	_ "voxgen/internal/models/noise"
	"voxgen/pkg/gen"
)

func main() {
	cfg := app.NewConfig()
	cfg.Snapshots = true
	cfg.Bind(flag.CommandLine)
	runFile := flag.String("config", "", "YAML run file (takes precedence over other flags)")
	tps := flag.Int("tps", 30, "frames pulled per second")
	flag.Parse()

	if *runFile != "" {
		if err := cfg.Load(*runFile); err != nil {
			log.Fatalf("loading run file: %v", err)
		}
	}

	// The viewer plays rendered frames, so force the image artifact on.
	cfg.Image = true
	genCfg, err := cfg.GenConfig()
	if err != nil {
		log.Fatalf("bad configuration: %v", err)
	}

	results, err := gen.Run(genCfg, models.New)
	if err != nil {
		log.Fatalf("starting run (models: %v): %v", models.Names(), err)
	}

	w, h := cfg.Width*cfg.Scale, cfg.Height*cfg.Scale
	viewer := app.NewViewer(results, w, h)

	ebiten.SetWindowTitle("voxgen — " + cfg.Model)
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
