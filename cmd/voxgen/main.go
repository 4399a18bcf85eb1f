package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"voxgen/internal/app"
	"voxgen/internal/models"
	_ "voxgen/internal/models/growth"
	_ "voxgen/internal/models/life"
	_ "voxgen/internal/models/noise"
	"voxgen/pkg/gen"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	runFile := flag.String("config", "", "YAML run file (takes precedence over other flags)")
	flag.Parse()

	if *runFile != "" {
		if err := cfg.Load(*runFile); err != nil {
			log.Fatalf("loading run file: %v", err)
		}
	}

	genCfg, err := cfg.GenConfig()
	if err != nil {
		log.Fatalf("bad configuration: %v", err)
	}

	results, err := gen.Run(genCfg, models.New)
	if err != nil {
		log.Fatalf("starting run (models: %v): %v", models.Names(), err)
	}

	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	prevRun, frame, written := -1, 0, 0
	for results.Next() {
		res := results.Result()
		if res.Run != prevRun {
			prevRun, frame = res.Run, 0
			log.Printf("run %d seed %d", res.Run, res.Seed)
		}
		if err := write(cfg.Out, cfg.Model, res, frame); err != nil {
			log.Fatalf("writing artifacts: %v", err)
		}
		frame++
		written++
	}
	if err := results.Err(); err != nil {
		log.Fatalf("run failed: %v", err)
	}
	log.Printf("wrote %d frame(s) to %s", written, cfg.Out)
}

// write emits every populated artifact of one result under
// <out>/<model>_r<run>_f<frame> with a per-format extension.
func write(dir, model string, res gen.Result, frame int) error {
	stem := filepath.Join(dir, fmt.Sprintf("%s_r%d_f%d", model, res.Run, frame))

	if res.Image != nil {
		f, err := os.Create(stem + ".png")
		if err != nil {
			return err
		}
		if err := png.Encode(f, res.Image); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if res.Voxels != nil {
		if err := os.WriteFile(stem+".vox", res.Voxels, 0o644); err != nil {
			return err
		}
	}

	if res.Colors != nil {
		buf := make([]byte, 0, len(res.Colors)*4)
		for _, c := range res.Colors {
			buf = append(buf, c.R, c.G, c.B, c.A)
		}
		if err := os.WriteFile(stem+".rgba", buf, 0o644); err != nil {
			return err
		}
	}
	return nil
}
