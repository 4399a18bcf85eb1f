// Package gen orchestrates seeded generation runs: it resolves the effective
// palette, validates the configuration against the optional initial grid,
// drives an engine across the requested trials, and converts each produced
// frame into the enabled output artifacts.
//
// Results are delivered through a pull iterator; each Next call performs
// exactly one engine step worth of work, so stopping early costs nothing.
package gen

import (
	"fmt"
	"math/rand/v2"

	"voxgen/pkg/palette"
)

// Run validates cfg, resolves the effective palette, converts the optional
// initial color grid to engine state, and creates the engine. All
// configuration errors surface here, before any frame is produced; the
// returned stream only fails on per-frame mapping or encoding errors.
func Run(cfg *Config, newEngine EngineFactory) (*Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pal := palette.Resolve(palette.Default(), cfg.Overrides)

	engine, err := newEngine(cfg.Model, cfg.Width, cfg.Height, cfg.Depth)
	if err != nil {
		return nil, fmt.Errorf("gen: creating engine %q: %w", cfg.Model.Name, err)
	}

	var initial []byte
	if cfg.Initial != nil {
		if initial, err = mapInitial(cfg.Initial, pal, engine.Alphabet()); err != nil {
			return nil, err
		}
	}

	return &Results{cfg: cfg, pal: pal, engine: engine, initial: initial}, nil
}

// Results is the lazy stream of per-frame artifact bundles, in strict run
// order and, within a run, engine-emission order. Use it like bufio.Scanner:
//
//	for res.Next() {
//		r := res.Result()
//		...
//	}
//	if err := res.Err(); err != nil { ... }
//
// The first error ends the stream; no later runs or frames are attempted.
type Results struct {
	cfg     *Config
	pal     palette.Palette
	engine  Engine
	initial []byte

	run    int
	seed   int64
	frames FrameSource
	cur    Result
	err    error
	done   bool
}

// Next advances to the next artifact bundle, invoking the engine for at most
// one frame. It returns false when all runs are exhausted or an error ends
// the stream.
func (r *Results) Next() bool {
	if r.done || r.err != nil {
		return false
	}
	for {
		if r.frames == nil {
			if r.run >= r.cfg.Runs {
				r.done = true
				return false
			}
			r.seed = r.seedFor(r.run)
			r.frames = r.engine.Run(r.seed, r.cfg.Steps, r.cfg.Snapshots, r.initial)
		}

		f, ok := r.frames.Next()
		if !ok {
			if err := r.frames.Err(); err != nil {
				r.err = fmt.Errorf("gen: run %d: %w", r.run, err)
				return false
			}
			r.frames = nil
			r.run++
			continue
		}

		colors, err := legendColors(f.Legend, r.pal)
		if err != nil {
			r.err = fmt.Errorf("gen: run %d: %w", r.run, err)
			return false
		}
		res, err := emit(r.cfg, f, colors)
		if err != nil {
			r.err = fmt.Errorf("gen: run %d: %w", r.run, err)
			return false
		}
		res.Run = r.run
		res.Seed = r.seed
		r.cur = res
		return true
	}
}

// Result returns the bundle produced by the last successful Next call.
func (r *Results) Result() Result { return r.cur }

// Err reports the error that ended the stream, if any.
func (r *Results) Err() error { return r.err }

// seedFor picks the explicit seed for run k when one is configured, and
// draws a fresh random seed otherwise.
func (r *Results) seedFor(k int) int64 {
	if k < len(r.cfg.Seeds) {
		return r.cfg.Seeds[k]
	}
	return rand.Int64()
}
