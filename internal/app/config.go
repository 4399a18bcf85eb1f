// Package app holds the command-facing run configuration (flag binding and
// declarative YAML run files) and the live viewer built on ebiten.
package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"voxgen/pkg/gen"
	"voxgen/pkg/palette"
)

// Config represents one run request as the commands see it: either bound
// from flags or decoded from a YAML run file, then converted to a gen.Config.
type Config struct {
	Model  string            `yaml:"model"`
	Params map[string]string `yaml:"params"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Depth  int `yaml:"depth"`

	Runs  int     `yaml:"runs"`
	Seeds []int64 `yaml:"seeds"`
	Steps int     `yaml:"steps"`

	Snapshots bool `yaml:"snapshots"`
	Image     bool `yaml:"image"`
	Voxels    bool `yaml:"voxels"`
	Raw       bool `yaml:"raw"`

	Scale     int  `yaml:"scale"`
	Isometric bool `yaml:"isometric"`

	// Palette lists symbol→color overrides in application order.
	Palette []PaletteEntry `yaml:"palette"`

	// Initial optionally seeds the run: layers of rows of palette symbols,
	// outermost slice indexed by depth.
	Initial [][]string `yaml:"initial"`

	Out string `yaml:"out"`
}

// PaletteEntry overrides one symbol with an RRGGBBAA hex color.
type PaletteEntry struct {
	Symbol string `yaml:"symbol"`
	Color  string `yaml:"color"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Model:  "growth",
		Width:  32,
		Height: 32,
		Depth:  1,
		Runs:   1,
		Steps:  0,
		Image:  true,
		Scale:  4,
		Out:    "out",
	}
}

// Bind attaches the configuration to the provided FlagSet. Flags parsed
// after Load override the run file.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Model, "model", c.Model, "generation model to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width")
	fs.IntVar(&c.Height, "h", c.Height, "grid height")
	fs.IntVar(&c.Depth, "d", c.Depth, "grid depth (1 = flat)")
	fs.IntVar(&c.Runs, "runs", c.Runs, "number of seeded trials")
	fs.IntVar(&c.Steps, "steps", c.Steps, "step limit per run (0 = unlimited)")
	fs.BoolVar(&c.Snapshots, "snapshots", c.Snapshots, "emit every intermediate state")
	fs.BoolVar(&c.Image, "png", c.Image, "write raster images")
	fs.BoolVar(&c.Voxels, "vox", c.Voxels, "write voxel objects")
	fs.BoolVar(&c.Raw, "raw", c.Raw, "write raw color buffers")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.BoolVar(&c.Isometric, "iso", c.Isometric, "render depth>1 frames isometrically")
	fs.StringVar(&c.Out, "out", c.Out, "output directory")
	fs.Func("seed", "explicit seed, repeatable per run", func(v string) error {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		c.Seeds = append(c.Seeds, seed)
		return nil
	})
	fs.Func("param", "model parameter key=value, repeatable", func(v string) error {
		key, val, ok := strings.Cut(v, "=")
		if !ok {
			return fmt.Errorf("expected key=value, got %q", v)
		}
		if c.Params == nil {
			c.Params = map[string]string{}
		}
		c.Params[key] = val
		return nil
	})
}

// Load decodes a YAML run file over the current values.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing run file %s: %w", path, err)
	}
	return nil
}

// GenConfig converts the command-level configuration into the orchestration
// core's form, resolving palette overrides and the symbolic initial grid.
func (c *Config) GenConfig() (*gen.Config, error) {
	overrides, err := c.overrides()
	if err != nil {
		return nil, err
	}

	cfg := &gen.Config{
		Model:      gen.ModelDesc{Name: c.Model, Params: c.Params},
		Width:      c.Width,
		Height:     c.Height,
		Depth:      c.Depth,
		Runs:       c.Runs,
		Seeds:      c.Seeds,
		Steps:      c.Steps,
		Snapshots:  c.Snapshots,
		Image:      c.Image,
		Voxels:     c.Voxels,
		RawColors:  c.Raw,
		PixelScale: c.Scale,
		Isometric:  c.Isometric,
		Overrides:  overrides,
	}

	if len(c.Initial) > 0 {
		grid, err := c.initialGrid(palette.Resolve(palette.Default(), overrides))
		if err != nil {
			return nil, err
		}
		cfg.Initial = grid
	}
	return cfg, nil
}

func (c *Config) overrides() ([]palette.Override, error) {
	overrides := make([]palette.Override, 0, len(c.Palette))
	for _, e := range c.Palette {
		syms := []rune(e.Symbol)
		if len(syms) != 1 {
			return nil, fmt.Errorf("palette override symbol must be a single rune, got %q", e.Symbol)
		}
		color, err := parseColor(e.Color)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, palette.Override{Symbol: syms[0], Color: color})
	}
	return overrides, nil
}

// initialGrid turns the symbolic layer/row layout into the color grid the
// core expects, using the already-resolved effective palette.
func (c *Config) initialGrid(pal palette.Palette) ([][][]palette.Color, error) {
	grid := make([][][]palette.Color, len(c.Initial))
	for z, layer := range c.Initial {
		grid[z] = make([][]palette.Color, len(layer))
		for y, row := range layer {
			syms := []rune(row)
			grid[z][y] = make([]palette.Color, len(syms))
			for x, sym := range syms {
				color, ok := pal[sym]
				if !ok {
					return nil, fmt.Errorf("initial grid symbol %q at (%d,%d,%d) has no palette entry", sym, x, y, z)
				}
				grid[z][y][x] = color
			}
		}
	}
	return grid, nil
}

// parseColor reads an RRGGBB or RRGGBBAA hex string; alpha defaults to FF.
func parseColor(s string) (palette.Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 6 {
		s += "FF"
	}
	if len(s) != 8 {
		return palette.Color{}, fmt.Errorf("color must be RRGGBB or RRGGBBAA hex, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return palette.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return palette.Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
