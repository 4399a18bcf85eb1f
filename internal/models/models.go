// Package models holds the generation-engine registry and the shared
// building blocks (3D grid, RNG, frame source) the built-in engines use.
// Engine packages register themselves from init, so importers pick models by
// blank-importing the packages they want available.
package models

import (
	"errors"
	"fmt"
	"sort"

	"voxgen/pkg/gen"
)

// ErrUnknownModel indicates a model name with no registered factory.
var ErrUnknownModel = errors.New("models: unknown model")

// Factory constructs an engine for the given parameters and dimensions.
type Factory func(params map[string]string, x, y, z int) (gen.Engine, error)

var registry = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	registry[name] = f
}

// New builds the engine named by desc. It satisfies gen.EngineFactory.
func New(desc gen.ModelDesc, x, y, z int) (gen.Engine, error) {
	f, ok := registry[desc.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, desc.Name)
	}
	return f(desc.Params, x, y, z)
}

// Names lists the registered model names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
