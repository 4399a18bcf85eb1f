package gen

// ModelDesc names a generation model and carries its string parameters,
// flag-style key/value pairs interpreted by the model itself.
type ModelDesc struct {
	Name   string
	Params map[string]string
}

// Frame is one emitted generation state: a flat array of symbol indices into
// Legend's alphabet positions, the ordered legend of symbols actually in use,
// and the effective output dimensions. The effective dimensions may differ
// from the configured ones.
type Frame struct {
	Cells   []byte
	Legend  []rune
	X, Y, Z int
}

// FrameSource is a pull-based frame stream. Each Next call computes exactly
// one frame; no frames are produced ahead of the consumer. After Next returns
// false, Err reports the failure that ended the stream, if any.
type FrameSource interface {
	Next() (Frame, bool)
	Err() error
}

// Engine is one instantiated generation model.
type Engine interface {
	// Alphabet returns the model's fixed, ordered symbol set. Frame cell
	// values index into this alphabet.
	Alphabet() []rune
	// Run starts one seeded trial. A non-positive steps value means no step
	// limit. When snapshots is true every intermediate state is emitted;
	// otherwise only the final state is. The optional initial state is a flat
	// array of alphabet indices sized X*Y*Z, or nil.
	Run(seed int64, steps int, snapshots bool, initial []byte) FrameSource
}

// EngineFactory builds an Engine for a model description and target
// dimensions, failing if the description is invalid.
type EngineFactory func(desc ModelDesc, x, y, z int) (Engine, error)
