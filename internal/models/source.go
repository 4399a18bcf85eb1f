package models

import "voxgen/pkg/gen"

// Source adapts a step function into the pull-based frame stream engines
// must produce. In snapshot mode every Next call advances one step and emits
// the resulting state; otherwise a single Next call runs to the step limit or
// fixpoint and emits only the final state.
type Source struct {
	grid      *Grid
	alphabet  []rune
	steps     int
	snapshots bool
	step      func() bool

	taken int
	done  bool
}

// NewSource wires a grid, its model alphabet and a step function into a
// frame source. step advances the grid by one iteration and reports whether
// anything changed; a false return marks the fixpoint. A non-positive steps
// value means no limit. A final-only run always emits exactly one frame; a
// snapshot run emits one frame per state-changing step, so a run already at
// fixpoint emits none.
func NewSource(grid *Grid, alphabet []rune, steps int, snapshots bool, step func() bool) *Source {
	return &Source{grid: grid, alphabet: alphabet, steps: steps, snapshots: snapshots, step: step}
}

// Next produces the next frame. The final frame of a run is the state at
// fixpoint or at the step limit, whichever comes first.
func (s *Source) Next() (gen.Frame, bool) {
	if s.done {
		return gen.Frame{}, false
	}
	if s.snapshots {
		if !s.advance() {
			// Fixpoint: the previous emission already showed this state.
			s.done = true
			return gen.Frame{}, false
		}
		if s.exhausted() {
			s.done = true
		}
		return s.frame(), true
	}
	for s.advance() && !s.exhausted() {
	}
	s.done = true
	return s.frame(), true
}

// Err reports the failure that ended the stream. Built-in engines cannot
// fail mid-run.
func (s *Source) Err() error { return nil }

func (s *Source) advance() bool {
	if s.exhausted() {
		return false
	}
	s.taken++
	return s.step()
}

func (s *Source) exhausted() bool { return s.steps > 0 && s.taken >= s.steps }

// frame snapshots the grid as a legend-indexed cell array: the legend lists
// only the alphabet symbols actually present, and cells are remapped to
// legend positions.
func (s *Source) frame() gen.Frame {
	cells := s.grid.Cells()

	var used [256]bool
	for _, v := range cells {
		used[v] = true
	}
	var remap [256]byte
	legend := make([]rune, 0, len(s.alphabet))
	for i, sym := range s.alphabet {
		if used[i] {
			remap[i] = byte(len(legend))
			legend = append(legend, sym)
		}
	}

	out := make([]byte, len(cells))
	for i, v := range cells {
		out[i] = remap[v]
	}
	return gen.Frame{Cells: out, Legend: legend, X: s.grid.X, Y: s.grid.Y, Z: s.grid.Z}
}
