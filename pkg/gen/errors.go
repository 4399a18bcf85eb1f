package gen

import "errors"

var (
	// ErrBadConfig indicates an invalid run configuration (dimensions or counts).
	ErrBadConfig = errors.New("gen: invalid configuration")
	// ErrDimensionMismatch indicates the initial grid does not match the configured dimensions.
	ErrDimensionMismatch = errors.New("gen: initial grid dimensions do not match configuration")
	// ErrColorNotRecognized indicates an initial-grid color with no palette entry.
	ErrColorNotRecognized = errors.New("gen: color not present in palette")
	// ErrSymbolNotInAlphabet indicates a palette symbol outside the engine's alphabet.
	ErrSymbolNotInAlphabet = errors.New("gen: symbol not in engine alphabet")
	// ErrUnmappedSymbol indicates a legend symbol with no palette entry.
	ErrUnmappedSymbol = errors.New("gen: legend symbol not in palette")
)
