package renderer

import "errors"

var (
	ErrNoScene           = errors.New("renderer: no scene defined")
	ErrInvalidDimensions = errors.New("renderer: image dimensions must be positive")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidDepth      = errors.New("renderer: max depth must not be negative")
	ErrInvalidPasses     = errors.New("renderer: pass count must be positive")
	ErrInvalidTileSize   = errors.New("renderer: tile size must be positive")
	ErrInvalidGamma      = errors.New("renderer: gamma must be positive")
	ErrInterrupted       = errors.New("renderer: interrupted while rendering")
	ErrAlreadyRendered   = errors.New("renderer: frame already rendered")
)
