package carray

import "errors"

var (
	ErrEmptySampleSet      = errors.New("empty sample set")
	ErrTooManySamples      = errors.New("too many samples")
	ErrUnknownRenderFormat = errors.New("unknown render format")
)
