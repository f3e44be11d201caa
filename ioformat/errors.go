package ioformat

import "errors"

var (
	// ErrMalformed is returned when a file does not match the expected
	// adjacency-list or adjacency-matrix syntax.
	ErrMalformed = errors.New("ioformat: malformed input")

	// ErrVertexRange is returned when a neighbor index falls outside
	// [1, N] in the adjacency-list format. A matrix of the wrong shape is
	// reported as ErrMalformed.
	ErrVertexRange = errors.New("ioformat: vertex index out of range")
)
