package domain

import "errors"

var (
	// ErrEmptyGrid indicates the sample grid has no rows or no columns.
	ErrEmptyGrid = errors.New("domain: sample grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("domain: all grid rows must have the same length")
	// ErrShapeMismatch indicates a mask or buffer does not match the grid it belongs to.
	ErrShapeMismatch = errors.New("domain: shape mismatch")
	// ErrInvalidConfig indicates plot options that must be rejected before any grid work.
	ErrInvalidConfig = errors.New("domain: invalid configuration")
)
