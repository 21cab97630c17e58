package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates a shape with no axes or with an extent below one.
	ErrBadShape = errors.New("grid: shape must have at least one axis and every extent must be >= 1")
	// ErrSizeMismatch indicates a data slice whose length is not the product of the extents.
	ErrSizeMismatch = errors.New("grid: data length does not match shape")
	// ErrOutOfRange indicates a coordinate or axis outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")
	// ErrShapeMismatch indicates two fields that do not share a shape.
	ErrShapeMismatch = errors.New("grid: shape mismatch")
)

// fieldErrorf wraps err with the Field method that produced it.
func fieldErrorf(method string, err error) error {
	return fmt.Errorf("Field.%s: %w", method, err)
}
