package model

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned when a cell index falls outside [0, N²)
	ErrOutOfRange = errors.New("cell index out of range")
	// ErrInvalidDimension is returned when a grid is built with N <= 0
	ErrInvalidDimension = errors.New("grid dimension must be positive")
	// ErrInvalidProbability is returned when a live-cell probability is outside [0, 1]
	ErrInvalidProbability = errors.New("probability must be within [0, 1]")
)
