package mandel

import "errors"

var (
	// ErrInvalidBounds is returned when a render target has a zero or
	// negative dimension.
	ErrInvalidBounds = errors.New("mandel: bounds must have positive width and height")

	// ErrInvalidWorkers is returned when a scheduler is asked to run
	// with fewer than one worker.
	ErrInvalidWorkers = errors.New("mandel: worker count must be at least 1")

	// ErrInvalidLimit is returned when the iteration limit is below 1.
	ErrInvalidLimit = errors.New("mandel: iteration limit must be at least 1")
)
