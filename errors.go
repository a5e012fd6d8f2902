package clip

import "errors"

var (
	// ErrInvalidWindow is returned when a clip window does not satisfy
	// Min.X < Max.X and Min.Y < Max.Y.
	ErrInvalidWindow = errors.New("clip: invalid clip window")

	// ErrDegeneratePolygon is returned when a polygon has fewer than 3 vertices.
	ErrDegeneratePolygon = errors.New("clip: polygon needs at least 3 vertices")

	// ErrUnknownAlgorithm is returned for an Algorithm value or name
	// that does not name one of the rectangle line clippers.
	ErrUnknownAlgorithm = errors.New("clip: unknown algorithm")
)
