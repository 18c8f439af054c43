package bytesutil

import (
	"errors"
)

// ErrLengthMismatch indicates a fixed-width decode was given a length that does not match the type's width.
var ErrLengthMismatch error = errors.New("Decode length mismatch")

// ErrOffsetOutOfBounds indicates an offset and length reach past the end of the slice.
var ErrOffsetOutOfBounds error = errors.New("Offset out of bounds")

// ErrInsufficientCapacity indicates the destination slice lacks room for a put at the given offset.
var ErrInsufficientCapacity error = errors.New("Insufficient capacity")

// ErrValueTooLarge indicates an increment input longer than eight bytes.
var ErrValueTooLarge error = errors.New("Value too large")

// ErrNegativeLength indicates a corrupt length prefix that decoded to a negative value.
var ErrNegativeLength error = errors.New("Negative length")

// ErrUnexpectedEnd indicates a truncated encoding ended before all expected bytes were read.
var ErrUnexpectedEnd error = errors.New("Unexpected end of input")
