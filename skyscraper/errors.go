package skyscraper

import "errors"

var (
	// ErrInvalidBufferShape is returned by CompressMany when the message
	// buffer is not a whole number of 64-byte pairs, the hash buffer is not a
	// whole number of 32-byte digests, or the two counts differ.
	ErrInvalidBufferShape = errors.New("skyscraper: invalid buffer shape")

	// ErrDifficultyRange is returned for proof-of-work difficulties outside
	// [0, 80).
	ErrDifficultyRange = errors.New("skyscraper: difficulty out of range")

	ErrInvalidConfig = errors.New("skyscraper: invalid config")
)
