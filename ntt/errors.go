package ntt

import "errors"

var (
	// ErrInvalidLength is returned when an input length does not match the
	// transform: not a power of two, not the shape a routine requires, or not
	// the size a twiddle bundle was built for.
	ErrInvalidLength = errors.New("ntt: invalid length")

	// ErrNoSuchRootOfUnity is returned for sizes beyond the 2-adicity of the
	// field.
	ErrNoSuchRootOfUnity = errors.New("ntt: no root of unity for size")

	// ErrInvalidConfig is wrapped by Config.Validate.
	ErrInvalidConfig = errors.New("ntt: invalid config")
)
