package cm31

import "errors"

var (
	// ErrNoSuchRootOfUnity is returned for orders that are not a power of
	// two up to 2^32, the size of the multiplicative 2-subgroup.
	ErrNoSuchRootOfUnity = errors.New("cm31: no root of unity of that order")

	// ErrNotInvertible is returned when inverting zero.
	ErrNotInvertible = errors.New("cm31: zero has no inverse")
)
