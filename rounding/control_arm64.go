//go:build arm64 && !purego

package rounding

const (
	hasControl   = true
	controlShift = 22
)

// fieldBits maps FPCR.RMode to Bits and back.
var fieldBits = [4]Bits{BitsNearest, BitsTowardPositive, BitsTowardNegative, BitsTowardZero}

// getControl returns FPCR.
func getControl() uint64

// setControl writes v to FPCR.
func setControl(v uint64)
