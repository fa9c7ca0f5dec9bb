//go:build amd64 && !purego

package rounding

const (
	hasControl   = true
	controlShift = 13
)

// fieldBits maps MXCSR.RC to Bits and back: RC=01 rounds down and RC=10
// rounds up, the reverse of FPCR.
var fieldBits = [4]Bits{BitsNearest, BitsTowardNegative, BitsTowardPositive, BitsTowardZero}

// getControl returns MXCSR, zero-extended.
func getControl() uint64

// setControl loads the low 32 bits of v into MXCSR.
func setControl(v uint64)
