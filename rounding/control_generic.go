//go:build !(amd64 || arm64) || purego

package rounding

const (
	hasControl   = false
	controlShift = 0
)

var fieldBits = [4]Bits{BitsNearest, BitsTowardPositive, BitsTowardNegative, BitsTowardZero}

func getControl() uint64 { return 0 }

func setControl(uint64) {}
