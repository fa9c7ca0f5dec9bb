// Package rounding switches the floating-point rounding direction of the
// calling OS thread for the lifetime of a Guard.
//
// The fp-SIMD Montgomery kernels in package bn254 compute exact 104-bit
// products with fused multiply-add, which is only correct when the FPU
// truncates. They take a *Guard[TowardZero] as a proof that the caller has
// switched the mode; the guard is never read by them.
//
// Control register layout:
//
//	amd64  MXCSR bits 14:13  00 nearest, 01 toward -inf, 10 toward +inf, 11 toward zero
//	arm64  FPCR  bits 23:22  00 nearest, 01 toward +inf, 10 toward -inf, 11 toward zero
//
// Bits uses the FPCR encoding; amd64 swaps the two directed codes when it
// reads or writes MXCSR. On other architectures Supported reports false and guards are pure tokens.
package rounding

// Bits is a two-bit rounding-control code in FPCR order.
type Bits uint8

const (
	BitsNearest        Bits = 0b00
	BitsTowardPositive Bits = 0b01
	BitsTowardNegative Bits = 0b10
	BitsTowardZero     Bits = 0b11
)

// String returns the mode name for the code.
func (b Bits) String() string {
	switch b & 0b11 {
	case BitsNearest:
		return "nearest"
	case BitsTowardPositive:
		return "toward-positive"
	case BitsTowardNegative:
		return "toward-negative"
	default:
		return "toward-zero"
	}
}

// Mode is implemented by the four rounding-mode marker types. The method set
// is unexported so no other package can add modes.
type Mode interface {
	bits() Bits
}

// Nearest rounds to nearest, ties to even. It is the default mode.
type Nearest struct{}

// TowardPositive rounds toward +inf.
type TowardPositive struct{}

// TowardNegative rounds toward -inf.
type TowardNegative struct{}

// TowardZero truncates.
type TowardZero struct{}

func (Nearest) bits() Bits        { return BitsNearest }
func (TowardPositive) bits() Bits { return BitsTowardPositive }
func (TowardNegative) bits() Bits { return BitsTowardNegative }
func (TowardZero) bits() Bits     { return BitsTowardZero }

// BitsOf returns the control code selected by M.
func BitsOf[M Mode]() Bits {
	var m M
	return m.bits()
}

const controlMask = uint64(0b11) << controlShift

// Supported reports whether this build can change the hardware rounding
// direction.
func Supported() bool { return hasControl }

// Current returns the rounding code of the calling thread. It reports
// BitsNearest where the register is not accessible.
func Current() Bits {
	if !hasControl {
		return BitsNearest
	}
	return fieldBits[(getControl()&controlMask)>>controlShift]
}

// withBits returns the control word ctl with its rounding field set to b.
func withBits(ctl uint64, b Bits) uint64 {
	return ctl&^controlMask | uint64(fieldBits[b&0b11])<<controlShift
}
