package bn254

import "math/bits"

// quotient estimates floor(x / p) from the top limb. The divisor p[3]+1
// makes the estimate never exceed the true quotient, and any 256-bit top
// limb gives k <= 5.
func quotient(x *Element) uint64 {
	return x[3] / (P[3] + 1)
}

// ReducePartial subtracts k*p from x with k taken from the top limb. Any
// 256-bit input is accepted. The result is congruent to x and its top limb
// is at most p[3]+5, so it is below p + 6*2^192 and in particular below 2p.
func ReducePartial(x Element) Element {
	k := quotient(&x)
	r, _ := sub(x, Modulus[k])
	if debugChecks && r[3] > P[3]+k {
		panic("bn254: ReducePartial top limb out of range")
	}
	return r
}

// Reduce1 maps x in [0, 2p) to [0, p) with one conditional subtraction.
// The selection is done with a mask, not a branch.
func Reduce1(x Element) Element {
	d, borrow := sub(x, P)
	mask := -borrow
	return Element{
		d[0] ^ ((d[0] ^ x[0]) & mask),
		d[1] ^ ((d[1] ^ x[1]) & mask),
		d[2] ^ ((d[2] ^ x[2]) & mask),
		d[3] ^ ((d[3] ^ x[3]) & mask),
	}
}

// Reduce fully reduces any 256-bit value to [0, p).
func Reduce(x Element) Element {
	return Reduce1(ReducePartial(x))
}

// ReducePartialAddRC returns ReducePartial(x) + RoundConstants[round] in one
// wrapping subtraction of ModulusNMinusRC[k][round]. The result is below 2p.
func ReducePartialAddRC(x Element, round int) Element {
	k := quotient(&x)
	r, _ := sub(x, ModulusNMinusRC[k][round])
	if debugChecks && !r.Less(P2) {
		panic("bn254: ReducePartialAddRC result not below 2p")
	}
	return r
}

// IsReduced reports whether x is canonical, x < p.
func IsReduced(x Element) bool {
	_, borrow := bits.Sub64(x[0], P[0], 0)
	_, borrow = bits.Sub64(x[1], P[1], borrow)
	_, borrow = bits.Sub64(x[2], P[2], borrow)
	_, borrow = bits.Sub64(x[3], P[3], borrow)
	return borrow != 0
}
