package bn254

import "math/bits"

// Mul returns a*b*2^-256 mod p in [0, 2p) using single-step CIOS Montgomery
// multiplication. Inputs must be below 2p; since 4p < 2^256 no final
// subtraction is needed to keep the result in range.
func Mul(a, b Element) Element {
	var t [6]uint64
	ciosStep(&t, a[0], &b)
	ciosStep(&t, a[1], &b)
	ciosStep(&t, a[2], &b)
	ciosStep(&t, a[3], &b)
	return Element{t[0], t[1], t[2], t[3]}
}

// Sqr returns a*a*2^-256 mod p in [0, 2p).
func Sqr(a Element) Element {
	return Mul(a, a)
}

// ciosStep folds limb ai of the left operand into the accumulator t and
// performs one Montgomery reduction step, shifting t down by one limb.
func ciosStep(t *[6]uint64, ai uint64, b *Element) {
	var c, hi, lo uint64

	// t += ai * b
	hi, lo = bits.Mul64(ai, b[0])
	t[0], c = bits.Add64(t[0], lo, 0)
	hi += c
	c = hi

	hi, lo = bits.Mul64(ai, b[1])
	lo, hc := bits.Add64(lo, c, 0)
	hi += hc
	t[1], hc = bits.Add64(t[1], lo, 0)
	c = hi + hc

	hi, lo = bits.Mul64(ai, b[2])
	lo, hc = bits.Add64(lo, c, 0)
	hi += hc
	t[2], hc = bits.Add64(t[2], lo, 0)
	c = hi + hc

	hi, lo = bits.Mul64(ai, b[3])
	lo, hc = bits.Add64(lo, c, 0)
	hi += hc
	t[3], hc = bits.Add64(t[3], lo, 0)
	c = hi + hc

	t[4], hc = bits.Add64(t[4], c, 0)
	t[5] = hc

	// t = (t + m*p) / 2^64
	m := t[0] * MU0

	hi, lo = bits.Mul64(m, P[0])
	_, hc = bits.Add64(t[0], lo, 0)
	c = hi + hc

	hi, lo = bits.Mul64(m, P[1])
	lo, hc = bits.Add64(lo, c, 0)
	hi += hc
	t[0], hc = bits.Add64(t[1], lo, 0)
	c = hi + hc

	hi, lo = bits.Mul64(m, P[2])
	lo, hc = bits.Add64(lo, c, 0)
	hi += hc
	t[1], hc = bits.Add64(t[2], lo, 0)
	c = hi + hc

	hi, lo = bits.Mul64(m, P[3])
	lo, hc = bits.Add64(lo, c, 0)
	hi += hc
	t[2], hc = bits.Add64(t[3], lo, 0)
	c = hi + hc

	t[3], hc = bits.Add64(t[4], c, 0)
	t[4] = t[5] + hc
}
