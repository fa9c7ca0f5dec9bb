package bn254

import (
	"math"
	"math/bits"

	"github.com/eth2030/skyscraper/log"
	"github.com/eth2030/skyscraper/rounding"
)

// Guard is the proof of round-toward-zero the fp-SIMD kernels require.
type Guard = rounding.Guard[rounding.TowardZero]

// useFMA selects the fused multiply-add product split. It needs hardware FMA
// and a settable rounding mode; without them the split is computed with
// integer arithmetic, producing the same bit patterns.
var useFMA = rounding.Supported() && hasHardwareFMA()

func init() {
	log.Default().Module("bn254").Debug("fp-SIMD backend selected",
		"backend", Backend(),
		"rounding_control", rounding.Supported(),
		"hardware_fma", hasHardwareFMA(),
	)
}

// Backend names the implementation behind the fp-SIMD kernels: "fma" or
// "emulated".
func Backend() string {
	if useFMA {
		return "fma"
	}
	return "emulated"
}

// product splits x*y (both below 2^52) into the float64 bit patterns of its
// high and low 52-bit halves: 2^104 + hi*2^52 and 2^52 + lo.
func product(x, y uint64) (hi, lo uint64) {
	if useFMA {
		a, b := float64(x), float64(y)
		h := math.FMA(a, b, c1)
		l := math.FMA(a, b, c2-h)
		return math.Float64bits(h), math.Float64bits(l)
	}
	h, l := bits.Mul64(x, y)
	return hiExponent + (h<<12 | l>>52), loExponent + l&mask52
}

// accum52 is the ten-limb product accumulator of one lane.
type accum52 [10]uint64

// row adds a_i * b into the accumulator.
func (t *accum52) row(i int, ai uint64, b *Limbs52) {
	for j := 0; j < 5; j++ {
		hi, lo := product(ai, b[j])
		t[i+j+1] += hi
		t[i+j] += lo
	}
}

// smult returns x*c as six unnormalised limbs carrying the exponent fields
// of the product halves.
func smult(x uint64, c *Limbs52) [6]uint64 {
	var r [6]uint64
	for j := 0; j < 5; j++ {
		hi, lo := product(x, c[j])
		r[j+1] += hi
		r[j] += lo
	}
	return r
}

// finish folds the lower five limbs with the rho constants, performs one
// Montgomery step and normalises the result to 52-bit limbs.
func (t *accum52) finish() Limbs52 {
	t[1] += t[0] >> 52
	t[2] += t[1] >> 52
	t[3] += t[2] >> 52
	t[4] += t[3] >> 52

	r0 := smult(t[0]&mask52, &rho4)
	r1 := smult(t[1]&mask52, &rho3)
	r2 := smult(t[2]&mask52, &rho2)
	r3 := smult(t[3]&mask52, &rho1)

	var s [6]uint64
	for k := range s {
		s[k] = t[4+k] + r0[k] + r1[k] + r2[k] + r3[k]
	}

	m := (s[0] * np0) & mask52
	mp := smult(m, &u52P)

	var out Limbs52
	carry := (s[0] + mp[0]) >> 52
	for i := range out {
		v := s[i+1] + mp[i+1] + carry
		out[i] = v & mask52
		carry = v >> 52
	}
	return out
}

// mul52 is the single-lane fp kernel: a*b*2^-260 mod p for limbs below
// 2^52 encoding values below 2p. The result is below OutputMax but may
// exceed 2p.
func mul52(a, b *Limbs52) Limbs52 {
	t := accum52(initialAccumulator)
	t.row(0, a[0], b)
	t.row(1, a[1], b)
	t.row(2, a[2], b)
	t.row(3, a[3], b)
	t.row(4, a[4], b)
	return t.finish()
}

// simdMul52 runs both lanes. It is kept out of line so the floating-point
// work stays inside the caller's guarded region.
//
//go:noinline
func simdMul52(a, b *[2]Limbs52) [2]Limbs52 {
	t0 := accum52(initialAccumulator)
	t1 := accum52(initialAccumulator)
	for i := 0; i < 5; i++ {
		t0.row(i, a[0][i], &b[0])
		t1.row(i, a[1][i], &b[1])
	}
	return [2]Limbs52{t0.finish(), t1.finish()}
}

// SimdMul52 multiplies two lanes of 52-bit limbs, computing a*b*2^-260 mod
// p per lane. Inputs must encode values below 2p.
func SimdMul52(g *Guard, a, b [2]Limbs52) [2]Limbs52 {
	g.Check()
	return simdMul52(&a, &b)
}

// SimdSqr52 squares two lanes of 52-bit limbs.
func SimdSqr52(g *Guard, a [2]Limbs52) [2]Limbs52 {
	g.Check()
	return simdMul52(&a, &a)
}

// SimdMul multiplies two lanes given as 64-bit limbs. Each lane computes the
// same a*b*2^-256 congruence as Mul, with inputs below 2p and outputs below
// OutputMax.
func SimdMul(g *Guard, a, b [2]Element) [2]Element {
	g.Check()
	va := [2]Limbs52{ToLimbs52(a[0]), ToLimbs52(a[1])}
	vb := [2]Limbs52{ToLimbs52(b[0]), ToLimbs52(b[1])}
	c := simdMul52(&va, &vb)
	return [2]Element{FromLimbs52(c[0]), FromLimbs52(c[1])}
}

// SimdSqr squares two lanes given as 64-bit limbs.
func SimdSqr(g *Guard, a [2]Element) [2]Element {
	return SimdMul(g, a, a)
}

// ToMontgomery52 maps two canonical values to the 2^260 Montgomery form of
// the 52-bit radix.
func ToMontgomery52(g *Guard, a [2]Element) [2]Limbs52 {
	g.Check()
	va := [2]Limbs52{limbs52Raw(a[0]), limbs52Raw(a[1])}
	r2 := [2]Limbs52{u52R2, u52R2}
	return simdMul52(&va, &r2)
}

// FromMontgomery52 maps two lanes in the 2^260 Montgomery form back to
// canonical values.
func FromMontgomery52(g *Guard, a [2]Limbs52) [2]Element {
	g.Check()
	one := [2]Limbs52{{1}, {1}}
	c := simdMul52(&a, &one)
	return [2]Element{Reduce(FromLimbs52(c[0])), Reduce(FromLimbs52(c[1]))}
}
