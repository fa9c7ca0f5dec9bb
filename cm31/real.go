// Package cm31 implements arithmetic over the Mersenne field F_q with
// q = 2^31 - 1 and its quadratic extension F_q[i]/(i^2 + 1).
//
// Values are reduced lazily: a Real holds any representative below 2^32,
// so additions and products need a single fold instead of a compare and
// subtract. Reduce returns the canonical representative in [0, q).
package cm31

import "fmt"

// Q is the Mersenne prime 2^31 - 1.
const Q = 1<<31 - 1

// Real is an element of F_q. The stored value is any representative below
// 2^32; all methods accept and return such values.
type Real uint64

// NewReal returns v as a field element.
func NewReal(v uint32) Real { return Real(v) }

// fold31 maps v to a congruent value using 2^31 = 1 mod q. For v < 2^64 the
// result is below 2^33 + 2^31.
func fold31(v uint64) uint64 { return v&Q + v>>31 }

// Reduce returns the canonical representative in [0, q).
func (a Real) Reduce() Real {
	v := fold31(uint64(a))
	if v >= Q {
		v -= Q
	}
	return Real(v)
}

// Uint32 returns the canonical value.
func (a Real) Uint32() uint32 { return uint32(a.Reduce()) }

func (a Real) Add(b Real) Real { return Real(fold31(uint64(a) + uint64(b))) }

// Sub adds 4q - b, which stays positive for any b below 2^32.
func (a Real) Sub(b Real) Real { return Real(fold31(uint64(a) + 4*Q - uint64(b))) }

func (a Real) Neg() Real { return Real(fold31(4*Q - uint64(a))) }

func (a Real) Double() Real { return Real(fold31(uint64(a) << 1)) }

// Mul folds the 64-bit product twice.
func (a Real) Mul(b Real) Real {
	return Real(fold31(fold31(uint64(a) * uint64(b))))
}

func (a Real) Square() Real { return a.Mul(a) }

func (a Real) IsZero() bool { return a.Reduce() == 0 }

// Equal compares canonical values.
func (a Real) Equal(b Real) bool { return a.Reduce() == b.Reduce() }

// Pow returns a^e by square and multiply.
func (a Real) Pow(e uint64) Real {
	r := Real(1)
	for ; e != 0; e >>= 1 {
		if e&1 != 0 {
			r = r.Mul(a)
		}
		a = a.Square()
	}
	return r
}

// Inverse returns a^(q-2), or ErrNotInvertible for zero.
func (a Real) Inverse() (Real, error) {
	if a.IsZero() {
		return 0, ErrNotInvertible
	}
	return a.Pow(Q - 2).Reduce(), nil
}

// Sqrt returns a square root of a and whether one exists. Since q = 3 mod 4
// the candidate is a^((q+1)/4).
func (a Real) Sqrt() (Real, bool) {
	r := a.Pow((Q + 1) / 4).Reduce()
	if !r.Square().Equal(a) {
		return 0, false
	}
	return r, true
}

// Mul2Exp multiplies by 2^k. Doubling modulo a Mersenne prime rotates the
// 31-bit canonical value left.
func (a Real) Mul2Exp(k uint) Real {
	v := uint32(a.Reduce())
	k %= 31
	return Real((v<<k)&Q | v>>(31-k))
}

// Div2Exp divides by 2^k, a right rotation of the 31-bit value.
func (a Real) Div2Exp(k uint) Real {
	v := uint32(a.Reduce())
	k %= 31
	return Real(v>>k | (v<<(31-k))&Q)
}

func (a Real) String() string { return fmt.Sprintf("%d", a.Uint32()) }

