package bn254

import (
	"encoding/binary"
	"errors"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/holiman/uint256"
)

// Element is a 256-bit value in four little-endian 64-bit limbs. Whether it
// is canonical, partially reduced or in Montgomery form depends on where it
// came from.
type Element [4]uint64

// Limbs52 is a value in five little-endian 52-bit limbs, the layout of one
// fp-SIMD lane.
type Limbs52 [5]uint64

// Bytes is the size of the little-endian byte encoding of an Element.
const Bytes = 32

var ErrShortBuffer = errors.New("bn254: buffer shorter than 32 bytes")

// IsZero reports whether all limbs are zero.
func (e Element) IsZero() bool {
	return e[0]|e[1]|e[2]|e[3] == 0
}

// Less reports whether e < o as 256-bit integers.
func (e Element) Less(o Element) bool {
	_, b := bits.Sub64(e[0], o[0], 0)
	_, b = bits.Sub64(e[1], o[1], b)
	_, b = bits.Sub64(e[2], o[2], b)
	_, b = bits.Sub64(e[3], o[3], b)
	return b != 0
}

// Uint256 returns e as a uint256 integer. No reduction is applied.
func (e Element) Uint256() *uint256.Int {
	v := uint256.Int(e)
	return &v
}

// FromUint256 returns the limbs of v unchanged.
func FromUint256(v *uint256.Int) Element {
	return Element(*v)
}

// String formats the integer value of the limbs in decimal.
func (e Element) String() string {
	return e.Uint256().Dec()
}

// MustFromDecimal parses a decimal integer below 2^256. It panics on bad
// input and is meant for constants and tests.
func MustFromDecimal(s string) Element {
	return FromUint256(uint256.MustFromDecimal(s))
}

// PutBytes writes e as 32 little-endian bytes into dst.
func (e Element) PutBytes(dst []byte) {
	_ = dst[31]
	binary.LittleEndian.PutUint64(dst[0:], e[0])
	binary.LittleEndian.PutUint64(dst[8:], e[1])
	binary.LittleEndian.PutUint64(dst[16:], e[2])
	binary.LittleEndian.PutUint64(dst[24:], e[3])
}

// LEBytes returns the 32-byte little-endian encoding of e.
func (e Element) LEBytes() [Bytes]byte {
	var out [Bytes]byte
	e.PutBytes(out[:])
	return out
}

// FromBytes reads 32 little-endian bytes. The value is not reduced.
func FromBytes(src []byte) (Element, error) {
	if len(src) < Bytes {
		return Element{}, ErrShortBuffer
	}
	return Element{
		binary.LittleEndian.Uint64(src[0:]),
		binary.LittleEndian.Uint64(src[8:]),
		binary.LittleEndian.Uint64(src[16:]),
		binary.LittleEndian.Uint64(src[24:]),
	}, nil
}

// FromFr returns the Montgomery limbs of a gnark-crypto element. Both use
// R = 2^256, so no conversion is needed.
func FromFr(x *fr.Element) Element {
	return Element(*x)
}

// ToFr fully reduces e and returns it as a gnark-crypto element with the
// same Montgomery limbs.
func (e Element) ToFr() fr.Element {
	return fr.Element(Reduce(e))
}

// ToMontgomery maps a canonical value below p to a*R mod p, fully reduced.
func ToMontgomery(a Element) Element {
	return Reduce1(Mul(a, R2))
}

// FromMontgomery maps a*R mod p (any value below 2p) back to a, fully
// reduced.
func FromMontgomery(a Element) Element {
	return Reduce1(Mul(a, Element{1}))
}

// Add returns a + b without reduction. The sum must fit in 256 bits, which
// holds whenever a < OutputMax and b < 2p.
func Add(a, b Element) Element {
	var c Element
	var carry uint64
	c[0], carry = bits.Add64(a[0], b[0], 0)
	c[1], carry = bits.Add64(a[1], b[1], carry)
	c[2], carry = bits.Add64(a[2], b[2], carry)
	c[3], carry = bits.Add64(a[3], b[3], carry)
	if debugChecks && carry != 0 {
		panic("bn254: Add overflowed 256 bits")
	}
	return c
}

// sub returns a - b mod 2^256 and the borrow.
func sub(a, b Element) (Element, uint64) {
	var c Element
	var borrow uint64
	c[0], borrow = bits.Sub64(a[0], b[0], 0)
	c[1], borrow = bits.Sub64(a[1], b[1], borrow)
	c[2], borrow = bits.Sub64(a[2], b[2], borrow)
	c[3], borrow = bits.Sub64(a[3], b[3], borrow)
	return c, borrow
}

// ToLimbs52 converts a value below 2^256 to 52-bit limbs, shifted left by
// two bits. The shift turns the 2^260 radix of the fp-SIMD kernel into the
// 2^256 radix of the scalar kernel, so both compute a*b*2^-256 on the same
// limbs.
func ToLimbs52(a Element) Limbs52 {
	return Limbs52{
		(a[0] << 2) & mask52,
		((a[0] >> 50) | (a[1] << 14)) & mask52,
		((a[1] >> 38) | (a[2] << 26)) & mask52,
		((a[2] >> 26) | (a[3] << 38)) & mask52,
		a[3] >> 14,
	}
}

// FromLimbs52 packs five 52-bit limbs into four 64-bit limbs. Bits above
// 2^256 are dropped; kernel outputs never have them.
func FromLimbs52(a Limbs52) Element {
	return Element{
		a[0] | (a[1] << 52),
		(a[1] >> 12) | (a[2] << 40),
		(a[2] >> 24) | (a[3] << 28),
		(a[3] >> 36) | (a[4] << 16),
	}
}

// limbs52Raw converts without the radix shift. Used with the native 2^260
// Montgomery form.
func limbs52Raw(a Element) Limbs52 {
	return Limbs52{
		a[0] & mask52,
		((a[0] >> 52) | (a[1] << 12)) & mask52,
		((a[1] >> 40) | (a[2] << 24)) & mask52,
		((a[2] >> 28) | (a[3] << 36)) & mask52,
		a[3] >> 16,
	}
}
