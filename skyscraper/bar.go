package skyscraper

import "github.com/eth2030/skyscraper/bn254"

// Sbox is the 8-bit Skyscraper S-box
// rotl1(v ^ (rotl1(^v) & rotl2(v) & rotl3(v))).
func Sbox(v byte) byte {
	t := rotl8(^v, 1) & rotl8(v, 2) & rotl8(v, 3)
	return rotl8(v^t, 1)
}

func rotl8(v byte, n uint) byte {
	return v<<n | v>>(8-n)
}

// Per-byte masks for rotating all eight bytes of a word at once: hiMaskN
// keeps the bits that stay inside their byte after a left shift by N and
// loMaskN keeps the N bits that wrap around.
const (
	hiMask1 = 0xfefefefefefefefe
	loMask1 = 0x0101010101010101
	hiMask2 = 0xfcfcfcfcfcfcfcfc
	loMask2 = 0x0303030303030303
	hiMask3 = 0xf8f8f8f8f8f8f8f8
	loMask3 = 0x0707070707070707
)

func rotl1x8(v uint64) uint64 { return (v<<1)&hiMask1 | (v>>7)&loMask1 }
func rotl2x8(v uint64) uint64 { return (v<<2)&hiMask2 | (v>>6)&loMask2 }
func rotl3x8(v uint64) uint64 { return (v<<3)&hiMask3 | (v>>5)&loMask3 }

// Sbox64 applies Sbox to each byte of v.
func Sbox64(v uint64) uint64 {
	t := rotl1x8(^v) & rotl2x8(v) & rotl3x8(v)
	return rotl1x8(v ^ t)
}

// Sbox128 applies Sbox to each byte of a 128-bit value held as two words.
func Sbox128(v [2]uint64) [2]uint64 {
	return [2]uint64{Sbox64(v[0]), Sbox64(v[1])}
}

// Bar is the non-algebraic round function. The input must be below 2p. It
// is fully reduced, its 16-byte halves are swapped, every byte goes through
// Sbox and the result is partially reduced.
func Bar(x bn254.Element) bn254.Element {
	if debugChecks && !x.Less(bn254.P2) {
		panic("skyscraper: Bar input not below 2p")
	}
	x = bn254.Reduce1(x)
	lo := Sbox128([2]uint64{x[2], x[3]})
	hi := Sbox128([2]uint64{x[0], x[1]})
	return bn254.ReducePartial(bn254.Element{lo[0], lo[1], hi[0], hi[1]})
}
