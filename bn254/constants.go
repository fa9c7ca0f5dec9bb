// Package bn254 implements Montgomery arithmetic for the BN254 scalar field
// Fr: a scalar CIOS multiplier on four 64-bit limbs, an fp-SIMD multiplier on
// five 52-bit limbs driven by fused multiply-add, the interleaved block
// multipliers that run both at once, and the partial reduction helpers used
// by the Skyscraper permutation.
//
// Elements are little-endian limb arrays. Unless stated otherwise values are
// only partially reduced; the bound each function accepts and produces is
// part of its documentation.
package bn254

//go:generate go run gen_tables.go

// Modulus and Montgomery parameters for the 64-bit radix, R = 2^256.
var (
	// P is the field modulus
	// 21888242871839275222246405745257275088548364400416034343698204186575808495617.
	P = Element{0x43e1f593f0000001, 0x2833e84879b97091, 0xb85045b68181585d, 0x30644e72e131a029}

	// P2 is 2p.
	P2 = Element{0x87c3eb27e0000002, 0x5067d090f372e122, 0x70a08b6d0302b0ba, 0x60c89ce5c2634053}

	// R is 2^256 mod p, the Montgomery form of one.
	R = Element{0xac96341c4ffffffb, 0x36fc76959f60cd29, 0x666ea36f7879462e, 0x0e0a77c19a07df2f}

	// R2 is 2^512 mod p, used to enter Montgomery form.
	R2 = Element{0x1bb8e645ae216da7, 0x53fe3ab1e35c59e3, 0x8c49833d53bb8085, 0x0216d0b17f4e44a5}

	// RInv is 2^-256 mod p.
	RInv = Element{0xdc5ba0056db1194e, 0x090ef5a9e111ec87, 0xc8260de4aeb85d5d, 0x15ebf95182c5551c}

	// OutputMax is 2^256 - 2p. Every multiplier output is strictly below it,
	// so adding a value below 2p never overflows 256 bits.
	OutputMax = Element{0x783c14d81ffffffe, 0xaf982f6f0c8d1edd, 0x8f5f7492fcfd4f45, 0x9f37631a3d9cbfac}
)

// MU0 is -p^-1 mod 2^64.
const MU0 uint64 = 0xc2e1f593efffffff

// Constants of the 52-bit radix. Values in this radix carry R = 2^260.
const (
	mask52 = 1<<52 - 1

	// np0 is -p^-1 mod 2^52.
	np0 uint64 = 0x1f593efffffff

	// c1 and c2 are the FMA addends that split a 104-bit product. Under
	// truncation fma(a, b, c1) keeps the high 52 bits in its mantissa and
	// fma(a, b, c2-hi) is exact and holds the low 52 bits.
	c1 = 0x1p104
	c2 = 0x1p104 + 0x1p52

	// Exponent fields of the two product halves, as seen through
	// math.Float64bits. They are cancelled by initialAccumulator.
	hiExponent uint64 = 0x467 << 52
	loExponent uint64 = 0x433 << 52
)

var (
	// u52P is p in 52-bit limbs.
	u52P = Limbs52{0x1f593f0000001, 0x4879b9709143e, 0x181585d2833e8, 0xa029b85045b68, 0x030644e72e131}

	// u52P2 is 2p in 52-bit limbs.
	u52P2 = Limbs52{0x3eb27e0000002, 0x90f372e12287c, 0x302b0ba5067d0, 0x405370a08b6d0, 0x060c89ce5c263}

	// u52R2 is 2^520 mod p, used to enter the 52-bit Montgomery form.
	u52R2 = Limbs52{0x0b852d16da6f5, 0xc621620cddce3, 0xaf1b95343ffb6, 0xc3c15e103e7c2, 0x00281528fa122}

	// rhoK is 2^(-52k) mod p. Multiplying accumulator limb 4-k by rhoK moves
	// it up to weight 2^208 so one Montgomery step finishes the reduction.
	rho1 = Limbs52{0x82e644ee4c3d2, 0xf93893c98b1de, 0xd46fe04d0a4c7, 0x8f0aad55e2a1f, 0x005ed0447de83}
	rho2 = Limbs52{0x74eccce9a797a, 0x16ddcc30bd8a4, 0x49ecd3539499e, 0xb23a6fcc592b8, 0x00e3bd49f6ee5}
	rho3 = Limbs52{0x0e8c656567d77, 0x430d05713ae61, 0xea3ba6b167128, 0xa7dae55c5a296, 0x01b4afd513572}
	rho4 = Limbs52{0x22e2400e2f27d, 0x323b46ea19686, 0xe6c43f0df672d, 0x7824014c39e8b, 0x00c6b48afe1b8}
)

// makeInitial returns the accumulator seed that cancels the exponent fields
// of low product halves and high product halves landing in one limb.
func makeInitial(lowCount, highCount uint64) uint64 {
	v := highCount*0x467 + lowCount*0x433
	return -((v & 0xfff) << 52)
}

// initialAccumulator seeds the ten product limbs. Limb k receives the low
// halves of a_i*b_j with i+j == k and the high halves with i+j+1 == k; the
// upper limbs also absorb the halves of the four rho products and of m*p.
var initialAccumulator = [10]uint64{
	makeInitial(1, 0),
	makeInitial(2, 1),
	makeInitial(3, 2),
	makeInitial(4, 3),
	makeInitial(10, 4),
	makeInitial(9, 10),
	makeInitial(8, 9),
	makeInitial(7, 8),
	makeInitial(6, 7),
	makeInitial(0, 6),
}
