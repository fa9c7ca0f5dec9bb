package cm31

import (
	"fmt"
	"math/bits"
)

// MaxLogOrder is the 2-adicity of F_q[i]^*: q^2 - 1 = 2^32 · (odd).
const MaxLogOrder = 32

// rootsOfUnity[k] generates the subgroup of order 2^k. Each entry is the
// square of the next, so rootsOfUnity[2] = i and rootsOfUnity[3] = W8.
var rootsOfUnity = [MaxLogOrder + 1]Element{
	{0x00000001, 0x00000000}, // 2^0
	{0x7ffffffe, 0x00000000}, // 2^1
	{0x00000000, 0x00000001}, // 2^2
	{0x00008000, 0x00008000}, // 2^3
	{0x233668e2, 0x45abdd8a}, // 2^4
	{0x39aea997, 0x49fb5248}, // 2^5
	{0x1b389fb1, 0x5d739c92}, // 2^6
	{0x0fa0b7cb, 0x67a71bb6}, // 2^7
	{0x743755fa, 0x405c70e7}, // 2^8
	{0x0f1364f6, 0x2f5096a6}, // 2^9
	{0x0e041bdf, 0x42072073}, // 2^10
	{0x4baa74ab, 0x23bfc41e}, // 2^11
	{0x64f39a57, 0x3a761af8}, // 2^12
	{0x30dd11bc, 0x626b58b0}, // 2^13
	{0x02ebb8b0, 0x7baec7fa}, // 2^14
	{0x44906b9c, 0x7771568a}, // 2^15
	{0x41baa26b, 0x74b9f470}, // 2^16
	{0x66bc7267, 0x19b57834}, // 2^17
	{0x590e74dc, 0x70536442}, // 2^18
	{0x2e905992, 0x0aa02d82}, // 2^19
	{0x064f7261, 0x6758b1d4}, // 2^20
	{0x2288bfef, 0x6cc9f13a}, // 2^21
	{0x099eeada, 0x167319b9}, // 2^22
	{0x77439b53, 0x491cc5c3}, // 2^23
	{0x4976e4b1, 0x50977d86}, // 2^24
	{0x735e8fea, 0x03a3a3f2}, // 2^25
	{0x6ca1e4c6, 0x184b72c3}, // 2^26
	{0x71ebe02d, 0x5f1ec3b9}, // 2^27
	{0x5c957468, 0x67b8f4b7}, // 2^28
	{0x46360d8c, 0x4bc62160}, // 2^29
	{0x78da7000, 0x1ae3205c}, // 2^30
	{0x2dde04a6, 0x6d5d65c3}, // 2^31
	{0x4f6b94c8, 0x22a34c49}, // 2^32
}

// RootOfUnity returns the primitive n-th root of unity from the fixed chain.
// n must be a power of two no larger than 2^32.
func RootOfUnity(n uint64) (Element, error) {
	if n == 0 || n&(n-1) != 0 || n > 1<<MaxLogOrder {
		return Element{}, fmt.Errorf("%w: order %d", ErrNoSuchRootOfUnity, n)
	}
	return rootsOfUnity[bits.TrailingZeros64(n)], nil
}

// RootsOfUnity returns the generators of orders 2^0 through 2^logN.
func RootsOfUnity(logN int) ([]Element, error) {
	if logN < 0 || logN > MaxLogOrder {
		return nil, fmt.Errorf("%w: order 2^%d", ErrNoSuchRootOfUnity, logN)
	}
	out := make([]Element, logN+1)
	copy(out, rootsOfUnity[:logN+1])
	return out, nil
}

// RootOfUnity4 returns the primitive 4th roots i (index 0) and -i (index 1).
func RootOfUnity4(i int) (Element, error) {
	switch i {
	case 0:
		return W4, nil
	case 1:
		return W4.Neg().Reduce(), nil
	}
	return Element{}, fmt.Errorf("%w: 4th root index %d", ErrNoSuchRootOfUnity, i)
}

// RootOfUnity8 returns the primitive 8th roots (±2^15, ±2^15), indexed by
// the signs of the real and imaginary parts: +/+, +/-, -/+, -/-.
func RootOfUnity8(i int) (Element, error) {
	if i < 0 || i > 3 {
		return Element{}, fmt.Errorf("%w: 8th root index %d", ErrNoSuchRootOfUnity, i)
	}
	re, im := W8.Re, W8.Im
	if i&2 != 0 {
		re = re.Neg()
	}
	if i&1 != 0 {
		im = im.Neg()
	}
	return Element{re, im}.Reduce(), nil
}
