package bn254

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eth2030/skyscraper/rounding"
)

// backends runs fn once per available fp product implementation.
func backends(t *testing.T, fn func(t *testing.T, g *Guard)) {
	saved := useFMA
	defer func() { useFMA = saved }()

	for _, fma := range []bool{false, true} {
		name := "emulated"
		if fma {
			name = "fma"
		}
		t.Run(name, func(t *testing.T) {
			if fma && !(rounding.Supported() && hasHardwareFMA()) {
				t.Skip("hardware FMA with rounding control not available")
			}
			useFMA = fma
			g := rounding.Acquire[rounding.TowardZero]()
			defer g.Release()
			fn(t, g)
		})
	}
}

func TestProductSplit(t *testing.T) {
	rng := newRand()
	backends(t, func(t *testing.T, g *Guard) {
		inputs := [][2]uint64{{0, 0}, {1, 1}, {mask52, mask52}, {mask52, 1}, {1 << 51, 2}}
		for i := 0; i < 1000; i++ {
			inputs = append(inputs, [2]uint64{rng.Uint64() & mask52, rng.Uint64() & mask52})
		}
		for _, in := range inputs {
			hi, lo := product(in[0], in[1])
			require.Equal(t, hiExponent, hi&^mask52, "high exponent for %x*%x", in[0], in[1])
			require.Equal(t, loExponent, lo&^mask52, "low exponent for %x*%x", in[0], in[1])

			want := new(big.Int).Mul(new(big.Int).SetUint64(in[0]), new(big.Int).SetUint64(in[1]))
			got := new(big.Int).SetUint64(hi & mask52)
			got.Lsh(got, 52)
			got.Add(got, new(big.Int).SetUint64(lo&mask52))
			requireBig(t, want, got, "%x*%x", in[0], in[1])
		}
	})
}

func TestSimdMatchesScalar(t *testing.T) {
	backends(t, func(t *testing.T, g *Guard) {
		rng := newRand()
		edge := []Element{{}, {1}, R, twoPMinusOne(t), Modulus[1]}
		for i := 0; i < 2000; i++ {
			a := [2]Element{randBelow2p(rng), randCanonical(rng)}
			b := [2]Element{randCanonical(rng), randBelow2p(rng)}
			if i < len(edge)*len(edge) {
				a[0], b[0] = edge[i/len(edge)], edge[i%len(edge)]
			}
			c := SimdMul(g, a, b)
			for lane := range c {
				require.True(t, c[lane].Less(OutputMax), "lane %d output %v exceeds bound", lane, c[lane])
				require.Equal(t, Reduce1(Mul(a[lane], b[lane])), Reduce(c[lane]),
					"lane %d: a=%v b=%v", lane, a[lane], b[lane])
			}

			sq := SimdSqr(g, a)
			for lane := range sq {
				require.Equal(t, Reduce1(Sqr(a[lane])), Reduce(sq[lane]))
			}
		}
	})
}

func TestSimdMul52Montgomery(t *testing.T) {
	backends(t, func(t *testing.T, g *Guard) {
		rng := newRand()
		for i := 0; i < 300; i++ {
			a := [2]Element{randCanonical(rng), randCanonical(rng)}
			b := [2]Element{randCanonical(rng), randCanonical(rng)}
			ma, mb := ToMontgomery52(g, a), ToMontgomery52(g, b)
			for lane := range ma {
				for _, l := range ma[lane] {
					require.Less(t, l, uint64(1)<<52)
				}
			}
			got := FromMontgomery52(g, SimdMul52(g, ma, mb))
			sq := FromMontgomery52(g, SimdSqr52(g, ma))
			for lane := range got {
				want := new(big.Int).Mul(toBig(a[lane]), toBig(b[lane]))
				requireBig(t, want.Mod(want, bigP), toBig(got[lane]))
				want.Mul(toBig(a[lane]), toBig(a[lane]))
				requireBig(t, want.Mod(want, bigP), toBig(sq[lane]))
			}
			require.Equal(t, a, FromMontgomery52(g, ma))
		}
	})
}

func TestInterleavedMatchesSequential(t *testing.T) {
	backends(t, func(t *testing.T, g *Guard) {
		rng := newRand()
		for i := 0; i < 500; i++ {
			a0, b0 := randBelow2p(rng), randBelow2p(rng)
			a1, b1 := randBelow2p(rng), randBelow2p(rng)
			av := [2]Element{randBelow2p(rng), randBelow2p(rng)}
			bv := [2]Element{randBelow2p(rng), randBelow2p(rng)}

			s, v := Interleaved3(g, a0, b0, av, bv)
			require.Equal(t, Mul(a0, b0), s)
			require.Equal(t, SimdMul(g, av, bv), v)

			s0, s1, v := Interleaved4(g, a0, b0, a1, b1, av, bv)
			require.Equal(t, Mul(a0, b0), s0)
			require.Equal(t, Mul(a1, b1), s1)
			require.Equal(t, SimdMul(g, av, bv), v)

			s, v = SquareInterleaved3(g, a0, av)
			require.Equal(t, Sqr(a0), s)
			require.Equal(t, SimdSqr(g, av), v)

			s0, s1, v = SquareInterleaved4(g, a0, a1, av)
			require.Equal(t, Sqr(a0), s0)
			require.Equal(t, Sqr(a1), s1)
			require.Equal(t, SimdSqr(g, av), v)

			cs, cv0, cv1 := BlockMul(g, a0, b0, av[0], bv[0], av[1], bv[1])
			require.Equal(t, Mul(a0, b0), cs)
			require.Equal(t, Reduce1(Mul(av[0], bv[0])), Reduce(cv0))
			require.Equal(t, Reduce1(Mul(av[1], bv[1])), Reduce(cv1))

			cs, cv0, cv1 = BlockSqr(g, a0, av[0], av[1])
			require.Equal(t, Sqr(a0), cs)
			require.Equal(t, Reduce1(Sqr(av[0])), Reduce(cv0))
			require.Equal(t, Reduce1(Sqr(av[1])), Reduce(cv1))
		}
	})
}

func TestBackendName(t *testing.T) {
	saved := useFMA
	defer func() { useFMA = saved }()
	useFMA = false
	require.Equal(t, "emulated", Backend())
	useFMA = true
	require.Equal(t, "fma", Backend())
}

func BenchmarkSimdMul(b *testing.B) {
	rng := newRand()
	x := [2]Element{randCanonical(rng), randCanonical(rng)}
	y := [2]Element{randCanonical(rng), randCanonical(rng)}
	rounding.Do(func(g *Guard) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			x = SimdMul(g, x, y)
			x[0], x[1] = Reduce(x[0]), Reduce(x[1])
		}
	})
}

func BenchmarkInterleaved3(b *testing.B) {
	rng := newRand()
	s, t := randCanonical(rng), randCanonical(rng)
	v := [2]Element{randCanonical(rng), randCanonical(rng)}
	w := [2]Element{randCanonical(rng), randCanonical(rng)}
	rounding.Do(func(g *Guard) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s, v = Interleaved3(g, s, t, v, w)
			v[0], v[1] = Reduce(v[0]), Reduce(v[1])
		}
	})
}

func BenchmarkInterleaved4(b *testing.B) {
	rng := newRand()
	s0, s1, t := randCanonical(rng), randCanonical(rng), randCanonical(rng)
	v := [2]Element{randCanonical(rng), randCanonical(rng)}
	w := [2]Element{randCanonical(rng), randCanonical(rng)}
	rounding.Do(func(g *Guard) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s0, s1, v = Interleaved4(g, s0, t, s1, t, v, w)
			v[0], v[1] = Reduce(v[0]), Reduce(v[1])
		}
	})
}
