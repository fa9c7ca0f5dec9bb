package ntt

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eth2030/skyscraper/cm31"
	"github.com/eth2030/skyscraper/metrics"
)

func newRand() *rand.Rand { return rand.New(rand.NewPCG(0x7a11, 0x8e03)) }

// randPoly returns lazily reduced coefficients, any value below 2^32.
func randPoly(rng *rand.Rand, n int) []cm31.Element {
	f := make([]cm31.Element, n)
	for i := range f {
		f[i] = cm31.Element{Re: cm31.Real(rng.Uint32()), Im: cm31.Real(rng.Uint32())}
	}
	return f
}

func requireCanonical(t *testing.T, f []cm31.Element) {
	t.Helper()
	for i, v := range f {
		require.Equal(t, v.Reduce(), v, "index %d not canonical", i)
	}
}

func requireSame(t *testing.T, want, got []cm31.Element, name string) {
	t.Helper()
	require.Len(t, got, len(want), name)
	for i := range want {
		require.True(t, want[i].Equal(got[i]), "%s: index %d: want %v got %v", name, i, want[i], got[i])
	}
}

func TestBlock8Impulse(t *testing.T) {
	ones := [7]cm31.Element{cm31.One, cm31.One, cm31.One, cm31.One, cm31.One, cm31.One, cm31.One}

	impulse := [8]cm31.Element{cm31.One}
	for i, v := range Block8(&impulse, &ones) {
		require.Equal(t, cm31.One, v, "output %d", i)
	}

	var flat [8]cm31.Element
	for i := range flat {
		flat[i] = cm31.One
	}
	out := Block8(&flat, &ones)
	require.Equal(t, cm31.New(8, 0), out[0])
	for i := 1; i < 8; i++ {
		require.True(t, out[i].IsZero(), "output %d", i)
	}
}

func TestBlock8MatchesNaive(t *testing.T) {
	rng := newRand()
	for i := 0; i < 100; i++ {
		f := randPoly(rng, 8)
		wt := randPoly(rng, 1)[0]
		tw := powers7(wt)

		in := [8]cm31.Element(f)
		got := Block8(&in, &tw)

		scaled := make([]cm31.Element, 8)
		scaled[0] = f[0]
		for j := 1; j < 8; j++ {
			scaled[j] = f[j].Mul(tw[j-1])
		}
		want, err := Naive(scaled)
		require.NoError(t, err)
		requireSame(t, want, got[:], "block")
		requireCanonical(t, got[:])
	}
}

func TestBlock4MatchesNaive(t *testing.T) {
	rng := newRand()
	for i := 0; i < 100; i++ {
		f := randPoly(rng, 4)
		in := [4]cm31.Element(f)
		got := Block4(&in)
		want, err := Naive(f)
		require.NoError(t, err)
		requireSame(t, want, got[:], "block")
		requireCanonical(t, got[:])
	}
}

func TestRadix8MatchesNaive(t *testing.T) {
	rng := newRand()
	for _, n := range []int{8, 64, 512} {
		f := randPoly(rng, n)
		w, err := cm31.RootOfUnity(uint64(n))
		require.NoError(t, err)
		want, err := Naive(f)
		require.NoError(t, err)

		got, err := Radix8(f, w)
		require.NoError(t, err)
		requireSame(t, want, got, fmt.Sprintf("size %d", n))
		requireCanonical(t, got)
	}
}

func TestRadix8InPlaceVariants(t *testing.T) {
	rng := newRand()
	for _, n := range []int{8, 64, 4096} {
		f := randPoly(rng, n)
		w, err := cm31.RootOfUnity(uint64(n))
		require.NoError(t, err)
		want, err := Radix8(f, w)
		require.NoError(t, err)

		g := append([]cm31.Element(nil), f...)
		require.NoError(t, Radix8InPlace(g, w))
		require.Equal(t, want, g, "size %d", n)

		pre := StageTwiddles(n, w)
		require.Len(t, pre, n-1)
		h := append([]cm31.Element(nil), f...)
		require.NoError(t, Radix8InPlacePrecomp(h, pre))
		require.Equal(t, want, h, "size %d", n)
	}
}

func TestStageTwiddlesLeafTable(t *testing.T) {
	tw, err := PrecomputeTwiddles(8 * LeafSize)
	require.NoError(t, err)
	require.Equal(t, Radix8Only, tw.Variant)
	require.Len(t, tw.Small, LeafSize-1)
	require.Len(t, tw.Full, 7*LeafSize)
}

func TestLevelOffset(t *testing.T) {
	w, _ := cm31.RootOfUnity(4096)
	full := GenPrecompFull(4096, w, 8)
	require.Len(t, full, 7*(512+64+8))
	require.Equal(t, 0, levelOffset(4096, 0))
	require.Equal(t, 7*512, levelOffset(4096, 1))
	require.Equal(t, 7*(512+64), levelOffset(4096, 2))

	// Level 1 starts with the powers of w^8.
	w8 := w.Pow(8)
	require.True(t, full[levelOffset(4096, 1)+7].Equal(w8))
	require.Empty(t, GenPrecompFull(4096, w, 4096))
}

func TestHybridMatchesRadix8(t *testing.T) {
	rng := newRand()
	for _, leaf := range []int{8, 64, 512, LeafSize} {
		for _, n := range []int{8, 512, 4096, 32768} {
			tw, err := precompute(n, leaf)
			require.NoError(t, err)
			f := randPoly(rng, n)
			w, _ := cm31.RootOfUnity(uint64(n))
			want, err := Radix8(f, w)
			require.NoError(t, err)

			got, err := HybridP(f, tw)
			require.NoError(t, err)
			require.Equal(t, want, got, "leaf %d size %d", leaf, n)
		}
	}
}

func TestStrideHybridsMatchNaive(t *testing.T) {
	rng := newRand()
	for _, leaf := range []int{8, 64} {
		for _, n := range []int{2, 16, 128, 1024} {
			tw, err := precompute(n, leaf)
			require.NoError(t, err)
			require.Equal(t, Stride2, tw.Variant)
			require.Len(t, tw.Stride2, n/2)
			f := randPoly(rng, n)
			want, err := Naive(f)
			require.NoError(t, err)
			got, err := S2HybridP(f, tw)
			require.NoError(t, err)
			requireSame(t, want, got, fmt.Sprintf("stride2 leaf %d size %d", leaf, n))
			requireCanonical(t, got)
		}
		for _, n := range []int{4, 32, 256, 2048} {
			tw, err := precompute(n, leaf)
			require.NoError(t, err)
			require.Equal(t, Stride4, tw.Variant)
			require.Len(t, tw.Stride4, n/4)
			f := randPoly(rng, n)
			want, err := Naive(f)
			require.NoError(t, err)
			got, err := S4HybridP(f, tw)
			require.NoError(t, err)
			requireSame(t, want, got, fmt.Sprintf("stride4 leaf %d size %d", leaf, n))
			requireCanonical(t, got)
		}
	}
}

func TestTransformAllSizes(t *testing.T) {
	rng := newRand()
	for logN := 0; logN <= 10; logN++ {
		n := 1 << logN
		f := randPoly(rng, n)
		want, err := Naive(f)
		require.NoError(t, err)

		got, err := Transform(f, nil)
		require.NoError(t, err)
		requireSame(t, want, got, fmt.Sprintf("size %d", n))
		requireCanonical(t, got)

		back, err := Inverse(got, nil)
		require.NoError(t, err)
		requireSame(t, f, back, fmt.Sprintf("inverse size %d", n))

		naiveBack, err := InverseNaive(want)
		require.NoError(t, err)
		requireSame(t, f, naiveBack, fmt.Sprintf("naive inverse size %d", n))
	}
}

func TestStrideTables(t *testing.T) {
	w, _ := cm31.RootOfUnity(64)
	s2, err := PrecomputeTwiddlesStride2(64)
	require.NoError(t, err)
	s4, err := PrecomputeTwiddlesStride4(64)
	require.NoError(t, err)
	for i := range s4 {
		wi := w.Pow(uint64(i))
		require.True(t, s2[i].Equal(wi))
		require.True(t, s4[i][0].Equal(wi))
		require.True(t, s4[i][1].Equal(wi.Pow(2)))
		require.True(t, s4[i][2].Equal(wi.Pow(3)))
	}

	_, err = PrecomputeTwiddlesStride2(1)
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = PrecomputeTwiddlesStride4(2)
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = PrecomputeTwiddlesStride4(12)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestHybridIntoReusesScratch(t *testing.T) {
	rng := newRand()
	scratch := make([]cm31.Element, 1<<14)
	tests := []struct {
		n     int
		alloc func([]cm31.Element, *Twiddles) ([]cm31.Element, error)
		into  func(f, scratch []cm31.Element, tw *Twiddles) error
	}{
		{1 << 12, HybridP, HybridPInto},
		{1 << 13, S2HybridP, S2HybridPInto},
		{1 << 14, S4HybridP, S4HybridPInto},
	}
	for _, tt := range tests {
		// Leaf 8 gives several outer levels on top of the leaves.
		tw, err := precompute(tt.n, 8)
		require.NoError(t, err)
		f := randPoly(rng, tt.n)
		want, err := tt.alloc(f, tw)
		require.NoError(t, err)

		got := slices.Clone(f)
		require.NoError(t, tt.into(got, scratch, tw))
		require.Equal(t, want, got, "size %d", tt.n)

		err = tt.into(got, scratch[:tt.n-1], tw)
		require.ErrorIs(t, err, ErrInvalidLength, "size %d", tt.n)
	}
}

func TestHybridIntoAllocationFree(t *testing.T) {
	tw, err := precompute(4096, 8)
	require.NoError(t, err)
	f := randPoly(newRand(), 4096)
	scratch := make([]cm31.Element, len(f))
	allocs := testing.AllocsPerRun(5, func() {
		if err := HybridPInto(f, scratch, tw); err != nil {
			t.Fatal(err)
		}
	})
	require.Zero(t, allocs)
}

func TestInvalidInputs(t *testing.T) {
	w8, _ := cm31.RootOfUnity(8)
	_, err := Radix8(make([]cm31.Element, 16), w8)
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = Radix8(make([]cm31.Element, 1), cm31.One)
	require.ErrorIs(t, err, ErrInvalidLength)
	require.ErrorIs(t, Radix8InPlace(make([]cm31.Element, 0), w8), ErrInvalidLength)
	require.ErrorIs(t, Radix8InPlacePrecomp(make([]cm31.Element, 8), make([]cm31.Element, 6)), ErrInvalidLength)

	for _, n := range []int{0, 3, 24, 1000} {
		_, err := PrecomputeTwiddles(n)
		require.ErrorIs(t, err, ErrInvalidLength, "size %d", n)
		_, err = Naive(make([]cm31.Element, n))
		require.ErrorIs(t, err, ErrInvalidLength, "size %d", n)
	}
	_, err = PrecomputeTwiddles(1 << 33)
	require.ErrorIs(t, err, ErrNoSuchRootOfUnity)

	tw64, err := PrecomputeTwiddles(64)
	require.NoError(t, err)
	_, err = HybridP(make([]cm31.Element, 8), tw64)
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = S2HybridP(make([]cm31.Element, 64), tw64)
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = S4HybridP(make([]cm31.Element, 64), nil)
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = Inverse(make([]cm31.Element, 8), tw64)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
	for _, mutate := range []func(*Config){
		func(c *Config) { c.Workers = 0 },
		func(c *Config) { c.LeafSize = 1 },
		func(c *Config) { c.LeafSize = 16 },
		func(c *Config) { c.ParallelMinSize = c.LeafSize },
	} {
		cfg := DefaultConfig()
		mutate(cfg)
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		_, err := NewEngine(cfg)
		require.ErrorIs(t, err, ErrInvalidConfig)
	}

	e, err := NewEngine(nil)
	require.NoError(t, err)
	require.Equal(t, *DefaultConfig(), e.Config())
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(&Config{Workers: 3, LeafSize: 8, ParallelMinSize: 64})
	require.NoError(t, err)
	return e
}

func TestEngineMatchesSequential(t *testing.T) {
	e := testEngine(t)
	rng := newRand()
	for _, n := range []int{4096, 2 * 4096, 4 * 4096} {
		f := randPoly(rng, n)
		tw, err := e.PrecomputeTwiddles(n)
		require.NoError(t, err)
		require.Equal(t, 8, tw.Leaf)

		tasks := metrics.NTTParallelTasks.Value()
		got, err := e.Transform(context.Background(), f, tw)
		require.NoError(t, err)
		require.Greater(t, metrics.NTTParallelTasks.Value(), tasks)

		want, err := Transform(f, nil)
		require.NoError(t, err)
		require.Equal(t, want, got, "size %d", n)

		back, err := e.Inverse(context.Background(), got, nil)
		require.NoError(t, err)
		requireSame(t, f, back, fmt.Sprintf("size %d", n))
	}
}

func TestEngineConcurrentUse(t *testing.T) {
	e := testEngine(t)
	tw, err := e.PrecomputeTwiddles(512)
	require.NoError(t, err)
	f := randPoly(newRand(), 512)
	want, err := Transform(f, nil)
	require.NoError(t, err)

	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			got, err := e.Transform(context.Background(), f, tw)
			if err == nil && !equalSlices(want, got) {
				err = fmt.Errorf("concurrent transform mismatch")
			}
			errs <- err
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-errs)
	}
}

func equalSlices(a, b []cm31.Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEngineCancelled(t *testing.T) {
	e := testEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Transform(ctx, make([]cm31.Element, 4096), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestTransformMetrics(t *testing.T) {
	transforms := metrics.NTTTransforms.Value()
	builds := metrics.NTTTwiddleBuilds.Value()
	_, err := Transform(make([]cm31.Element, 64), nil)
	require.NoError(t, err)
	require.Equal(t, transforms+1, metrics.NTTTransforms.Value())
	require.Equal(t, builds+1, metrics.NTTTwiddleBuilds.Value())
}

func BenchmarkTransform(b *testing.B) {
	for _, n := range []int{1 << 12, 1 << 15, 1 << 18} {
		b.Run(fmt.Sprintf("size%d", n), func(b *testing.B) {
			f := randPoly(newRand(), n)
			tw, err := PrecomputeTwiddles(n)
			require.NoError(b, err)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Transform(f, tw); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEngine(b *testing.B) {
	const n = 1 << 21
	e, err := NewEngine(nil)
	require.NoError(b, err)
	f := randPoly(newRand(), n)
	tw, err := e.PrecomputeTwiddles(n)
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Transform(context.Background(), f, tw); err != nil {
			b.Fatal(err)
		}
	}
}
