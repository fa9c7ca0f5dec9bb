package skyscraper

import (
	"fmt"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/eth2030/skyscraper/bn254"
	"github.com/eth2030/skyscraper/metrics"
)

func newRand() *rand.Rand { return rand.New(rand.NewPCG(0x5c75, 0xc4a9)) }

func randElement(rng *rand.Rand) bn254.Element {
	return bn254.Element{rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64()}
}

func TestSboxVectors(t *testing.T) {
	for _, tt := range []struct{ in, want byte }{
		{0xcd, 0xd3},
		{0x17, 0x0e},
		{0x83, 0x17},
		{0x14, 0x28},
		{0x2b, 0x46},
		{0x1e, 0xbc},
	} {
		if got := Sbox(tt.in); got != tt.want {
			t.Errorf("Sbox(%#02x) = %#02x, want %#02x", tt.in, got, tt.want)
		}
	}
}

func TestSboxIsPermutation(t *testing.T) {
	var seen [256]bool
	for v := 0; v < 256; v++ {
		out := Sbox(byte(v))
		require.False(t, seen[out], "Sbox output %#02x repeated", out)
		seen[out] = true
	}
}

func TestSbox64MatchesSbox(t *testing.T) {
	// Every byte value in every position, with different neighbours.
	for v := 0; v < 256; v++ {
		for pos := 0; pos < 8; pos++ {
			word := uint64(0xa55a_3cc3_0ff0_9669) &^ (0xff << (8 * pos))
			word |= uint64(v) << (8 * pos)
			got := Sbox64(word)
			for b := 0; b < 8; b++ {
				want := Sbox(byte(word >> (8 * b)))
				require.Equal(t, want, byte(got>>(8*b)), "word %#x byte %d", word, b)
			}
		}
	}
	rng := newRand()
	for i := 0; i < 1000; i++ {
		v := [2]uint64{rng.Uint64(), rng.Uint64()}
		require.Equal(t, [2]uint64{Sbox64(v[0]), Sbox64(v[1])}, Sbox128(v))
	}
}

// barReference follows the byte-level definition with math/big.
func barReference(x bn254.Element) *big.Int {
	p := bn254.P.Uint256().ToBig()
	v := new(big.Int).Mod(x.Uint256().ToBig(), p)
	reduced, _ := bn254.FromBytes(leBytes(v))
	in := reduced.LEBytes()
	var out [32]byte
	for i := 0; i < 16; i++ {
		out[i] = Sbox(in[i+16])
		out[i+16] = Sbox(in[i])
	}
	be := make([]byte, 32)
	for i := range out {
		be[31-i] = out[i]
	}
	r := new(big.Int).SetBytes(be)
	return r.Mod(r, p)
}

func leBytes(v *big.Int) []byte {
	be := v.FillBytes(make([]byte, 32))
	for i, j := 0, 31; i < j; i, j = i+1, j-1 {
		be[i], be[j] = be[j], be[i]
	}
	return be
}

func TestBarMatchesReference(t *testing.T) {
	rng := newRand()
	pm1 := bn254.P
	pm1[0]--
	inputs := []bn254.Element{{}, {1}, pm1, bn254.P}
	for i := 0; i < 2000; i++ {
		x := bn254.ReducePartial(randElement(rng))
		inputs = append(inputs, x)
	}
	for _, x := range inputs {
		got := Bar(x)
		require.True(t, got.Less(bn254.P2), "Bar(%v) = %v not below 2p", x, got)
		require.Zero(t, barReference(x).Cmp(bn254.Reduce(got).Uint256().ToBig()), "Bar(%v)", x)
	}
}

var (
	zeroL = bn254.MustFromDecimal("5793276905781313965269111743763131906666794041798623267477617572701829069290")
	zeroR = bn254.MustFromDecimal("12296274483727574983376829575121280934973829438414198530604912453551798647077")

	randomInL = bn254.MustFromDecimal("50417215636675310123686652273432694184389644587803328798109154235492038730484")
	randomInR = bn254.MustFromDecimal("14620920779025509970947930308416120371903474543120179490887326852503500806990")
	randomL   = bn254.MustFromDecimal("8412949970293910117511617126618515787729842528183672400383899220234743146062")
	randomR   = bn254.MustFromDecimal("11868175801025513844525564200589229804433722826344843184417708742749423276015")
	randomH   = bn254.MustFromDecimal("15053679863290669796705457909536659795022758315154932511096645082575164885312")
)

func TestPermuteVectors(t *testing.T) {
	l, r := Permute(bn254.Element{}, bn254.Element{})
	require.Equal(t, zeroL, l)
	require.Equal(t, zeroR, r)

	// The input is above p; Permute works modulo p.
	l, r = Permute(randomInL, randomInR)
	require.Equal(t, randomL, l)
	require.Equal(t, randomR, r)
	l2, r2 := Permute(bn254.Reduce(randomInL), randomInR)
	require.Equal(t, l, l2)
	require.Equal(t, r, r2)
}

func TestCompressVectors(t *testing.T) {
	require.Equal(t, zeroL, Compress(bn254.Element{}, bn254.Element{}))
	require.Equal(t, randomH, Compress(randomInL, randomInR))
	require.Equal(t, randomH, Compress(bn254.Reduce(randomInL), randomInR))

	// Compress is Permute plus the feed-forward of l.
	l, _ := Permute(randomInL, randomInR)
	want := bn254.Reduce(bn254.Add(l, bn254.Reduce(randomInL)))
	require.Equal(t, want, randomH)
}

func TestCompressFr(t *testing.T) {
	rng := newRand()
	for i := 0; i < 20; i++ {
		var l, r fr.Element
		l.SetUint64(rng.Uint64())
		r.SetUint64(rng.Uint64())
		got := CompressFr(&l, &r)
		require.Equal(t, Compress(bn254.Element(l), bn254.Element(r)), bn254.Element(got))
	}
}

func TestCompressOutputReduced(t *testing.T) {
	rng := newRand()
	for i := 0; i < 200; i++ {
		h := Compress(randElement(rng), randElement(rng))
		require.True(t, bn254.IsReduced(h))
	}
}

func messages(rng *rand.Rand, n int) ([]byte, []bn254.Element) {
	msgs := make([]byte, n*MessageSize)
	want := make([]bn254.Element, n)
	for i := 0; i < n; i++ {
		l, r := randElement(rng), randElement(rng)
		if i == 0 {
			l, r = bn254.Element{}, bn254.Element{}
		}
		l.PutBytes(msgs[i*MessageSize:])
		r.PutBytes(msgs[i*MessageSize+bn254.Bytes:])
		want[i] = Compress(l, r)
	}
	return msgs, want
}

func TestCompressManyMatchesCompress(t *testing.T) {
	rng := newRand()
	for _, width := range []int{1, 3, 4} {
		cfg := DefaultConfig()
		cfg.BatchWidth = width
		cfg.SolveChunk = 12
		h, err := NewHasher(cfg)
		require.NoError(t, err)

		// Counts exercise full blocks and every tail length.
		for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 8, 13} {
			msgs, want := messages(rng, n)
			hashes := make([]byte, n*HashSize)
			require.NoError(t, h.CompressMany(msgs, hashes))
			for i := 0; i < n; i++ {
				got, err := bn254.FromBytes(hashes[i*HashSize:])
				require.NoError(t, err)
				require.Equal(t, want[i], got, "width %d count %d index %d", width, n, i)
			}
		}
	}
}

func TestCompressManyDeterministic(t *testing.T) {
	msgs, _ := messages(newRand(), 9)
	a := make([]byte, 9*HashSize)
	b := make([]byte, 9*HashSize)
	require.NoError(t, CompressMany(msgs, a))
	require.NoError(t, CompressMany(msgs, b))
	require.Equal(t, a, b)
}

func TestCompressManyBufferShape(t *testing.T) {
	tests := []struct {
		name       string
		msgs, outs int
	}{
		{"partial message", 65, 32},
		{"partial hash", 64, 33},
		{"too few hashes", 128, 32},
		{"too many hashes", 64, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]byte, tt.outs)
			err := CompressMany(make([]byte, tt.msgs), out)
			require.ErrorIs(t, err, ErrInvalidBufferShape)
			require.Equal(t, make([]byte, tt.outs), out)
		})
	}
}

func TestCompressManyMetrics(t *testing.T) {
	before := metrics.Compressions.Value()
	batches := metrics.CompressBatches.Value()
	msgs, _ := messages(newRand(), 5)
	require.NoError(t, CompressMany(msgs, make([]byte, 5*HashSize)))
	require.Equal(t, before+5, metrics.Compressions.Value())
	require.Equal(t, batches+2, metrics.CompressBatches.Value())

	// Only CompressMany is counted.
	Compress(bn254.Element{1}, bn254.Element{2})
	Permute(bn254.Element{1}, bn254.Element{2})
	require.Equal(t, before+5, metrics.Compressions.Value())
	require.Equal(t, batches+2, metrics.CompressBatches.Value())
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	for _, mutate := range []func(*Config){
		func(c *Config) { c.BatchWidth = 2 },
		func(c *Config) { c.BatchWidth = 0 },
		func(c *Config) { c.Workers = 0 },
		func(c *Config) { c.SolveChunk = 0 },
		func(c *Config) { c.SolveChunk = 10 },
	} {
		cfg := DefaultConfig()
		mutate(cfg)
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		_, err := NewHasher(cfg)
		require.ErrorIs(t, err, ErrInvalidConfig)
	}

	h, err := NewHasher(nil)
	require.NoError(t, err)
	require.Equal(t, *DefaultConfig(), h.Config())
}

func BenchmarkCompress(b *testing.B) {
	rng := newRand()
	l, r := randElement(rng), randElement(rng)
	for i := 0; i < b.N; i++ {
		l = Compress(l, r)
	}
}

func BenchmarkCompressMany(b *testing.B) {
	for _, width := range []int{1, 3, 4} {
		b.Run(fmt.Sprintf("width%d", width), func(b *testing.B) {
			cfg := DefaultConfig()
			cfg.BatchWidth = width
			h, err := NewHasher(cfg)
			require.NoError(b, err)
			msgs, _ := messages(newRand(), 120)
			hashes := make([]byte, 120*HashSize)
			b.SetBytes(int64(len(msgs)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := h.CompressMany(msgs, hashes); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
