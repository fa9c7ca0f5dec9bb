package ntt

import (
	"fmt"
	"math/bits"

	"github.com/eth2030/skyscraper/cm31"
	"github.com/eth2030/skyscraper/log"
	"github.com/eth2030/skyscraper/metrics"
)

// LeafSize is the default size below which the hybrid transforms run in
// place on a cache-resident block.
const LeafSize = 32768

// Variant selects the outer combine of a transform.
type Variant int

const (
	// Radix8Only handles n = 8^k.
	Radix8Only Variant = iota
	// Stride2 handles n = 2·8^k: two radix-8 halves and a length-2 combine.
	Stride2
	// Stride4 handles n = 4·8^k: four radix-8 quarters and a radix-4 combine.
	Stride4
)

func (v Variant) String() string {
	switch v {
	case Radix8Only:
		return "radix8"
	case Stride2:
		return "stride2"
	case Stride4:
		return "stride4"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// classify returns the variant for n and the size of its radix-8 parts.
func classify(n int) (Variant, int, error) {
	if n <= 0 || n&(n-1) != 0 {
		return 0, 0, fmt.Errorf("%w: %d is not a power of two", ErrInvalidLength, n)
	}
	if uint64(n) > 1<<cm31.MaxLogOrder {
		return 0, 0, fmt.Errorf("%w: %d", ErrNoSuchRootOfUnity, n)
	}
	switch bits.TrailingZeros(uint(n)) % 3 {
	case 1:
		return Stride2, n / 2, nil
	case 2:
		return Stride4, n / 4, nil
	}
	return Radix8Only, n, nil
}

// Twiddles is the precomputed table bundle for one transform size.
// A bundle is read-only once built and may be shared between goroutines.
type Twiddles struct {
	N       int
	Variant Variant
	// Leaf is the size of the in-place blocks; Small holds their stage
	// twiddles (StageTwiddles of min(Leaf, part size)).
	Leaf  int
	Small []cm31.Element
	// Full holds the outer radix-8 levels above Leaf (GenPrecompFull).
	Full []cm31.Element
	// Stride2 and Stride4 hold the outer combine twiddles of those variants.
	Stride2 []cm31.Element
	Stride4 [][3]cm31.Element
}

// part returns the size of the radix-8 sub-transforms.
func (t *Twiddles) part() int {
	switch t.Variant {
	case Stride2:
		return t.N / 2
	case Stride4:
		return t.N / 4
	}
	return t.N
}

// PrecomputeTwiddles builds the bundle for size n with the default leaf size.
func PrecomputeTwiddles(n int) (*Twiddles, error) {
	return precompute(n, LeafSize)
}

func precompute(n, leaf int) (*Twiddles, error) {
	variant, part, err := classify(n)
	if err != nil {
		return nil, err
	}
	w, err := rootOf(part)
	if err != nil {
		return nil, err
	}
	small := min(part, leaf)
	ws, err := rootOf(small)
	if err != nil {
		return nil, err
	}
	t := &Twiddles{
		N:       n,
		Variant: variant,
		Leaf:    leaf,
		Small:   StageTwiddles(small, ws),
		Full:    GenPrecompFull(part, w, leaf),
	}
	switch variant {
	case Stride2:
		if t.Stride2, err = PrecomputeTwiddlesStride2(n); err != nil {
			return nil, err
		}
	case Stride4:
		if t.Stride4, err = PrecomputeTwiddlesStride4(n); err != nil {
			return nil, err
		}
	}
	metrics.NTTTwiddleBuilds.Inc()
	log.Default().Module("ntt").Debug("precomputed twiddles",
		"size", n, "variant", variant.String(), "leaf", leaf,
		"small", len(t.Small), "full", len(t.Full),
		"stride2", len(t.Stride2), "stride4", len(t.Stride4))
	return t, nil
}

// GenPrecompFull returns the twiddles of the radix-8 levels of a size-n
// transform under w whose size exceeds block. Level d has size n/8^d, root
// w^(8^d) and 7·n/8^(d+1) entries laid out like one StageTwiddles stage.
func GenPrecompFull(n int, w cm31.Element, block int) []cm31.Element {
	var tw []cm31.Element
	for s := n; s > block && s >= 8; s /= 8 {
		base := cm31.One
		for k := 0; k < s/8; k++ {
			for _, v := range powers7(base) {
				tw = append(tw, v.Reduce())
			}
			base = base.Mul(w)
		}
		w = w.Pow(8)
	}
	return tw
}

// levelOffset is the index in a GenPrecompFull table where level depth of
// a size-n transform starts.
func levelOffset(n, depth int) int {
	off := 0
	for s := n / 8; depth > 0; depth-- {
		off += 7 * s
		s /= 8
	}
	return off
}

// PrecomputeTwiddlesStride2 returns w^i for i < n/2, w of order n.
func PrecomputeTwiddlesStride2(n int) ([]cm31.Element, error) {
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: stride-2 table for %d", ErrInvalidLength, n)
	}
	w, err := rootOf(n)
	if err != nil {
		return nil, err
	}
	out := make([]cm31.Element, n/2)
	wi := cm31.One
	for i := range out {
		out[i] = wi.Reduce()
		wi = wi.Mul(w)
	}
	return out, nil
}

// PrecomputeTwiddlesStride4 returns (w^i, w^2i, w^3i) for i < n/4, w of
// order n.
func PrecomputeTwiddlesStride4(n int) ([][3]cm31.Element, error) {
	if n < 4 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: stride-4 table for %d", ErrInvalidLength, n)
	}
	w, err := rootOf(n)
	if err != nil {
		return nil, err
	}
	out := make([][3]cm31.Element, n/4)
	wi := cm31.One
	for i := range out {
		w2 := wi.Square()
		out[i] = [3]cm31.Element{wi.Reduce(), w2.Reduce(), w2.Mul(wi).Reduce()}
		wi = wi.Mul(w)
	}
	return out, nil
}
