package ntt

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/eth2030/skyscraper/cm31"
	"github.com/eth2030/skyscraper/metrics"
)

// scratchPool backs the package-level sequential transforms.
var scratchPool sync.Pool

// getScratch returns a buffer of length n from pool.
func getScratch(pool *sync.Pool, n int) *[]cm31.Element {
	if v, ok := pool.Get().(*[]cm31.Element); ok && cap(*v) >= n {
		*v = (*v)[:n]
		return v
	}
	buf := make([]cm31.Element, n)
	return &buf
}

// runner executes transforms against one twiddle bundle. With a nil sem
// everything runs on the calling goroutine; otherwise sub-transforms of at
// least parMin fan out, and sequential subtrees below it run while holding
// a sem slot.
type runner struct {
	tw     *Twiddles
	pool   *sync.Pool
	sem    chan struct{}
	parMin int
}

func sequential(tw *Twiddles) runner {
	return runner{tw: tw, pool: &scratchPool}
}

// run transforms f, a radix-8 sub-transform at the given recursion depth,
// in place, using scratch of the same length as work space. Sizes up to the
// leaf run with the small table. Larger sizes move their residue classes
// mod 8 into scratch, transform those with f as their scratch, and combine
// back into f with the full table, so no level allocates.
func (r runner) run(ctx context.Context, f, scratch []cm31.Element, depth int) error {
	n := len(f)
	if n <= r.tw.Leaf {
		radix8Precomp(f, scratch, r.tw.Small, 0, 1, n)
		f[0] = f[0].Reduce()
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := n / 8
	parts := scratch[:n]
	deinterleaveInto(parts, f, 8)
	if err := r.subTransforms(ctx, parts, f, 8, depth+1); err != nil {
		return err
	}

	full := r.tw.Full[levelOffset(r.tw.part(), depth):]
	for k := 0; k < m; k++ {
		in := [8]cm31.Element{
			parts[k], parts[m+k], parts[2*m+k], parts[3*m+k],
			parts[4*m+k], parts[5*m+k], parts[6*m+k], parts[7*m+k],
		}
		out := Block8(&in, (*[7]cm31.Element)(full[7*k:7*k+7]))
		for j, v := range out {
			f[k+j*m] = v
		}
	}
	return nil
}

// subTransforms runs count equal radix-8 transforms laid out back to back
// in parts. The matching slices of scratch serve as their work space.
func (r runner) subTransforms(ctx context.Context, parts, scratch []cm31.Element, count, depth int) error {
	m := len(parts) / count
	if r.sem == nil || len(parts) < r.parMin {
		for j := 0; j < count; j++ {
			if err := r.run(ctx, parts[j*m:(j+1)*m], scratch[j*m:(j+1)*m], depth); err != nil {
				return err
			}
		}
		return nil
	}

	// Workers capture a copy so the sequential path keeps r on the stack.
	pr := r
	g, gctx := errgroup.WithContext(ctx)
	for j := 0; j < count; j++ {
		sub, work := parts[j*m:(j+1)*m], scratch[j*m:(j+1)*m]
		g.Go(func() error {
			if m >= pr.parMin {
				return pr.run(gctx, sub, work, depth)
			}
			select {
			case pr.sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-pr.sem }()
			metrics.NTTParallelTasks.Inc()
			return pr.run(gctx, sub, work, depth)
		})
	}
	return g.Wait()
}

// deinterleaveInto splits f into its residue classes mod count, each
// stored contiguously in dst.
func deinterleaveInto(dst, f []cm31.Element, count int) {
	m := len(f) / count
	for i := 0; i < m; i++ {
		for j := 0; j < count; j++ {
			dst[j*m+i] = f[count*i+j]
		}
	}
}

// transformInto writes the transform of f to dst. dst may alias f; scratch
// holds at least len(f) elements and must not overlap either.
func (r runner) transformInto(ctx context.Context, dst, f, scratch []cm31.Element) error {
	tw := r.tw
	n := tw.N
	if len(f) != n || len(dst) != n {
		return fmt.Errorf("%w: input of %d for twiddles of %d", ErrInvalidLength, len(f), n)
	}
	if len(scratch) < n {
		return fmt.Errorf("%w: scratch of %d for size %d", ErrInvalidLength, len(scratch), n)
	}
	scratch = scratch[:n]

	switch tw.Variant {
	case Radix8Only:
		copy(dst, f)
		if err := r.run(ctx, dst, scratch, 0); err != nil {
			return err
		}

	case Stride2:
		m := n / 2
		parts := scratch
		deinterleaveInto(parts, f, 2)
		if err := r.subTransforms(ctx, parts, dst, 2, 0); err != nil {
			return err
		}
		for k := 0; k < m; k++ {
			t := parts[m+k].Mul(tw.Stride2[k])
			dst[k] = parts[k].Add(t).Reduce()
			dst[k+m] = parts[k].Sub(t).Reduce()
		}

	case Stride4:
		m := n / 4
		parts := scratch
		deinterleaveInto(parts, f, 4)
		if err := r.subTransforms(ctx, parts, dst, 4, 0); err != nil {
			return err
		}
		for k := 0; k < m; k++ {
			s := &tw.Stride4[k]
			in := [4]cm31.Element{
				parts[k],
				parts[m+k].Mul(s[0]),
				parts[2*m+k].Mul(s[1]),
				parts[3*m+k].Mul(s[2]),
			}
			for q, v := range Block4(&in) {
				dst[k+q*m] = v
			}
		}

	default:
		return fmt.Errorf("ntt: unknown variant %v", tw.Variant)
	}
	metrics.NTTTransforms.Inc()
	return nil
}

// transform returns the transform of f in a new slice, with work space
// taken from the runner's pool.
func (r runner) transform(ctx context.Context, f []cm31.Element) ([]cm31.Element, error) {
	if len(f) != r.tw.N {
		return nil, fmt.Errorf("%w: input of %d for twiddles of %d", ErrInvalidLength, len(f), r.tw.N)
	}
	out := make([]cm31.Element, len(f))
	buf := getScratch(r.pool, len(f))
	defer r.pool.Put(buf)
	if err := r.transformInto(ctx, out, f, *buf); err != nil {
		return nil, err
	}
	return out, nil
}

// inverse computes n^-1 · F(f reversed), where reversal maps index k to
// (n - k) mod n; this equals the transform under w^-1.
func (r runner) inverse(ctx context.Context, f []cm31.Element) ([]cm31.Element, error) {
	n := len(f)
	if n != r.tw.N {
		return nil, fmt.Errorf("%w: input of %d for twiddles of %d", ErrInvalidLength, n, r.tw.N)
	}
	out := make([]cm31.Element, n)
	for k := range out {
		out[k] = f[(n-k)%n]
	}
	buf := getScratch(r.pool, n)
	defer r.pool.Put(buf)
	if err := r.transformInto(ctx, out, out, *buf); err != nil {
		return nil, err
	}
	scaleInverse(out)
	return out, nil
}

// scaleInverse multiplies every element by len(f)^-1. For n = 2^k that is
// a k-bit right rotation of each part.
func scaleInverse(f []cm31.Element) {
	k := uint(0)
	for 1<<k < len(f) {
		k++
	}
	for i, v := range f {
		f[i] = cm31.Element{Re: v.Re.Div2Exp(k), Im: v.Im.Div2Exp(k)}
	}
}

func checkVariant(tw *Twiddles, want Variant) error {
	if tw == nil {
		return fmt.Errorf("%w: nil twiddles", ErrInvalidLength)
	}
	if tw.Variant != want {
		return fmt.Errorf("%w: bundle for size %d is %v, want %v", ErrInvalidLength, tw.N, tw.Variant, want)
	}
	return nil
}

// HybridP transforms f, of size 8^k, with a Radix8Only bundle: radix-8
// levels down to the leaf size, then in-place leaves with the small table.
func HybridP(f []cm31.Element, tw *Twiddles) ([]cm31.Element, error) {
	if err := checkVariant(tw, Radix8Only); err != nil {
		return nil, err
	}
	return sequential(tw).transform(context.Background(), f)
}

// HybridPInto is HybridP in place on f, with scratch (at least len(f)
// elements) as the only work space. Reusing scratch across calls makes the
// transform allocation-free.
func HybridPInto(f, scratch []cm31.Element, tw *Twiddles) error {
	if err := checkVariant(tw, Radix8Only); err != nil {
		return err
	}
	return sequential(tw).transformInto(context.Background(), f, f, scratch)
}

// S2HybridP transforms f, of size 2·8^k: the even and odd halves run
// through HybridP and are joined by length-2 butterflies.
func S2HybridP(f []cm31.Element, tw *Twiddles) ([]cm31.Element, error) {
	if err := checkVariant(tw, Stride2); err != nil {
		return nil, err
	}
	return sequential(tw).transform(context.Background(), f)
}

// S2HybridPInto is S2HybridP in place on f with caller-owned scratch.
func S2HybridPInto(f, scratch []cm31.Element, tw *Twiddles) error {
	if err := checkVariant(tw, Stride2); err != nil {
		return err
	}
	return sequential(tw).transformInto(context.Background(), f, f, scratch)
}

// S4HybridP transforms f, of size 4·8^k: four interleaved quarters run
// through HybridP and are joined by twiddled radix-4 butterflies.
func S4HybridP(f []cm31.Element, tw *Twiddles) ([]cm31.Element, error) {
	if err := checkVariant(tw, Stride4); err != nil {
		return nil, err
	}
	return sequential(tw).transform(context.Background(), f)
}

// S4HybridPInto is S4HybridP in place on f with caller-owned scratch.
func S4HybridPInto(f, scratch []cm31.Element, tw *Twiddles) error {
	if err := checkVariant(tw, Stride4); err != nil {
		return err
	}
	return sequential(tw).transformInto(context.Background(), f, f, scratch)
}

// Transform computes the forward transform of f for any power-of-two size
// up to 2^32, choosing the variant from the size. A nil tw builds the
// bundle with the default leaf size.
func Transform(f []cm31.Element, tw *Twiddles) ([]cm31.Element, error) {
	tw, err := bundleFor(f, tw, LeafSize)
	if err != nil {
		return nil, err
	}
	return sequential(tw).transform(context.Background(), f)
}

// Inverse computes the inverse transform, so Inverse(Transform(f)) = f.
func Inverse(f []cm31.Element, tw *Twiddles) ([]cm31.Element, error) {
	tw, err := bundleFor(f, tw, LeafSize)
	if err != nil {
		return nil, err
	}
	return sequential(tw).inverse(context.Background(), f)
}

func bundleFor(f []cm31.Element, tw *Twiddles, leaf int) (*Twiddles, error) {
	if tw != nil {
		return tw, nil
	}
	return precompute(len(f), leaf)
}
