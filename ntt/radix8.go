// Package ntt implements number theoretic transforms over CM31, the
// complex extension of the Mersenne-31 field, for sizes 8^k, 2·8^k and
// 4·8^k.
//
// The transform of f with root w of order n is F[k] = sum_j f[j]·w^(jk).
// All routines use the primitive roots of cm31.RootOfUnity, so results
// agree with Naive. Inputs may be lazily reduced; outputs are canonical.
package ntt

import (
	"fmt"
	"math/bits"

	"github.com/eth2030/skyscraper/cm31"
)

// isPowerOf8 reports whether n = 8^k for some k >= 0.
func isPowerOf8(n int) bool {
	return n > 0 && n&(n-1) == 0 && bits.TrailingZeros(uint(n))%3 == 0
}

// checkRadix8Length accepts 8^k for k >= 1.
func checkRadix8Length(n int) error {
	if n < 8 || !isPowerOf8(n) {
		return fmt.Errorf("%w: %d is not a power of 8 of at least 8", ErrInvalidLength, n)
	}
	return nil
}

// rootOf returns the primitive root of order n, mapping the cm31 error.
func rootOf(n int) (cm31.Element, error) {
	w, err := cm31.RootOfUnity(uint64(n))
	if err != nil {
		return cm31.Element{}, fmt.Errorf("%w: %d", ErrNoSuchRootOfUnity, n)
	}
	return w, nil
}

// powers7 returns base, base^2, ..., base^7.
func powers7(base cm31.Element) [7]cm31.Element {
	var tw [7]cm31.Element
	tw[0] = base
	for j := 1; j < 7; j++ {
		tw[j] = tw[j-1].Mul(base)
	}
	return tw
}

// Radix8 is the recursive radix-8 transform of f under w, a root of order
// len(f). Each level splits f into the eight residue classes mod 8,
// transforms them under w^8 and recombines with Block8. f is not modified.
func Radix8(f []cm31.Element, w cm31.Element) ([]cm31.Element, error) {
	if err := checkRadix8Length(len(f)); err != nil {
		return nil, err
	}
	return radix8(f, w), nil
}

func radix8(f []cm31.Element, w cm31.Element) []cm31.Element {
	n := len(f)
	if n == 1 {
		return []cm31.Element{f[0].Reduce()}
	}
	m := n / 8
	w8 := w.Pow(8)

	var sub [8][]cm31.Element
	for j := range sub {
		a := make([]cm31.Element, m)
		for i := range a {
			a[i] = f[8*i+j]
		}
		sub[j] = radix8(a, w8)
	}

	res := make([]cm31.Element, n)
	wt := cm31.One
	for k := 0; k < m; k++ {
		in := [8]cm31.Element{sub[0][k], sub[1][k], sub[2][k], sub[3][k], sub[4][k], sub[5][k], sub[6][k], sub[7][k]}
		tw := powers7(wt)
		out := Block8(&in, &tw)
		for j, v := range out {
			res[k+j*m] = v
		}
		wt = wt.Mul(w)
	}
	return res
}

// Radix8InPlace transforms f in place under w, a root of order len(f),
// computing twiddles on the fly.
func Radix8InPlace(f []cm31.Element, w cm31.Element) error {
	if err := checkRadix8Length(len(f)); err != nil {
		return err
	}
	scratch := make([]cm31.Element, len(f))
	radix8InPlace(f, scratch, 0, 1, len(f), w)
	return nil
}

// radix8InPlace transforms the n elements f[offset + i·stride]. Child r of
// a node owns offsets offset + r·stride with stride 8·stride, so after the
// children return element 8k+r of the node's view is child r's output k.
func radix8InPlace(f, scratch []cm31.Element, offset, stride, n int, w cm31.Element) {
	if n == 1 {
		return
	}
	m := n / 8
	w8 := w.Pow(8)
	for r := 0; r < 8; r++ {
		radix8InPlace(f, scratch, offset+r*stride, stride*8, m, w8)
	}
	for i := 0; i < n; i++ {
		scratch[i] = f[offset+i*stride]
	}
	wt := cm31.One
	for k := 0; k < m; k++ {
		tw := powers7(wt)
		out := Block8((*[8]cm31.Element)(scratch[8*k:8*k+8]), &tw)
		for j, v := range out {
			f[offset+(k+j*m)*stride] = v
		}
		wt = wt.Mul(w)
	}
}

// StageTwiddles returns the per-stage twiddles consumed by
// Radix8InPlacePrecomp for a transform of size n under w: for each stage
// of size s = n, n/8, ..., 8 with root w_s, the powers w_s^(jk) for
// k < s/8 and j = 1..7, seven per k. The table has n-1 entries.
func StageTwiddles(n int, w cm31.Element) []cm31.Element {
	tw := make([]cm31.Element, 0, max(n-1, 0))
	for s := n; s >= 8; s /= 8 {
		base := cm31.One
		for k := 0; k < s/8; k++ {
			p := powers7(base)
			for _, v := range p {
				tw = append(tw, v.Reduce())
			}
			base = base.Mul(w)
		}
		w = w.Pow(8)
	}
	return tw
}

// Radix8InPlacePrecomp transforms f in place using a table built by
// StageTwiddles for len(f).
func Radix8InPlacePrecomp(f, pre []cm31.Element) error {
	if err := checkRadix8Length(len(f)); err != nil {
		return err
	}
	if len(pre) != len(f)-1 {
		return fmt.Errorf("%w: %d twiddles for size %d", ErrInvalidLength, len(pre), len(f))
	}
	scratch := make([]cm31.Element, len(f))
	radix8Precomp(f, scratch, pre, 0, 1, len(f))
	return nil
}

// radix8Precomp mirrors radix8InPlace with twiddles read from pre, whose
// first 7·n/8 entries belong to this stage and the rest to deeper stages.
func radix8Precomp(f, scratch, pre []cm31.Element, offset, stride, n int) {
	if n == 1 {
		return
	}
	m := n / 8
	stage, deeper := pre[:7*m], pre[7*m:]
	for r := 0; r < 8; r++ {
		radix8Precomp(f, scratch, deeper, offset+r*stride, stride*8, m)
	}
	for i := 0; i < n; i++ {
		scratch[i] = f[offset+i*stride]
	}
	for k := 0; k < m; k++ {
		out := Block8((*[8]cm31.Element)(scratch[8*k:8*k+8]), (*[7]cm31.Element)(stage[7*k:7*k+7]))
		for j, v := range out {
			f[offset+(k+j*m)*stride] = v
		}
	}
}

