package ntt

import (
	"fmt"

	"github.com/eth2030/skyscraper/cm31"
)

// Naive evaluates F[i] = sum_j f[j]·w^(ij) directly in O(n^2). It accepts
// any power-of-two size and serves as the reference for the fast paths.
func Naive(f []cm31.Element) ([]cm31.Element, error) {
	w, err := naiveRoot(len(f))
	if err != nil {
		return nil, err
	}
	return naive(f, w), nil
}

// InverseNaive evaluates n^-1 · sum_j f[j]·w^(-ij).
func InverseNaive(f []cm31.Element) ([]cm31.Element, error) {
	w, err := naiveRoot(len(f))
	if err != nil {
		return nil, err
	}
	winv, err := w.Inverse()
	if err != nil {
		return nil, err
	}
	out := naive(f, winv)
	scaleInverse(out)
	return out, nil
}

func naiveRoot(n int) (cm31.Element, error) {
	if n <= 0 || n&(n-1) != 0 {
		return cm31.Element{}, fmt.Errorf("%w: %d is not a power of two", ErrInvalidLength, n)
	}
	return rootOf(n)
}

func naive(f []cm31.Element, w cm31.Element) []cm31.Element {
	out := make([]cm31.Element, len(f))
	wi := cm31.One
	for i := range out {
		acc, wij := cm31.Zero, cm31.One
		for _, v := range f {
			acc = acc.Add(v.Mul(wij))
			wij = wij.Mul(wi)
		}
		out[i] = acc.Reduce()
		wi = wi.Mul(w)
	}
	return out
}
