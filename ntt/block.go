package ntt

import "github.com/eth2030/skyscraper/cm31"

// Block8 is the radix-8 decimation-in-time butterfly. Inputs f[1..7] are
// first scaled by tw[0..6] = w, w^2, ..., w^7; the result is the 8-point
// transform of the scaled inputs under W8. Inputs may be lazily reduced;
// outputs are canonical.
func Block8(f *[8]cm31.Element, tw *[7]cm31.Element) [8]cm31.Element {
	t0 := f[0]
	t1 := f[1].Mul(tw[0])
	t2 := f[2].Mul(tw[1])
	t3 := f[3].Mul(tw[2])
	t4 := f[4].Mul(tw[3])
	t5 := f[5].Mul(tw[4])
	t6 := f[6].Mul(tw[5])
	t7 := f[7].Mul(tw[6])

	// Length-2 butterflies on pairs four apart.
	a0 := t0.Add(t4)
	a1 := t0.Sub(t4)
	a2 := t2.Add(t6)
	a3 := t2.Sub(t6)
	a4 := t1.Add(t5)
	a5 := t1.Sub(t5)
	a6 := t3.Add(t7)
	a7 := t3.Sub(t7)

	// Length-4 butterflies; i is the 4th root.
	a3j := a3.MulJ()
	a7j := a7.MulJ()
	b0 := a0.Add(a2)
	b1 := a0.Sub(a2)
	b2 := a1.Add(a3j)
	b3 := a1.Sub(a3j)
	b4 := a4.Add(a6)
	b5 := a4.Sub(a6)
	b6 := a5.Add(a7j)
	b7 := a5.Sub(a7j)

	b5j := b5.MulJ()
	b6w := b6.Mul(cm31.W8)
	b7w := b7.MulJ().Mul(cm31.W8)

	return [8]cm31.Element{
		b0.Add(b4).Reduce(),
		b2.Add(b6w).Reduce(),
		b1.Add(b5j).Reduce(),
		b3.Add(b7w).Reduce(),
		b0.Sub(b4).Reduce(),
		b2.Sub(b6w).Reduce(),
		b1.Sub(b5j).Reduce(),
		b3.Sub(b7w).Reduce(),
	}
}

// Block4 is the radix-4 butterfly: the 4-point transform of f under i.
// Twiddles, if any, are applied by the caller.
func Block4(f *[4]cm31.Element) [4]cm31.Element {
	a0 := f[0].Add(f[2])
	a1 := f[0].Sub(f[2])
	a2 := f[1].Add(f[3])
	a3j := f[1].Sub(f[3]).MulJ()
	return [4]cm31.Element{
		a0.Add(a2).Reduce(),
		a1.Add(a3j).Reduce(),
		a0.Sub(a2).Reduce(),
		a1.Sub(a3j).Reduce(),
	}
}
