package bn254

// Interleaved block multipliers. One scalar CIOS multiply runs on the
// integer pipeline while a two-lane fp multiply runs on the FPU; issuing
// their steps alternately lets each hide the latency of the other. The
// schedule below keeps every data dependency of both kernels: scalar step i
// follows fp row i of both lanes, and the fp reduction tail runs last.

// interleaved3 computes one scalar product into s and two fp lanes into v.
//
//go:noinline
func interleaved3(sa, sb *Element, va, vb *[2]Limbs52) (Element, [2]Limbs52) {
	var t [6]uint64
	t0 := accum52(initialAccumulator)
	t1 := accum52(initialAccumulator)

	t0.row(0, va[0][0], &vb[0])
	t1.row(0, va[1][0], &vb[1])
	ciosStep(&t, sa[0], sb)
	t0.row(1, va[0][1], &vb[0])
	t1.row(1, va[1][1], &vb[1])
	ciosStep(&t, sa[1], sb)
	t0.row(2, va[0][2], &vb[0])
	t1.row(2, va[1][2], &vb[1])
	ciosStep(&t, sa[2], sb)
	t0.row(3, va[0][3], &vb[0])
	t1.row(3, va[1][3], &vb[1])
	ciosStep(&t, sa[3], sb)
	t0.row(4, va[0][4], &vb[0])
	t1.row(4, va[1][4], &vb[1])

	return Element{t[0], t[1], t[2], t[3]}, [2]Limbs52{t0.finish(), t1.finish()}
}

// interleaved4 is interleaved3 with a second scalar stream.
//
//go:noinline
func interleaved4(sa0, sb0, sa1, sb1 *Element, va, vb *[2]Limbs52) (Element, Element, [2]Limbs52) {
	var s0, s1 [6]uint64
	t0 := accum52(initialAccumulator)
	t1 := accum52(initialAccumulator)

	t0.row(0, va[0][0], &vb[0])
	ciosStep(&s0, sa0[0], sb0)
	t1.row(0, va[1][0], &vb[1])
	ciosStep(&s1, sa1[0], sb1)
	t0.row(1, va[0][1], &vb[0])
	ciosStep(&s0, sa0[1], sb0)
	t1.row(1, va[1][1], &vb[1])
	ciosStep(&s1, sa1[1], sb1)
	t0.row(2, va[0][2], &vb[0])
	ciosStep(&s0, sa0[2], sb0)
	t1.row(2, va[1][2], &vb[1])
	ciosStep(&s1, sa1[2], sb1)
	t0.row(3, va[0][3], &vb[0])
	ciosStep(&s0, sa0[3], sb0)
	t1.row(3, va[1][3], &vb[1])
	ciosStep(&s1, sa1[3], sb1)
	t0.row(4, va[0][4], &vb[0])
	t1.row(4, va[1][4], &vb[1])

	return Element{s0[0], s0[1], s0[2], s0[3]},
		Element{s1[0], s1[1], s1[2], s1[3]},
		[2]Limbs52{t0.finish(), t1.finish()}
}

func toLanes(a [2]Element) [2]Limbs52 {
	return [2]Limbs52{ToLimbs52(a[0]), ToLimbs52(a[1])}
}

func fromLanes(a [2]Limbs52) [2]Element {
	return [2]Element{FromLimbs52(a[0]), FromLimbs52(a[1])}
}

// Interleaved3 returns Mul(a, b) and SimdMul(av, bv), three products in one
// call. Inputs must be below 2p.
func Interleaved3(g *Guard, a, b Element, av, bv [2]Element) (Element, [2]Element) {
	g.Check()
	va, vb := toLanes(av), toLanes(bv)
	s, v := interleaved3(&a, &b, &va, &vb)
	return s, fromLanes(v)
}

// Interleaved4 returns Mul(a0, b0), Mul(a1, b1) and SimdMul(av, bv).
func Interleaved4(g *Guard, a0, b0, a1, b1 Element, av, bv [2]Element) (Element, Element, [2]Element) {
	g.Check()
	va, vb := toLanes(av), toLanes(bv)
	s0, s1, v := interleaved4(&a0, &b0, &a1, &b1, &va, &vb)
	return s0, s1, fromLanes(v)
}

// SquareInterleaved3 squares a with the scalar kernel and both lanes of av
// with the fp kernel.
func SquareInterleaved3(g *Guard, a Element, av [2]Element) (Element, [2]Element) {
	g.Check()
	va := toLanes(av)
	s, v := interleaved3(&a, &a, &va, &va)
	return s, fromLanes(v)
}

// SquareInterleaved4 squares a0 and a1 with the scalar kernel and both lanes
// of av with the fp kernel.
func SquareInterleaved4(g *Guard, a0, a1 Element, av [2]Element) (Element, Element, [2]Element) {
	g.Check()
	va := toLanes(av)
	s0, s1, v := interleaved4(&a0, &a0, &a1, &a1, &va, &va)
	return s0, s1, fromLanes(v)
}

// BlockMul computes three independent products: as*bs on the scalar kernel
// and av0*bv0, av1*bv1 on the two fp lanes.
func BlockMul(g *Guard, as, bs, av0, bv0, av1, bv1 Element) (cs, cv0, cv1 Element) {
	cs, v := Interleaved3(g, as, bs, [2]Element{av0, av1}, [2]Element{bv0, bv1})
	return cs, v[0], v[1]
}

// BlockSqr computes three independent squares.
func BlockSqr(g *Guard, as, av0, av1 Element) (cs, cv0, cv1 Element) {
	cs, v := SquareInterleaved3(g, as, [2]Element{av0, av1})
	return cs, v[0], v[1]
}
