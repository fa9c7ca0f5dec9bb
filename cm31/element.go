package cm31

import "fmt"

// Element is a + b·i in F_q[i]/(i^2 + 1). Both parts follow the lazy
// representation of Real.
type Element struct {
	Re, Im Real
}

// New returns re + im·i.
func New(re, im uint32) Element { return Element{Real(re), Real(im)} }

var (
	// Zero and One are the additive and multiplicative identities.
	Zero = Element{}
	One  = Element{Re: 1}

	// W4 is i, the primitive 4th root of unity used by the radix-4 butterfly.
	W4 = New(0, 1)

	// W8 is 2^15·(1 + i). Its square is i.
	W8 = New(1<<15, 1<<15)
)

// Reduce returns the element with both parts canonical.
func (a Element) Reduce() Element { return Element{a.Re.Reduce(), a.Im.Reduce()} }

func (a Element) IsZero() bool { return a.Re.IsZero() && a.Im.IsZero() }

// Equal compares canonical values.
func (a Element) Equal(b Element) bool { return a.Re.Equal(b.Re) && a.Im.Equal(b.Im) }

func (a Element) Add(b Element) Element { return Element{a.Re.Add(b.Re), a.Im.Add(b.Im)} }

func (a Element) Sub(b Element) Element { return Element{a.Re.Sub(b.Re), a.Im.Sub(b.Im)} }

func (a Element) Neg() Element { return Element{a.Re.Neg(), a.Im.Neg()} }

// Mul uses three base multiplications:
// (a+bi)(c+di) = (ac - bd) + ((a+b)(c+d) - ac - bd)i.
func (a Element) Mul(b Element) Element {
	ac := a.Re.Mul(b.Re)
	bd := a.Im.Mul(b.Im)
	cross := a.Re.Add(a.Im).Mul(b.Re.Add(b.Im))
	return Element{ac.Sub(bd), cross.Sub(ac).Sub(bd)}
}

// Square computes (a+b)(a-b) + 2ab·i.
func (a Element) Square() Element {
	return Element{
		a.Re.Add(a.Im).Mul(a.Re.Sub(a.Im)),
		a.Re.Mul(a.Im).Double(),
	}
}

// MulReal scales both parts by f.
func (a Element) MulReal(f Real) Element { return Element{a.Re.Mul(f), a.Im.Mul(f)} }

// MulJ multiplies by i: (a + bi)·i = -b + ai.
func (a Element) MulJ() Element { return Element{a.Im.Neg(), a.Re} }

func (a Element) MulNeg1() Element { return a.Neg() }

func (a Element) Conj() Element { return Element{a.Re, a.Im.Neg()} }

// Norm returns a^2 + b^2, the product of a and its conjugate.
func (a Element) Norm() Real { return a.Re.Square().Add(a.Im.Square()) }

func (a Element) Pow(e uint64) Element {
	r := One
	for ; e != 0; e >>= 1 {
		if e&1 != 0 {
			r = r.Mul(a)
		}
		a = a.Square()
	}
	return r
}

// Inverse returns conj(a) / norm(a). The norm vanishes only at zero because
// -1 is not a square mod q.
func (a Element) Inverse() (Element, error) {
	inv, err := a.Norm().Inverse()
	if err != nil {
		return Element{}, err
	}
	return a.Conj().MulReal(inv).Reduce(), nil
}

// TrySqrt returns x + yi with (x + yi)^2 = a, and whether a is a square.
// With r a square root of the norm, x^2 = (re + r)/2 and y = im/(2x), or
// y^2 = (r - re)/2 and x = im/(2y). Both roots ±r of the norm are tried
// since only one of them may yield a square half-sum.
func (a Element) TrySqrt() (Element, bool) {
	a = a.Reduce()
	if a.IsZero() {
		return Zero, true
	}
	r, ok := a.Norm().Sqrt()
	if !ok {
		return Element{}, false
	}
	half, _ := Real(2).Inverse()
	for _, root := range [2]Real{r, r.Neg()} {
		if x, ok := a.Re.Add(root).Mul(half).Sqrt(); ok && !x.IsZero() {
			inv, _ := x.Double().Inverse()
			if z := (Element{x, a.Im.Mul(inv)}).Reduce(); z.Square().Equal(a) {
				return z, true
			}
		}
		if y, ok := root.Sub(a.Re).Mul(half).Sqrt(); ok && !y.IsZero() {
			inv, _ := y.Double().Inverse()
			if z := (Element{a.Im.Mul(inv), y}).Reduce(); z.Square().Equal(a) {
				return z, true
			}
		}
	}
	return Element{}, false
}

func (a Element) String() string {
	return fmt.Sprintf("(%d, %d)", a.Re.Uint32(), a.Im.Uint32())
}
