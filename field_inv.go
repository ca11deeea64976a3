package gf2m

import "math/big"

// Inversion, division, exponentiation and square roots.

// Inverse sets r = a^-1, the element with a * a^-1 = 1, by the extended
// Euclidean algorithm on binary polynomials (GtECC algorithm 2.48). Returns
// ErrDivideByZero for the zero element.
//
// The working pair (u, v) starts as (a, f); deg u + deg v shrinks every
// step, and the same shifted XOR applied to (g1, g2) carries
// the Bezout coefficient along. v initially holds the bit-D term of f, which
// still fits in L words because no supported degree is a multiple of 64; g1
// and g2 stay below degree D throughout, an invariant of the algorithm.
func (r *Element[F]) Inverse(a *Element[F]) error {
	if a.IsZero() {
		return ErrDivideByZero
	}
	var f F
	d := f.Degree()
	l := fieldWords(d)
	lo, hi := f.Poly()

	u := resize(a.words(), l)
	v := make([]uint64, l)
	v[0] = lo
	v[1] ^= hi
	flipBit(v, d)
	g1 := make([]uint64, l)
	g1[0] = 1
	g2 := make([]uint64, l)

	for {
		ulen := bitLen(u)
		if ulen == 1 {
			break
		}
		j := int(ulen) - int(bitLen(v))
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			j = -j
		}
		shiftedXor(u, v, uint(j))
		shiftedXor(g1, g2, uint(j))
	}
	*r = Element[F]{}
	copy(r.words(), g1)
	return nil
}

// Div sets r = a/b = a * b^-1. Returns ErrDivideByZero when b is zero.
func (r *Element[F]) Div(a, b *Element[F]) error {
	var inv Element[F]
	if err := inv.Inverse(b); err != nil {
		return err
	}
	r.Mul(a, &inv)
	return nil
}

// Exp sets r = a^n for n >= 0 by right-to-left square and multiply. a^0 is
// 1, including 0^0. Returns ErrNegativeExponent for negative n.
func (r *Element[F]) Exp(a *Element[F], n *big.Int) error {
	if n.Sign() < 0 {
		return ErrNegativeExponent
	}
	var c, s Element[F]
	c.SetOne()
	s.Set(a)
	for i, bl := 0, n.BitLen(); i < bl; i++ {
		if n.Bit(i) == 1 {
			c.Mul(&c, &s)
		}
		if i+1 < bl {
			s.Square(&s)
		}
	}
	r.Set(&c)
	return nil
}

// Sqrt sets r to the square root of a. Squaring is the Frobenius
// endomorphism and its D-fold composition is the identity, so the root is
// a^(2^(D-1)): D-1 repeated squarings. Every element has exactly one root.
func (r *Element[F]) Sqrt(a *Element[F]) {
	var f F
	var s Element[F]
	s.Set(a)
	for i := uint(1); i < f.Degree(); i++ {
		s.Square(&s)
	}
	r.Set(&s)
}

// Trace returns the GF(2)-linear trace Tr(a) = a + a^2 + a^4 + ... +
// a^(2^(D-1)), which always lands in {0, 1}.
func (r *Element[F]) Trace() uint64 {
	var f F
	var t, s Element[F]
	t.Set(r)
	s.Set(r)
	for i := uint(1); i < f.Degree(); i++ {
		s.Square(&s)
		t.Add(&t, &s)
	}
	return t.n[0]
}

// BatchInverse inverts every element of in into the corresponding slot of
// out using Montgomery's trick: one Inverse plus 3n multiplications.
// out and in must have equal length and may be the same slice. Returns
// ErrDivideByZero if any input is zero, in which case out is unspecified.
// The backwards walk keeps it in-place.
func BatchInverse[F Field](out, in []Element[F]) error {
	if len(out) != len(in) {
		panic("output and input slices must have same length")
	}
	n := len(in)
	if n == 0 {
		return nil
	}

	// s_i = in_0 * in_1 * ... * in_(i-1)
	s := make([]Element[F], n)
	s[0].SetOne()
	for i := 1; i < n; i++ {
		s[i].Mul(&s[i-1], &in[i-1])
	}

	// u = (in_0 * ... * in_(n-1))^-1
	var u Element[F]
	u.Mul(&s[n-1], &in[n-1])
	if err := u.Inverse(&u); err != nil {
		return err
	}

	// out_i = (in_0 * ... * in_(i-1)) * (in_0 * ... * in_i)^-1
	for i := n - 1; i >= 0; i-- {
		t := in[i]
		out[i].Mul(&u, &s[i])
		u.Mul(&u, &t)
	}
	return nil
}
