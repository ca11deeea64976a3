package gf2m

import "math/bits"

// Modular reduction. The input is an unreduced polynomial of degree < 2D in
// a 2L-word scratch slice; reduction rewrites every coefficient at position
// i >= D as r(x)*x^(i-D), using the sparsity of r(x): at most five terms for
// every supported field, so each fold is a handful of shifted XORs.

// polyTerms expands the packed remainder polynomial into its term degrees,
// highest first. At most 5 terms across the SEC 2 fields; out is sized with
// slack.
func polyTerms(lo, hi uint64, out *[8]uint) int {
	n := 0
	for hi != 0 {
		t := uint(bits.Len64(hi)) - 1
		out[n] = wordBits + t
		n++
		hi ^= 1 << t
	}
	for lo != 0 {
		t := uint(bits.Len64(lo)) - 1
		out[n] = t
		n++
		lo ^= 1 << t
	}
	return n
}

// reduce folds c down to degree < D in place, word at a time. Words lying
// entirely above the degree fold as whole 64-coefficient blocks; the word
// straddling the degree folds its high part last. Every deposit lands
// strictly below the word being folded because D - deg(r) > 64 for all
// supported fields, so a single top-down pass suffices.
func reduce[F Field](c []uint64) {
	var f F
	d := f.Degree()
	lo, hi := f.Poly()
	var terms [8]uint
	nt := polyTerms(lo, hi, &terms)
	for i := len(c) - 1; uint(i)*wordBits >= d; i-- {
		w := c[i]
		if w == 0 {
			continue
		}
		c[i] = 0
		base := uint(i)*wordBits - d
		for t := 0; t < nt; t++ {
			xorWordShifted(c, w, base+terms[t])
		}
	}
	j, s := d/wordBits, d%wordBits
	if w := c[j] >> s; w != 0 {
		c[j] &= 1<<s - 1
		for t := 0; t < nt; t++ {
			xorWordShifted(c, w, terms[t])
		}
	}
}

// reduceGeneric is the per-bit reference reduction: scan from the top
// coefficient down to D, cancelling each set bit i against r(x)*x^(i-D).
// Observationally identical to reduce; kept as the oracle the word-level
// routine is checked against.
func reduceGeneric[F Field](c []uint64) {
	var f F
	d := f.Degree()
	lo, hi := f.Poly()
	var terms [8]uint
	nt := polyTerms(lo, hi, &terms)
	for i := uint(len(c))*wordBits - 1; i >= d; i-- {
		if getBit(c, i) == 0 {
			continue
		}
		flipBit(c, i)
		for t := 0; t < nt; t++ {
			flipBit(c, i-d+terms[t])
		}
	}
}

// setReduced copies the reduced low words of c into r.
func (r *Element[F]) setReduced(c []uint64) {
	*r = Element[F]{}
	copy(r.words(), c)
}
