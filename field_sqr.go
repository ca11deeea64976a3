package gf2m

// Squaring. The square of a polynomial over GF(2) is the polynomial with
// its coefficients spread apart: (sum a_i x^i)^2 = sum a_i x^(2i), so no
// cross terms exist and squaring is a table lookup per window plus one
// reduction.

// squareSpread maps a 4-bit window u to the word whose bit 2i is set
// exactly when bit i of u is set.
var squareSpread = [16]uint64{
	0x00, 0x01, 0x04, 0x05, 0x10, 0x11, 0x14, 0x15,
	0x40, 0x41, 0x44, 0x45, 0x50, 0x51, 0x54, 0x55,
}

// Square sets r = a*a by table-driven bit spreading: each source word
// expands into two destination words, 4 source bits at a time.
func (r *Element[F]) Square(a *Element[F]) {
	var f F
	l := fieldWords(f.Degree())
	var c wide
	cs := c[:2*l]
	for j := 0; j < l; j++ {
		w := a.n[j]
		if w == 0 {
			continue
		}
		var lo, hi uint64
		for k := uint(0); k < 8; k++ {
			lo |= squareSpread[w>>(4*k)&0xF] << (8 * k)
			hi |= squareSpread[w>>(32+4*k)&0xF] << (8 * k)
		}
		cs[2*j] = lo
		cs[2*j+1] = hi
	}
	reduce[F](cs)
	r.setReduced(cs)
}

// SquareGeneric is the table-free reference: set output bit 2i for each set
// bit i. Same contract as Square; kept for cross-checking and benchmarks.
func (r *Element[F]) SquareGeneric(a *Element[F]) {
	var f F
	d := f.Degree()
	l := fieldWords(d)
	var c wide
	cs := c[:2*l]
	for i := uint(0); i < d; i++ {
		if getBit(a.words(), i) == 1 {
			flipBit(cs, 2*i)
		}
	}
	reduce[F](cs)
	r.setReduced(cs)
}
