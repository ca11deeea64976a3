package gf2m

import "sync"

// Carryless polynomial multiplication. Every variant computes a*b mod f(x)
// into a 2L-word scratch accumulator and reduces at the end (except
// MulNoReduce, which interleaves the fold). The variants are separate entry
// points rather than a dispatch interface so call sites pick a strategy
// statically; Mul is the measured default.

// window is the multiplier window width of the default comb. 4 measured
// fastest across the supported fields on 64-bit targets.
const window = 4

// Mul sets r = a*b. Equal operands delegate to Square, which is cheaper;
// otherwise this is the windowed left-to-right comb (GtECC 2.36).
func (r *Element[F]) Mul(a, b *Element[F]) {
	if a == b || a.n == b.n {
		r.Square(a)
		return
	}
	r.MulWindow(a, b)
}

// MulWindow multiplies by left-to-right comb with 4-bit windows of the
// multiplier (GtECC algorithm 2.36). A 16-entry table of b*u for every
// window polynomial u is built first; one window per limb of a is consumed
// per pass, and the accumulator shifts by the window width between passes.
func (r *Element[F]) MulWindow(a, b *Element[F]) {
	var f F
	l := fieldWords(f.Degree())

	// tab[u] = b*u for deg u < window, in l+1 words to hold the top shift.
	// Even entries are doubled halves, odd entries add b back in.
	var tab [1 << window][maxWords + 1]uint64
	copy(tab[1][:], b.words())
	for u := 2; u < 1<<window; u += 2 {
		tab[u] = tab[u/2]
		shiftLeft(tab[u][:l+1], 1)
		tab[u+1] = tab[u]
		xorInto(tab[u+1][:l], b.words())
	}

	var c wide
	cs := c[:2*l]
	for k := wordBits/window - 1; k >= 0; k-- {
		for j := 0; j < l; j++ {
			u := getBits(a.words(), uint(j)*wordBits+uint(k)*window, window)
			if u == 0 {
				continue
			}
			for i := 0; i <= l; i++ {
				cs[j+i] ^= tab[u][i]
			}
		}
		if k > 0 {
			shiftLeft(cs, window)
		}
	}
	reduce[F](cs)
	r.setReduced(cs)
}

// MulShiftAndAdd multiplies by the schoolbook right-to-left scan: for each
// set coefficient i of a, add b*x^i into the accumulator.
func (r *Element[F]) MulShiftAndAdd(a, b *Element[F]) {
	var f F
	d := f.Degree()
	l := fieldWords(d)
	var c wide
	cs := c[:2*l]
	for i := uint(0); i < d; i++ {
		if getBit(a.words(), i) == 1 {
			shiftedXor(cs, b.words(), i)
		}
	}
	reduce[F](cs)
	r.setReduced(cs)
}

// MulCombRight multiplies by the right-to-left comb (GtECC algorithm 2.34):
// bit position k is scanned across every limb of a per pass, and the
// multiplicand copy shifts up one bit between passes.
func (r *Element[F]) MulCombRight(a, b *Element[F]) {
	var f F
	l := fieldWords(f.Degree())
	bb := resize(b.words(), l+1)
	var c wide
	cs := c[:2*l]
	for k := uint(0); k < wordBits; k++ {
		for j := 0; j < l; j++ {
			if a.n[j]>>k&1 == 1 {
				for i := 0; i <= l; i++ {
					cs[j+i] ^= bb[i]
				}
			}
		}
		if k < wordBits-1 {
			shiftLeft(bb, 1)
		}
	}
	reduce[F](cs)
	r.setReduced(cs)
}

// MulCombLeft multiplies by the left-to-right comb (GtECC algorithm 2.35),
// the window-1 form of MulWindow: the accumulator shifts instead of the
// multiplicand.
func (r *Element[F]) MulCombLeft(a, b *Element[F]) {
	var f F
	l := fieldWords(f.Degree())
	var c wide
	cs := c[:2*l]
	for k := wordBits - 1; k >= 0; k-- {
		for j := 0; j < l; j++ {
			if a.n[j]>>uint(k)&1 == 1 {
				for i := 0; i < l; i++ {
					cs[j+i] ^= b.n[i]
				}
			}
		}
		if k > 0 {
			shiftLeft(cs, 1)
		}
	}
	reduce[F](cs)
	r.setReduced(cs)
}

// MulNoReduce multiplies without a separate reduction pass: a running copy
// of b*x^i is kept reduced modulo f at every step, so the accumulator never
// exceeds L words.
func (r *Element[F]) MulNoReduce(a, b *Element[F]) {
	var f F
	d := f.Degree()
	var s, acc Element[F]
	s.Set(b)
	for i := uint(0); i < d; i++ {
		if getBit(a.words(), i) == 1 {
			xorInto(acc.words(), s.words())
		}
		if i+1 < d {
			s.mulX()
		}
	}
	r.Set(&acc)
}

// mulX multiplies r by x modulo f in place: shift up one bit and, if the
// degree-D coefficient appeared, cancel it against r(x).
func (r *Element[F]) mulX() {
	var f F
	d := f.Degree()
	shiftLeft(r.words(), 1)
	if getBit(r.words(), d) == 1 {
		flipBit(r.words(), d)
		lo, hi := f.Poly()
		r.n[0] ^= lo
		r.n[1] ^= hi
	}
}

// MulParallel multiplies like MulShiftAndAdd with the set coefficients of a
// partitioned across workers goroutines. Each worker accumulates its b*x^i
// terms into a private scratch; the partial products are XORed together and
// reduced once. XOR is associative and commutative, so the partition order
// is irrelevant. workers below 2 falls back to the serial scan.
func (r *Element[F]) MulParallel(a, b *Element[F], workers int) {
	if workers < 2 {
		r.MulShiftAndAdd(a, b)
		return
	}
	var f F
	d := f.Degree()
	l := fieldWords(d)
	accs := make([]wide, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			cs := accs[w][:2*l]
			for i := uint(w); i < d; i += uint(workers) {
				if getBit(a.words(), i) == 1 {
					shiftedXor(cs, b.words(), i)
				}
			}
		}(w)
	}
	wg.Wait()
	cs := accs[0][:2*l]
	for w := 1; w < workers; w++ {
		xorInto(cs, accs[w][:2*l])
	}
	reduce[F](cs)
	r.setReduced(cs)
}
