package gf2m

import (
	"crypto/rand"
	"testing"
)

// Benchmarks back the choice of the windowed comb as the default multiplier
// and window 4 as its width; rerun them when porting to a new platform.

var (
	benchA163, benchB163 Element[F163]
	benchA571, benchB571 Element[F571]
	benchReady           bool
)

func initBenchElements(b *testing.B) {
	b.Helper()
	if benchReady {
		return
	}
	for _, err := range []error{
		benchA163.SetRand(rand.Reader),
		benchB163.SetRand(rand.Reader),
		benchA571.SetRand(rand.Reader),
		benchB571.SetRand(rand.Reader),
	} {
		if err != nil {
			b.Fatal(err)
		}
	}
	benchReady = true
}

func benchMul163(b *testing.B, mul func(r, x, y *Element[F163])) {
	initBenchElements(b)
	var r Element[F163]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mul(&r, &benchA163, &benchB163)
	}
}

func benchMul571(b *testing.B, mul func(r, x, y *Element[F571])) {
	initBenchElements(b)
	var r Element[F571]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mul(&r, &benchA571, &benchB571)
	}
}

func BenchmarkMulWindow163(b *testing.B) {
	benchMul163(b, func(r, x, y *Element[F163]) { r.MulWindow(x, y) })
}

func BenchmarkMulShiftAndAdd163(b *testing.B) {
	benchMul163(b, func(r, x, y *Element[F163]) { r.MulShiftAndAdd(x, y) })
}

func BenchmarkMulCombRight163(b *testing.B) {
	benchMul163(b, func(r, x, y *Element[F163]) { r.MulCombRight(x, y) })
}

func BenchmarkMulCombLeft163(b *testing.B) {
	benchMul163(b, func(r, x, y *Element[F163]) { r.MulCombLeft(x, y) })
}

func BenchmarkMulNoReduce163(b *testing.B) {
	benchMul163(b, func(r, x, y *Element[F163]) { r.MulNoReduce(x, y) })
}

func BenchmarkMulWindow571(b *testing.B) {
	benchMul571(b, func(r, x, y *Element[F571]) { r.MulWindow(x, y) })
}

func BenchmarkMulShiftAndAdd571(b *testing.B) {
	benchMul571(b, func(r, x, y *Element[F571]) { r.MulShiftAndAdd(x, y) })
}

func BenchmarkMulCombRight571(b *testing.B) {
	benchMul571(b, func(r, x, y *Element[F571]) { r.MulCombRight(x, y) })
}

func BenchmarkMulCombLeft571(b *testing.B) {
	benchMul571(b, func(r, x, y *Element[F571]) { r.MulCombLeft(x, y) })
}

func BenchmarkMulNoReduce571(b *testing.B) {
	benchMul571(b, func(r, x, y *Element[F571]) { r.MulNoReduce(x, y) })
}

func BenchmarkMulParallel571(b *testing.B) {
	benchMul571(b, func(r, x, y *Element[F571]) { r.MulParallel(x, y, 4) })
}

func BenchmarkSquare571(b *testing.B) {
	initBenchElements(b)
	var r Element[F571]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Square(&benchA571)
	}
}

func BenchmarkSquareGeneric571(b *testing.B) {
	initBenchElements(b)
	var r Element[F571]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.SquareGeneric(&benchA571)
	}
}

func BenchmarkInverse571(b *testing.B) {
	initBenchElements(b)
	var r Element[F571]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.Inverse(&benchA571); err != nil {
			b.Fatal(err)
		}
	}
}
