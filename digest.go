package gf2m

import (
	sha256simd "github.com/minio/sha256-simd"
)

// SetDigest derives a field element deterministically from arbitrary bytes:
// SHA-256 of data with a one-byte counter appended is concatenated until
// ceil(D/8) bytes are available, which are read big-endian and masked to
// degree < D. Distinct inputs map to unrelated-looking elements; the same
// input always maps to the same element. It is total and never fails.
func (r *Element[F]) SetDigest(data []byte) {
	var f F
	bl := fieldBytes(f.Degree())
	buf := make([]byte, 0, (bl/sha256simd.Size+1)*sha256simd.Size)
	for ctr := byte(0); len(buf) < bl; ctr++ {
		h := sha256simd.New()
		h.Write(data)
		h.Write([]byte{ctr})
		buf = h.Sum(buf)
	}
	r.setBytes(buf[:bl])
}
