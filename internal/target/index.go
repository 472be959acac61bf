package target

import (
	"math"

	"github.com/RoaringBitmap/roaring"
)

// AtomIndices returns the indices of the target's valid atoms as a bitmap.
// Indices outside the uint32 range are skipped.
func (t *Target) AtomIndices() *roaring.Bitmap {
	bm := roaring.New()
	for _, a := range t.Atoms() {
		n, _ := a.index.Get()
		if n < 0 || int64(n) > math.MaxUint32 {
			continue
		}
		bm.Add(uint32(n))
	}
	return bm
}

// SharedAtoms returns the atom indices present in both targets.
func SharedAtoms(a, b *Target) *roaring.Bitmap {
	return roaring.And(a.AtomIndices(), b.AtomIndices())
}
