package columnar

import "github.com/grafana/colexpr/pkg/memory"

// validityBuilder accumulates a validity bitmap. The bitmap is only
// materialized once the first null is appended, so arrays without nulls carry
// an empty bitmap.
type validityBuilder struct {
	alloc  *memory.Allocator
	bitmap memory.Bitmap
	count  int
	nulls  int
}

func (vb *validityBuilder) appendValid() {
	if vb.nulls > 0 {
		vb.bitmap.Append(true)
	}
	vb.count++
}

func (vb *validityBuilder) appendNulls(n int) {
	if n <= 0 {
		return
	}
	if vb.nulls == 0 {
		vb.bitmap = memory.NewBitmap(vb.alloc, vb.count+n)
		vb.bitmap.AppendCount(true, vb.count)
	}
	vb.bitmap.AppendCount(false, n)
	vb.count += n
	vb.nulls += n
}

func (vb *validityBuilder) grow(n int) {
	if vb.nulls > 0 {
		vb.bitmap.Grow(n)
	}
}

// finish returns the accumulated bitmap and null count, and resets vb.
func (vb *validityBuilder) finish() (memory.Bitmap, int) {
	bitmap, nulls := vb.bitmap, vb.nulls
	*vb = validityBuilder{alloc: vb.alloc}
	return bitmap, nulls
}
