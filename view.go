package bitcol

import "fmt"

// IndexedView adapts a bitmap's sorted member sequence to positional access:
// Get(i) yields the i-th smallest member (0-based) and Len equals the
// bitmap's cardinality.
//
// The bitmap engine has no native O(1) indexing, so construction materializes
// the full member array once, trading memory for O(1) lookups afterwards.
// This is a compatibility bridge for code that needs a Reader, not a
// performance-optimized path; inefficient but correct.
type IndexedView struct {
	values []uint32
}

// NewIndexedView materializes an indexable read-only view of the bitmap.
// Later mutation of the source bitmap is not reflected in the view.
func NewIndexedView(b *Bitmap) *IndexedView {
	return &IndexedView{
		values: b.rb.ToArray(),
	}
}

// Datatype returns the element datatype tag of the view.
func (v *IndexedView) Datatype() Datatype {
	return DatatypeUint32
}

// Len returns the number of elements in the view.
func (v *IndexedView) Len() uint64 {
	return uint64(len(v.values))
}

// Get returns the i-th smallest member, widened to uint64.
func (v *IndexedView) Get(i int) (uint64, error) {
	if i < 0 || i >= len(v.values) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(v.values))
	}
	return uint64(v.values[i]), nil
}

// Reader returns an indexable read-only view of the bitmap's members.
func (b *Bitmap) Reader() *IndexedView {
	return NewIndexedView(b)
}

// TagMembers pairs every member of the bitmap with the constant tag,
// producing one map entry per member. Members are unique by definition, so
// keys never collide. Map iteration order is undefined; callers must not rely
// on the ascending construction order.
func TagMembers[T any](b *Bitmap, tag T) map[uint64]T {
	m := make(map[uint64]T, b.rb.GetCardinality())
	b.rb.Iterate(func(x uint32) bool {
		m[uint64(x)] = tag
		return true
	})
	return m
}
