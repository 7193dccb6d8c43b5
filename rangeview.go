package bitcol

import (
	"fmt"
	"iter"
	"math"

	"github.com/hupe1980/bitcol/internal/conv"
)

// RangeView is a half-open interval [Start, End) of unsigned integers with
// unit step. It is a derived, read-only view: AsRange produces one only when
// every integer in the interval is a member of the source bitmap and no
// others are.
type RangeView struct {
	Start uint64
	End   uint64
}

// Datatype returns the element datatype tag of the range.
func (r RangeView) Datatype() Datatype {
	return DatatypeUint32
}

// Len returns the number of integers in the interval.
func (r RangeView) Len() uint64 {
	if r.Start >= r.End {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty returns true if the interval contains no integers.
func (r RangeView) IsEmpty() bool {
	return r.Start >= r.End
}

// Contains reports whether v lies in [Start, End).
func (r RangeView) Contains(v uint64) bool {
	return v >= r.Start && v < r.End
}

// AsRange returns the view itself; a range is trivially contiguous.
func (r RangeView) AsRange() (RangeView, bool) {
	return r, true
}

// Values returns an iterator over the integers in ascending order.
func (r RangeView) Values() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for v := r.Start; v < r.End; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// AsBitmap materializes the interval as a bitmap via one bulk interval add.
// It fails when the interval leaves the uint32 member space.
func (r RangeView) AsBitmap() (*Bitmap, error) {
	b := New()
	if r.Start >= r.End {
		return b, nil
	}
	if r.End > math.MaxUint32+1 {
		return nil, fmt.Errorf("%w: range end %d exceeds uint32 space", conv.ErrOutOfRange, r.End)
	}
	b.rb.AddRange(r.Start, r.End)
	return b, nil
}

// String returns a human-readable representation of the interval.
func (r RangeView) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// AsRange inspects the bitmap's occupied set and reports whether it forms one
// contiguous interval. An empty bitmap yields the empty range [0,0). The
// contiguity test uses the engine's interval-containment primitive and is
// O(log n), never a per-value scan.
func (b *Bitmap) AsRange() (RangeView, bool) {
	minV, ok := b.Minimum()
	if !ok {
		return RangeView{}, true
	}
	maxV, _ := b.Maximum()
	start, end := minV, maxV+1
	if !b.ContainsRange(start, end) {
		return RangeView{}, false
	}
	return RangeView{Start: start, End: end}, true
}

// AsRange converts v to its bitmap form and detects whether the occupied set
// is one contiguous interval. ok is false for a non-contiguous bitmap; the
// error reports a failed conversion. An empty input never errors and yields
// the empty range [0,0).
func AsRange(v any) (RangeView, bool, error) {
	b, err := ToBitmap(v)
	if err != nil {
		return RangeView{}, false, err
	}
	r, ok := b.AsRange()
	return r, ok, nil
}
