package bitcol

import (
	"io"
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a compressed, sorted set of unsigned 32-bit integers.
// It wraps the official roaring implementation.
//
// All arithmetic the type exposes is widened to uint64: cardinality, minimum
// and maximum are always non-negative 64-bit values, regardless of how the
// engine stores members internally.
//
// A Bitmap is a mutable value holder without internal locking. Concurrent
// mutation of the same instance is out of contract; callers must serialize
// access or operate on independent clones.
type Bitmap struct {
	rb *roaring.Bitmap
}

// New creates a new empty bitmap.
func New() *Bitmap {
	return &Bitmap{
		rb: roaring.New(),
	}
}

// BitmapOf creates a bitmap containing the given members.
func BitmapOf(vals ...uint32) *Bitmap {
	return &Bitmap{
		rb: roaring.BitmapOf(vals...),
	}
}

// Add adds a member to the bitmap.
func (b *Bitmap) Add(v uint32) {
	b.rb.Add(v)
}

// AddMany adds all given members to the bitmap.
func (b *Bitmap) AddMany(vals []uint32) {
	b.rb.AddMany(vals)
}

// AddRange adds every integer in [start, end) to the bitmap.
// The interval must lie within the uint32 member space; end may be at most
// 1<<32. Use FromRange for a checked construction from untrusted bounds.
func (b *Bitmap) AddRange(start, end uint64) {
	b.rb.AddRange(start, end)
}

// Remove removes a member from the bitmap.
func (b *Bitmap) Remove(v uint32) {
	b.rb.Remove(v)
}

// Contains reports whether v is a member. Values outside the uint32 space
// are never members.
func (b *Bitmap) Contains(v uint64) bool {
	if v > math.MaxUint32 {
		return false
	}
	return b.rb.Contains(uint32(v))
}

// ContainsRange reports whether every integer in [start, end) is a member.
// The empty interval is trivially contained. The check is O(log n) via the
// engine's rank primitive, not a per-value membership scan.
func (b *Bitmap) ContainsRange(start, end uint64) bool {
	if start >= end {
		return true
	}
	if end > math.MaxUint32+1 {
		// Some value in the interval exceeds the member space.
		return false
	}
	card := b.rb.Rank(uint32(end - 1))
	if start > 0 {
		card -= b.rb.Rank(uint32(start - 1))
	}
	return card == end-start
}

// IntersectsRange reports whether the bitmap has at least one member in
// [start, end).
func (b *Bitmap) IntersectsRange(start, end uint64) bool {
	if start >= end {
		return false
	}
	if start > math.MaxUint32 {
		return false
	}
	if end > math.MaxUint32+1 {
		end = math.MaxUint32 + 1
	}
	return b.rb.IntersectsWithInterval(start, end)
}

// IsEmpty returns true if the bitmap has no members.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of members as a 64-bit count.
func (b *Bitmap) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// Minimum returns the smallest member. ok is false when the bitmap is empty.
func (b *Bitmap) Minimum() (uint64, bool) {
	if b.rb.IsEmpty() {
		return 0, false
	}
	return uint64(b.rb.Minimum()), true
}

// Maximum returns the largest member. ok is false when the bitmap is empty.
func (b *Bitmap) Maximum() (uint64, bool) {
	if b.rb.IsEmpty() {
		return 0, false
	}
	return uint64(b.rb.Maximum()), true
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{
		rb: b.rb.Clone(),
	}
}

// And intersects the bitmap in place with other.
func (b *Bitmap) And(other *Bitmap) {
	b.rb.And(other.rb)
}

// Or unions the bitmap in place with other.
func (b *Bitmap) Or(other *Bitmap) {
	b.rb.Or(other.rb)
}

// AndNot removes all members of other from the bitmap in place.
func (b *Bitmap) AndNot(other *Bitmap) {
	b.rb.AndNot(other.rb)
}

// Xor replaces the bitmap in place with the symmetric difference to other.
func (b *Bitmap) Xor(other *Bitmap) {
	b.rb.Xor(other.rb)
}

// Offset returns a new bitmap with every member shifted by delta.
// Members that would leave the uint32 space are handled by the engine
// (dropped, not wrapped). The receiver is untouched.
func (b *Bitmap) Offset(delta int64) *Bitmap {
	return &Bitmap{
		rb: roaring.AddOffset64(b.rb, delta),
	}
}

// Iterate calls fn for each member in ascending order, each exactly once.
// Iteration stops early when fn returns false.
func (b *Bitmap) Iterate(fn func(v uint32) bool) {
	b.rb.Iterate(fn)
}

// Iterator returns an iterator over the members in ascending order,
// widened to uint64.
func (b *Bitmap) Iterator() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(uint64(it.Next())) {
				return
			}
		}
	}
}

// ToArray returns all members as a sorted slice.
func (b *Bitmap) ToArray() []uint32 {
	return b.rb.ToArray()
}

// GetSizeInBytes returns the size of the bitmap in bytes.
func (b *Bitmap) GetSizeInBytes() uint64 {
	return b.rb.GetSizeInBytes()
}

// ToBytes serializes the bitmap in the portable roaring format.
func (b *Bitmap) ToBytes() ([]byte, error) {
	return b.rb.ToBytes()
}

// FromBytes deserializes a bitmap from the portable roaring format.
// The returned bitmap may share memory with data; do not reuse the buffer.
func FromBytes(data []byte) (*Bitmap, error) {
	rb := roaring.New()
	if _, err := rb.FromBuffer(data); err != nil {
		return nil, err
	}
	return &Bitmap{rb: rb}, nil
}

// WriteTo writes the bitmap to an io.Writer in the portable roaring format.
func (b *Bitmap) WriteTo(w io.Writer) (int64, error) {
	return b.rb.WriteTo(w)
}

// ReadFrom reads a bitmap from an io.Reader in the portable roaring format.
func (b *Bitmap) ReadFrom(r io.Reader) (int64, error) {
	return b.rb.ReadFrom(r)
}

// Equals reports whether both bitmaps have exactly the same members.
func (b *Bitmap) Equals(other *Bitmap) bool {
	return b.rb.Equals(other.rb)
}

// String returns a human-readable representation of the member set.
func (b *Bitmap) String() string {
	return b.rb.String()
}
