package bitcol

// Datatype tags the element type of a container. The generic container model
// dispatches on this tag instead of reflecting over concrete Go types.
type Datatype uint8

const (
	// DatatypeInvalid represents an invalid datatype.
	DatatypeInvalid Datatype = iota
	// DatatypeUint32 represents the unsigned 32-bit member space of a Bitmap.
	DatatypeUint32
	// DatatypeUser is the first tag available for caller-defined container
	// types registered with a Registry.
	DatatypeUser Datatype = 64
)

// String returns the name of the datatype.
func (d Datatype) String() string {
	switch d {
	case DatatypeUint32:
		return "uint32"
	case DatatypeInvalid:
		return "invalid"
	default:
		return "user"
	}
}

// Container is the minimal surface of any finite numeric collection:
// an element datatype tag and a 64-bit element count.
type Container interface {
	Datatype() Datatype
	Len() uint64
}

// Reader is a container with positional access: Get(i) yields the i-th
// smallest element (0-based), widened to uint64.
type Reader interface {
	Container
	Get(i int) (uint64, error)
}

// SetLike is a container exposing a membership predicate over the widened
// value space.
type SetLike interface {
	Contains(v uint64) bool
}

// BitSetLike is a set that additionally answers interval queries and
// constant-time min/max. ok is false on an empty set.
type BitSetLike interface {
	SetLike
	ContainsRange(start, end uint64) bool
	IntersectsRange(start, end uint64) bool
	Minimum() (v uint64, ok bool)
	Maximum() (v uint64, ok bool)
}

// RangeConvertible is implemented by containers that may be exactly one
// contiguous interval. ok is false when the occupied set is not contiguous.
type RangeConvertible interface {
	AsRange() (r RangeView, ok bool)
}

// BitmapConvertible is implemented by containers that can expose themselves
// as a bitmap without copying. Callers must not mutate the returned bitmap;
// use ToUniqueBitmap for an independent copy.
type BitmapConvertible interface {
	AsBitmap() *Bitmap
}

// Compile-time protocol conformance for the concrete container types.
var (
	_ Container         = (*Bitmap)(nil)
	_ SetLike           = (*Bitmap)(nil)
	_ BitSetLike        = (*Bitmap)(nil)
	_ BitmapConvertible = (*Bitmap)(nil)
	_ RangeConvertible  = (*Bitmap)(nil)

	_ Container        = RangeView{}
	_ SetLike          = RangeView{}
	_ RangeConvertible = RangeView{}

	_ Reader = (*IndexedView)(nil)
)

// Datatype returns the element datatype tag of the bitmap.
func (b *Bitmap) Datatype() Datatype {
	return DatatypeUint32
}

// Len returns the element count. It equals Cardinality.
func (b *Bitmap) Len() uint64 {
	return b.rb.GetCardinality()
}

// AsBitmap returns the bitmap itself (identity, no copy).
func (b *Bitmap) AsBitmap() *Bitmap {
	return b
}
