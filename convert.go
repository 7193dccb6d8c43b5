package bitcol

import (
	"fmt"
	"iter"
	"math"

	"github.com/hupe1980/bitcol/internal/conv"
)

// ToBitmap converts v into a bitmap.
//
// Dispatch, in order:
//   - nil yields a new empty bitmap.
//   - An existing *Bitmap is returned as-is, without copying. Callers that
//     need an independent copy must use ToUniqueBitmap.
//   - A BitmapConvertible yields its own bitmap view, without copying.
//   - A RangeView (or RangeConvertible) is built through the range fast
//     path: empty range means empty bitmap, otherwise one bulk interval add.
//   - Integer slices and iter.Seq sequences are inserted element-wise; every
//     element must be representable as uint32 or the conversion fails with
//     ErrValueOutOfRange before anything escapes.
//
// Anything else fails with an UnsupportedConversionError.
func ToBitmap(v any) (*Bitmap, error) {
	switch x := v.(type) {
	case nil:
		return New(), nil
	case *Bitmap:
		return x, nil
	case BitmapConvertible:
		return x.AsBitmap(), nil
	case RangeView:
		return x.AsBitmap()
	case RangeConvertible:
		r, ok := x.AsRange()
		if !ok {
			return nil, &UnsupportedConversionError{Value: v}
		}
		return r.AsBitmap()
	case []uint32:
		b := New()
		b.rb.AddMany(x)
		return b, nil
	case []uint16:
		b := New()
		for _, e := range x {
			b.rb.Add(uint32(e))
		}
		return b, nil
	case []uint8:
		b := New()
		for _, e := range x {
			b.rb.Add(uint32(e))
		}
		return b, nil
	case []uint64:
		b := New()
		for _, e := range x {
			u, err := conv.Uint64ToUint32(e)
			if err != nil {
				return nil, err
			}
			b.rb.Add(u)
		}
		return b, nil
	case []uint:
		b := New()
		for _, e := range x {
			u, err := conv.UintToUint32(e)
			if err != nil {
				return nil, err
			}
			b.rb.Add(u)
		}
		return b, nil
	case []int:
		b := New()
		for _, e := range x {
			u, err := conv.IntToUint32(e)
			if err != nil {
				return nil, err
			}
			b.rb.Add(u)
		}
		return b, nil
	case []int64:
		b := New()
		for _, e := range x {
			u, err := conv.Int64ToUint32(e)
			if err != nil {
				return nil, err
			}
			b.rb.Add(u)
		}
		return b, nil
	case []int32:
		b := New()
		for _, e := range x {
			u, err := conv.Int32ToUint32(e)
			if err != nil {
				return nil, err
			}
			b.rb.Add(u)
		}
		return b, nil
	case []int16:
		b := New()
		for _, e := range x {
			u, err := conv.IntToUint32(int(e))
			if err != nil {
				return nil, err
			}
			b.rb.Add(u)
		}
		return b, nil
	case []int8:
		b := New()
		for _, e := range x {
			u, err := conv.IntToUint32(int(e))
			if err != nil {
				return nil, err
			}
			b.rb.Add(u)
		}
		return b, nil
	case iter.Seq[uint32]:
		b := New()
		for e := range x {
			b.rb.Add(e)
		}
		return b, nil
	case iter.Seq[uint64]:
		b := New()
		for e := range x {
			u, err := conv.Uint64ToUint32(e)
			if err != nil {
				return nil, err
			}
			b.rb.Add(u)
		}
		return b, nil
	default:
		return nil, &UnsupportedConversionError{Value: v}
	}
}

// ToUniqueBitmap converts v into a bitmap the caller may freely mutate.
// When v already is (or views) a bitmap, the result is a clone; a
// pre-existing bitmap never observes mutation through the returned value.
func ToUniqueBitmap(v any) (*Bitmap, error) {
	switch x := v.(type) {
	case *Bitmap:
		return x.Clone(), nil
	case BitmapConvertible:
		return x.AsBitmap().Clone(), nil
	default:
		return ToBitmap(v)
	}
}

// FromRange constructs a bitmap from the explicit interval [start, end) via
// the range fast path. start >= end yields an empty bitmap; an interval that
// leaves the uint32 member space fails with ErrValueOutOfRange.
func FromRange(start, end uint64) (*Bitmap, error) {
	b := New()
	if start >= end {
		return b, nil
	}
	if end > math.MaxUint32+1 {
		return nil, fmt.Errorf("%w: range end %d exceeds uint32 space", conv.ErrOutOfRange, end)
	}
	b.rb.AddRange(start, end)
	return b, nil
}
