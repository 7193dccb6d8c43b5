package bitcol

import "github.com/RoaringBitmap/roaring/v2"

// And returns the intersection of a and v as a new bitmap.
// v goes through ToBitmap; neither operand is mutated.
func And(a *Bitmap, v any) (*Bitmap, error) {
	other, err := ToBitmap(v)
	if err != nil {
		return nil, err
	}
	return &Bitmap{rb: roaring.And(a.rb, other.rb)}, nil
}

// Or returns the union of a and v as a new bitmap.
// v goes through ToBitmap; neither operand is mutated.
func Or(a *Bitmap, v any) (*Bitmap, error) {
	other, err := ToBitmap(v)
	if err != nil {
		return nil, err
	}
	return &Bitmap{rb: roaring.Or(a.rb, other.rb)}, nil
}

// AndNot returns the difference a minus v as a new bitmap.
// v goes through ToBitmap; neither operand is mutated.
func AndNot(a *Bitmap, v any) (*Bitmap, error) {
	other, err := ToBitmap(v)
	if err != nil {
		return nil, err
	}
	return &Bitmap{rb: roaring.AndNot(a.rb, other.rb)}, nil
}

// Xor returns the symmetric difference of a and v as a new bitmap.
// v goes through ToBitmap; neither operand is mutated.
func Xor(a *Bitmap, v any) (*Bitmap, error) {
	other, err := ToBitmap(v)
	if err != nil {
		return nil, err
	}
	return &Bitmap{rb: roaring.Xor(a.rb, other.rb)}, nil
}

// FoldUnion folds the operands into their union. Each operand goes through
// ToBitmap. The accumulator is a clone of the first operand, so
// caller-supplied bitmaps are never mutated. Zero operands fail with
// ErrEmptyOperands: these folds have no identity element.
func FoldUnion(operands ...any) (*Bitmap, error) {
	return foldBinary(operands, (*Bitmap).Or)
}

// FoldIntersect folds the operands into their intersection, with the same
// operand handling and cloning behavior as FoldUnion.
func FoldIntersect(operands ...any) (*Bitmap, error) {
	return foldBinary(operands, (*Bitmap).And)
}

func foldBinary(operands []any, apply func(acc, next *Bitmap)) (*Bitmap, error) {
	if len(operands) == 0 {
		return nil, ErrEmptyOperands
	}
	acc, err := ToUniqueBitmap(operands[0])
	if err != nil {
		return nil, err
	}
	for _, op := range operands[1:] {
		next, err := ToBitmap(op)
		if err != nil {
			return nil, err
		}
		apply(acc, next)
	}
	return acc, nil
}
