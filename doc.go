// Package bitcol integrates compressed roaring bitmaps into a generic
// numeric-container model, so a bitmap can stand in for arrays, ranges and
// other sequence types wherever a readable, reducible or set-algebraic
// collection is expected.
//
// The compressed bitset engine itself is external
// (github.com/RoaringBitmap/roaring/v2); bitcol is the integration and
// algorithmic layer on top of it:
//
//   - Conversion of arbitrary sequences and ranges into bitmaps (ToBitmap,
//     ToUniqueBitmap, FromRange), with fail-fast range checking.
//   - Detection of bitmaps that are secretly one contiguous interval
//     (AsRange), enabling a cheap RangeView representation.
//   - A single-pass fold over the engine's native iteration primitive
//     (Reduce, ReduceValues) with short-circuit support.
//   - Bulk set algebra across many bitmap-convertible values (FoldUnion,
//     FoldIntersect and the binary And/Or/AndNot/Xor).
//   - Read-side views: IndexedView for positional access and TagMembers for
//     constant-value tagging.
//
// All member values live in the unsigned 32-bit space. Everything the package
// reports to callers (cardinality, minimum, maximum, reduced values) is
// widened to uint64 and is never negative.
//
// # Quick Start
//
//	b, _ := bitcol.ToBitmap([]int{5, 6, 7, 8})
//	r, ok := b.AsRange()            // RangeView{Start: 5, End: 9}, true
//
//	sum := bitcol.Reduce(b, uint64(0), func(acc, v uint64) (uint64, bool) {
//	    return acc + v, true
//	})
//
//	u, _ := bitcol.FoldUnion(b, []uint32{100, 200}, bitcol.RangeView{Start: 10, End: 20})
//
// Bitmaps are mutable value holders without internal locking. The safety rule
// is: never mutate a bitmap you did not just clone or freshly construct.
// Every bitcol operation that needs an in-place mutator applies it to a clone
// or to a bitmap it built itself.
package bitcol
