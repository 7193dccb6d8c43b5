package bitcol

// StepFunc is one step of a fold. It receives the running accumulator and the
// next member (widened to uint64, ascending, each exactly once) and returns
// the updated accumulator. Returning false short-circuits the fold: the step
// function is never invoked again and the accumulator is returned as-is.
//
// The engine's iteration primitive supports true early exit, so a
// short-circuited fold stops the underlying pass instead of draining the
// remaining members into a no-op sink.
type StepFunc[A any] func(acc A, v uint64) (A, bool)

// Reduce folds the bitmap's members into seed, least value first.
// Reducing an empty bitmap returns seed without invoking fn.
func Reduce[A any](b *Bitmap, seed A, fn StepFunc[A]) A {
	acc := seed
	b.rb.Iterate(func(x uint32) bool {
		var cont bool
		acc, cont = fn(acc, uint64(x))
		return cont
	})
	return acc
}

// ReduceValues folds the bitmap's members without an explicit seed.
//
// An empty bitmap returns identity(). Otherwise the first member seeds the
// accumulator directly, without invoking fn, and the remaining members are
// folded as in Reduce; a singleton bitmap therefore returns its single member
// with fn never invoked.
func ReduceValues(b *Bitmap, identity func() uint64, fn StepFunc[uint64]) uint64 {
	if b.rb.IsEmpty() {
		return identity()
	}
	var acc uint64
	seeded := false
	b.rb.Iterate(func(x uint32) bool {
		if !seeded {
			acc = uint64(x)
			seeded = true
			return true
		}
		var cont bool
		acc, cont = fn(acc, uint64(x))
		return cont
	})
	return acc
}
