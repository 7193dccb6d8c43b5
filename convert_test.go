package bitcol

import (
	"iter"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contiguousBitmap is a test type exposing its own bitmap view.
type contiguousBitmap struct {
	b *Bitmap
}

func (c contiguousBitmap) AsBitmap() *Bitmap { return c.b }

func TestToBitmap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		b, err := ToBitmap(nil)
		require.NoError(t, err)
		assert.True(t, b.IsEmpty())
	})

	t.Run("bitmap identity", func(t *testing.T) {
		src := BitmapOf(1, 2)
		b, err := ToBitmap(src)
		require.NoError(t, err)
		assert.Same(t, src, b)
	})

	t.Run("bitmap convertible no copy", func(t *testing.T) {
		src := BitmapOf(1, 2)
		b, err := ToBitmap(contiguousBitmap{b: src})
		require.NoError(t, err)
		assert.Same(t, src, b)
	})

	t.Run("range view fast path", func(t *testing.T) {
		b, err := ToBitmap(RangeView{Start: 5, End: 9})
		require.NoError(t, err)
		assert.Equal(t, []uint32{5, 6, 7, 8}, b.ToArray())
	})

	t.Run("empty range", func(t *testing.T) {
		b, err := ToBitmap(RangeView{})
		require.NoError(t, err)
		assert.True(t, b.IsEmpty())
	})

	t.Run("slices", func(t *testing.T) {
		tests := []struct {
			name     string
			input    any
			expected []uint32
		}{
			{"[]uint32", []uint32{3, 1, 4, 1, 5}, []uint32{1, 3, 4, 5}},
			{"[]uint16", []uint16{2, 1}, []uint32{1, 2}},
			{"[]uint8", []uint8{255, 0}, []uint32{0, 255}},
			{"[]uint64", []uint64{7, math.MaxUint32}, []uint32{7, math.MaxUint32}},
			{"[]uint", []uint{9}, []uint32{9}},
			{"[]int", []int{5, 6}, []uint32{5, 6}},
			{"[]int64", []int64{8}, []uint32{8}},
			{"[]int32", []int32{1, math.MaxInt32}, []uint32{1, math.MaxInt32}},
			{"[]int16", []int16{3}, []uint32{3}},
			{"[]int8", []int8{4}, []uint32{4}},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				b, err := ToBitmap(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, b.ToArray())
			})
		}
	})

	t.Run("set semantics", func(t *testing.T) {
		b, err := ToBitmap([]uint32{3, 1, 4, 1, 5})
		require.NoError(t, err)
		assert.Equal(t, uint64(4), b.Cardinality())
		for _, v := range []uint64{1, 3, 4, 5} {
			assert.True(t, b.Contains(v))
		}
		assert.False(t, b.Contains(2))
	})

	t.Run("out of range", func(t *testing.T) {
		tests := []struct {
			name  string
			input any
		}{
			{"negative int", []int{1, -1}},
			{"negative int64", []int64{-7}},
			{"negative int32", []int32{-7}},
			{"large uint64", []uint64{uint64(math.MaxUint32) + 1}},
			{"large int64", []int64{int64(math.MaxUint32) + 1}},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ToBitmap(tc.input)
				assert.ErrorIs(t, err, ErrValueOutOfRange)
			})
		}
	})

	t.Run("iter.Seq", func(t *testing.T) {
		seq32 := iter.Seq[uint32](func(yield func(uint32) bool) {
			for _, v := range []uint32{2, 4} {
				if !yield(v) {
					return
				}
			}
		})
		b, err := ToBitmap(seq32)
		require.NoError(t, err)
		assert.Equal(t, []uint32{2, 4}, b.ToArray())

		seq64 := iter.Seq[uint64](func(yield func(uint64) bool) {
			yield(uint64(math.MaxUint32) + 1)
		})
		_, err = ToBitmap(seq64)
		assert.ErrorIs(t, err, ErrValueOutOfRange)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := ToBitmap("not a sequence")
		var ucErr *UnsupportedConversionError
		require.ErrorAs(t, err, &ucErr)
		assert.Contains(t, err.Error(), "string")
	})
}

func TestToUniqueBitmap(t *testing.T) {
	t.Run("clones existing bitmap", func(t *testing.T) {
		src := BitmapOf(1, 2)
		b, err := ToUniqueBitmap(src)
		require.NoError(t, err)
		assert.NotSame(t, src, b)

		b.Add(3)
		assert.False(t, src.Contains(3))
	})

	t.Run("clones bitmap view", func(t *testing.T) {
		src := BitmapOf(1)
		b, err := ToUniqueBitmap(contiguousBitmap{b: src})
		require.NoError(t, err)

		b.Add(2)
		assert.False(t, src.Contains(2))
	})

	t.Run("fresh construction passes through", func(t *testing.T) {
		b, err := ToUniqueBitmap([]uint32{7})
		require.NoError(t, err)
		assert.Equal(t, []uint32{7}, b.ToArray())
	})
}

func TestFromRange(t *testing.T) {
	t.Run("interval", func(t *testing.T) {
		b, err := FromRange(10, 13)
		require.NoError(t, err)
		assert.Equal(t, []uint32{10, 11, 12}, b.ToArray())
	})

	t.Run("empty", func(t *testing.T) {
		b, err := FromRange(5, 5)
		require.NoError(t, err)
		assert.True(t, b.IsEmpty())
	})

	t.Run("inverted", func(t *testing.T) {
		b, err := FromRange(9, 5)
		require.NoError(t, err)
		assert.True(t, b.IsEmpty())
	})

	t.Run("upper boundary", func(t *testing.T) {
		b, err := FromRange(math.MaxUint32, math.MaxUint32+1)
		require.NoError(t, err)
		assert.Equal(t, []uint32{math.MaxUint32}, b.ToArray())
	})

	t.Run("beyond uint32 space", func(t *testing.T) {
		_, err := FromRange(0, math.MaxUint32+2)
		assert.ErrorIs(t, err, ErrValueOutOfRange)
	})
}
