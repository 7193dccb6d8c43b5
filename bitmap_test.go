package bitcol

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmap_Basics(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		b := New()
		assert.True(t, b.IsEmpty())
		assert.Equal(t, uint64(0), b.Cardinality())

		_, ok := b.Minimum()
		assert.False(t, ok)
		_, ok = b.Maximum()
		assert.False(t, ok)
	})

	t.Run("add and contains", func(t *testing.T) {
		b := New()
		b.Add(1)
		b.Add(5)
		b.AddMany([]uint32{7, 9})

		assert.Equal(t, uint64(4), b.Cardinality())
		assert.True(t, b.Contains(1))
		assert.True(t, b.Contains(9))
		assert.False(t, b.Contains(2))
		assert.False(t, b.Contains(uint64(math.MaxUint32)+1))

		minV, ok := b.Minimum()
		require.True(t, ok)
		assert.Equal(t, uint64(1), minV)

		maxV, ok := b.Maximum()
		require.True(t, ok)
		assert.Equal(t, uint64(9), maxV)
	})

	t.Run("max uint32 member", func(t *testing.T) {
		b := BitmapOf(math.MaxUint32)
		maxV, ok := b.Maximum()
		require.True(t, ok)
		assert.Equal(t, uint64(math.MaxUint32), maxV)
	})

	t.Run("remove", func(t *testing.T) {
		b := BitmapOf(1, 2, 3)
		b.Remove(2)
		assert.False(t, b.Contains(2))
		assert.Equal(t, uint64(2), b.Cardinality())
	})
}

func TestBitmap_ContainsRange(t *testing.T) {
	tests := []struct {
		name     string
		members  []uint32
		start    uint64
		end      uint64
		expected bool
	}{
		{"full run", []uint32{5, 6, 7, 8}, 5, 9, true},
		{"sub run", []uint32{5, 6, 7, 8}, 6, 8, true},
		{"gap", []uint32{5, 6, 8}, 5, 9, false},
		{"missing start", []uint32{6, 7, 8}, 5, 9, false},
		{"missing end", []uint32{5, 6, 7}, 5, 9, false},
		{"empty interval", []uint32{5}, 7, 7, true},
		{"inverted interval", []uint32{5}, 9, 5, true},
		{"empty bitmap nonempty interval", nil, 0, 1, false},
		{"beyond uint32 space", []uint32{5}, 5, math.MaxUint32 + 2, false},
		{"run at zero", []uint32{0, 1, 2}, 0, 3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := BitmapOf(tc.members...)
			assert.Equal(t, tc.expected, b.ContainsRange(tc.start, tc.end))
		})
	}
}

func TestBitmap_IntersectsRange(t *testing.T) {
	b := BitmapOf(10, 20, 30)

	assert.True(t, b.IntersectsRange(15, 25))
	assert.True(t, b.IntersectsRange(30, 31))
	assert.False(t, b.IntersectsRange(11, 20))
	assert.False(t, b.IntersectsRange(31, 100))
	assert.False(t, b.IntersectsRange(20, 20))
	assert.False(t, b.IntersectsRange(math.MaxUint32+1, math.MaxUint32+10))
}

func TestBitmap_Clone(t *testing.T) {
	b := BitmapOf(1, 2, 3)
	c := b.Clone()
	c.Add(4)

	assert.Equal(t, uint64(3), b.Cardinality())
	assert.Equal(t, uint64(4), c.Cardinality())
}

func TestBitmap_InPlaceOps(t *testing.T) {
	t.Run("and", func(t *testing.T) {
		b := BitmapOf(1, 2, 3)
		b.And(BitmapOf(2, 3, 4))
		assert.Equal(t, []uint32{2, 3}, b.ToArray())
	})

	t.Run("or", func(t *testing.T) {
		b := BitmapOf(1, 2)
		b.Or(BitmapOf(3))
		assert.Equal(t, []uint32{1, 2, 3}, b.ToArray())
	})

	t.Run("andNot", func(t *testing.T) {
		b := BitmapOf(1, 2, 3)
		b.AndNot(BitmapOf(2))
		assert.Equal(t, []uint32{1, 3}, b.ToArray())
	})

	t.Run("xor", func(t *testing.T) {
		b := BitmapOf(1, 2, 3)
		b.Xor(BitmapOf(3, 4))
		assert.Equal(t, []uint32{1, 2, 4}, b.ToArray())
	})
}

func TestBitmap_Offset(t *testing.T) {
	t.Run("positive shift", func(t *testing.T) {
		b := BitmapOf(1, 2, 3)
		shifted := b.Offset(10)

		assert.Equal(t, []uint32{11, 12, 13}, shifted.ToArray())
		// Source untouched.
		assert.Equal(t, []uint32{1, 2, 3}, b.ToArray())
	})

	t.Run("negative shift", func(t *testing.T) {
		b := BitmapOf(10, 20)
		shifted := b.Offset(-5)
		assert.Equal(t, []uint32{5, 15}, shifted.ToArray())
	})

	t.Run("shift out of space drops", func(t *testing.T) {
		b := BitmapOf(1, 2)
		shifted := b.Offset(-2)
		assert.Equal(t, []uint32{0}, shifted.ToArray())
	})
}

func TestBitmap_Iterate(t *testing.T) {
	b := BitmapOf(3, 1, 2)

	var got []uint32
	b.Iterate(func(v uint32) bool {
		got = append(got, v)
		return true
	})
	assert.Equal(t, []uint32{1, 2, 3}, got)

	t.Run("early exit", func(t *testing.T) {
		var seen int
		b.Iterate(func(v uint32) bool {
			seen++
			return false
		})
		assert.Equal(t, 1, seen)
	})

	t.Run("iter.Seq", func(t *testing.T) {
		var got []uint64
		for v := range b.Iterator() {
			got = append(got, v)
		}
		assert.Equal(t, []uint64{1, 2, 3}, got)
	})
}

func TestBitmap_Serialization(t *testing.T) {
	b := BitmapOf(1, 100, 100000, math.MaxUint32)

	t.Run("bytes round trip", func(t *testing.T) {
		data, err := b.ToBytes()
		require.NoError(t, err)

		got, err := FromBytes(data)
		require.NoError(t, err)
		assert.True(t, b.Equals(got))
	})

	t.Run("writer round trip", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := b.WriteTo(&buf)
		require.NoError(t, err)

		got := New()
		_, err = got.ReadFrom(&buf)
		require.NoError(t, err)
		assert.True(t, b.Equals(got))
	})
}
