// Package codec centralizes bitmap snapshot encoding.
//
// Every codec serializes the engine's own portable roaring format; the
// non-raw codecs additionally wrap the payload in a standard compression
// frame (zstd or lz4). No bespoke file format is introduced.
//
// Codec selection is a breaking-change boundary: bytes produced by one codec
// do not decode with another, so persistent stores should record the codec
// name (see ByName) alongside the payload.
package codec

import (
	"fmt"

	"github.com/hupe1980/bitcol"
)

// Codec encodes/decodes bitmaps.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(b *bitcol.Bitmap) ([]byte, error)
	Unmarshal(data []byte) (*bitcol.Bitmap, error)
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = Zstd{}

// ByName returns a built-in codec by its stable name.
//
// This is used by self-describing persistence formats that store the codec
// name in their header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "raw":
		return Raw{}, true
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, b *bitcol.Bitmap) []byte {
	if c == nil {
		c = Default
	}
	data, err := c.Marshal(b)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return data
}
