package codec

import "github.com/hupe1980/bitcol"

// Raw serializes bitmaps in the engine's portable roaring format without
// compression.
type Raw struct{}

// Marshal implements Codec.
func (Raw) Marshal(b *bitcol.Bitmap) ([]byte, error) {
	return b.ToBytes()
}

// Unmarshal implements Codec.
func (Raw) Unmarshal(data []byte) (*bitcol.Bitmap, error) {
	return bitcol.FromBytes(data)
}

// Name implements Codec.
func (Raw) Name() string { return "raw" }
