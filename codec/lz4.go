package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/bitcol"
)

// LZ4 serializes bitmaps in the portable roaring format inside an lz4 frame.
type LZ4 struct{}

// Marshal implements Codec.
func (LZ4) Marshal(b *bitcol.Bitmap) ([]byte, error) {
	raw, err := b.ToBytes()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		return nil, fmt.Errorf("lz4 compress failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compress failed: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal implements Codec.
func (LZ4) Unmarshal(data []byte) (*bitcol.Bitmap, error) {
	raw, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress failed: %w", err)
	}
	return bitcol.FromBytes(raw)
}

// Name implements Codec.
func (LZ4) Name() string { return "lz4" }
