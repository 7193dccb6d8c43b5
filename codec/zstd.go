package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/bitcol"
)

// Zstd serializes bitmaps in the portable roaring format inside a zstd frame.
// Encoder and decoder are shared process-wide; both are safe for concurrent
// EncodeAll/DecodeAll use.
type Zstd struct{}

var (
	zstdInitOnce sync.Once
	zstdEnc      *zstd.Encoder
	zstdDec      *zstd.Decoder
	zstdInitErr  error
)

func zstdInit() error {
	zstdInitOnce.Do(func() {
		zstdEnc, zstdInitErr = zstd.NewWriter(nil)
		if zstdInitErr != nil {
			return
		}
		zstdDec, zstdInitErr = zstd.NewReader(nil)
	})
	return zstdInitErr
}

// Marshal implements Codec.
func (Zstd) Marshal(b *bitcol.Bitmap) ([]byte, error) {
	if err := zstdInit(); err != nil {
		return nil, fmt.Errorf("zstd init failed: %w", err)
	}
	raw, err := b.ToBytes()
	if err != nil {
		return nil, err
	}
	return zstdEnc.EncodeAll(raw, nil), nil
}

// Unmarshal implements Codec.
func (Zstd) Unmarshal(data []byte) (*bitcol.Bitmap, error) {
	if err := zstdInit(); err != nil {
		return nil, fmt.Errorf("zstd init failed: %w", err)
	}
	raw, err := zstdDec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress failed: %w", err)
	}
	return bitcol.FromBytes(raw)
}

// Name implements Codec.
func (Zstd) Name() string { return "zstd" }
