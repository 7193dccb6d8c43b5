package codec

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitcol"
)

// BatchOptions configures the batch helpers.
type BatchOptions struct {
	// Concurrency bounds the number of bitmaps encoded or decoded at once.
	Concurrency int
}

// DefaultBatchOptions are the defaults for EncodeAll and DecodeAll.
var DefaultBatchOptions = BatchOptions{
	Concurrency: 8,
}

// EncodeAll marshals many bitmaps with bounded parallelism. Each bitmap is
// encoded independently on its own goroutine; no single encode is ever split
// across goroutines. The first failure cancels the remaining work.
func EncodeAll(ctx context.Context, c Codec, bitmaps []*bitcol.Bitmap, optFns ...func(o *BatchOptions)) ([][]byte, error) {
	if c == nil {
		c = Default
	}

	opts := DefaultBatchOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	out := make([][]byte, len(bitmaps))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, b := range bitmaps {
		g.Go(func() error {
			data, err := c.Marshal(b)
			if err != nil {
				return err
			}
			out[i] = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeAll unmarshals many payloads with bounded parallelism, mirroring
// EncodeAll.
func DecodeAll(ctx context.Context, c Codec, payloads [][]byte, optFns ...func(o *BatchOptions)) ([]*bitcol.Bitmap, error) {
	if c == nil {
		c = Default
	}

	opts := DefaultBatchOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	out := make([]*bitcol.Bitmap, len(payloads))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, data := range payloads {
		g.Go(func() error {
			b, err := c.Unmarshal(data)
			if err != nil {
				return err
			}
			out[i] = b
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
