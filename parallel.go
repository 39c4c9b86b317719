package basexml

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// segmentBlocks is the number of chunks handed to one worker at a time.
const segmentBlocks = 16 << 10

// EncodeParallel encodes src into dst like Encode, spreading whole chunks over
// up to workers goroutines. workers < 1 means GOMAXPROCS. The output is
// identical to Encode.
func (enc *Encoding) EncodeParallel(ctx context.Context, dst, src []byte, workers int) (int, error) {
	body := len(src) / BlockSize * BlockSize
	encodedBody := body / BlockSize * EncodedBlockSize
	if len(dst) < enc.EncodedLen(len(src)) {
		panic("basexml: destination buffer too short")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism(workers))
	for off := 0; off < body; off += segmentBlocks * BlockSize {
		end := min(off+segmentBlocks*BlockSize, body)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			enc.Encode(dst[off/BlockSize*EncodedBlockSize:], src[off:end])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	n := encodedBody
	if body < len(src) {
		n += enc.encodeTail(dst[n:], src[body:])
	}
	return n, nil
}

// DecodeParallel decodes src into dst like Decode, spreading whole units over
// up to workers goroutines. The last unit before the termination sequence and
// anything after it go through the sequential decoder, so the result matches
// Decode and errors are of the same kinds. On error the content of dst is
// unspecified.
func (enc *Encoding) DecodeParallel(ctx context.Context, dst, src []byte, workers int) (int, error) {
	limit := len(src)
	for i := 0; i+GroupSize <= len(src); i += GroupSize {
		if isMarker(src[i:]) {
			limit = i
			break
		}
	}
	body := max(limit/EncodedBlockSize*EncodedBlockSize-EncodedBlockSize, 0)
	decodedBody := body / EncodedBlockSize * BlockSize
	if len(dst) < enc.MaxDecodedLen(len(src)) {
		panic("basexml: destination buffer too short")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism(workers))
	for off := 0; off < body; off += segmentBlocks * EncodedBlockSize {
		end := min(off+segmentBlocks*EncodedBlockSize, body)
		g.Go(func() error {
			for i := off; i < end; i += EncodedBlockSize {
				if (i-off)%(1024*EncodedBlockSize) == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				o := i / EncodedBlockSize * BlockSize
				if err := enc.DecodeBlock(dst[o:o+BlockSize], src[i:i+EncodedBlockSize]); err != nil {
					return fmt.Errorf("%w at offset %d", err, i)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	n, err := newFramer(enc, int64(body)).decode(dst[decodedBody:], src[body:])
	return decodedBody + n, err
}

func parallelism(workers int) int {
	if workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}
