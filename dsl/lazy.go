package dsl

import (
	"context"
	"sync"

	dekoda "github.com/reoring/dekoda"
)

// Lazy defers decoder construction until first use, which lets a
// self-referential shape close over a forward reference to itself. The
// supplier runs at most once; the memoized decoder serves every later call,
// including reentrant calls from within the same decode.
func Lazy[A any](supplier func() dekoda.Decoder[A]) dekoda.Decoder[A] {
	var (
		once sync.Once
		dec  dekoda.Decoder[A]
	)
	return dekoda.DecoderFunc[A](func(ctx context.Context, v any) (A, error) {
		once.Do(func() { dec = supplier() })
		return dec.Decode(ctx, v)
	})
}
