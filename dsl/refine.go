package dsl

import (
	"context"

	dekoda "github.com/reoring/dekoda"
)

// Refine narrows a decoder's successes with an additional predicate. A base
// failure propagates unchanged; a predicate miss reports the already-decoded
// value under the given expected label.
func Refine[A any](base dekoda.Decoder[A], pred func(A) bool, expected string) dekoda.Decoder[A] {
	return dekoda.DecoderFunc[A](func(ctx context.Context, v any) (A, error) {
		a, err := base.Decode(ctx, v)
		if err != nil {
			var zero A
			return zero, err
		}
		if !pred(a) {
			var zero A
			return zero, dekoda.NewLeaf(expected, a)
		}
		return a, nil
	})
}
