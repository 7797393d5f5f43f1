package dsl

import (
	"context"

	dekoda "github.com/reoring/dekoda"
)

// Array decodes every element of the input with the element decoder,
// accumulating per-index failures instead of stopping at the first.
func Array(elem AnyDecoder) dekoda.Decoder[[]any] {
	return dekoda.DecoderFunc[[]any](func(ctx context.Context, v any) ([]any, error) {
		src, err := UnknownArray().Decode(ctx, v)
		if err != nil {
			return nil, err
		}
		out := make([]any, 0, len(src))
		var acc []dekoda.IndexEntry
		for i := range src {
			parsed, err := elem.Decode(ctx, src[i])
			if err != nil {
				acc = append(acc, dekoda.IndexEntry{Index: i, Err: asDecodeErr(err, src[i])})
				continue
			}
			out = append(out, parsed)
		}
		if len(acc) > 0 {
			return nil, dekoda.NewIndexed("array", v, acc)
		}
		return out, nil
	})
}

// Tuple decodes a fixed-arity heterogeneous sequence. Position i is decoded
// with the i-th member; missing positions decode nil and extra trailing
// elements are ignored.
func Tuple(members ...AnyDecoder) dekoda.Decoder[[]any] {
	return dekoda.DecoderFunc[[]any](func(ctx context.Context, v any) ([]any, error) {
		src, err := UnknownArray().Decode(ctx, v)
		if err != nil {
			return nil, err
		}
		out := make([]any, 0, len(members))
		var acc []dekoda.IndexEntry
		for i, m := range members {
			var val any
			if i < len(src) {
				val = src[i]
			}
			parsed, err := m.Decode(ctx, val)
			if err != nil {
				acc = append(acc, dekoda.IndexEntry{Index: i, Err: asDecodeErr(err, val)})
				continue
			}
			out = append(out, parsed)
		}
		if len(acc) > 0 {
			return nil, dekoda.NewIndexed("tuple", v, acc)
		}
		return out, nil
	})
}
