package dsl

import (
	"context"
	"sort"

	dekoda "github.com/reoring/dekoda"
)

// Record decodes a homogeneous dictionary: every value present in the input
// is decoded with the value decoder, and the success keeps the input's key
// set. Go maps carry no enumeration order, so keys are visited sorted for
// deterministic failure ordering.
func Record(value AnyDecoder) dekoda.Decoder[map[string]any] {
	return dekoda.DecoderFunc[map[string]any](func(ctx context.Context, v any) (map[string]any, error) {
		src, err := UnknownRecord().Decode(ctx, v)
		if err != nil {
			return nil, err
		}
		keys := make([]string, 0, len(src))
		for k := range src {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]any, len(src))
		var acc []dekoda.KeyEntry
		for _, k := range keys {
			parsed, err := value.Decode(ctx, src[k])
			if err != nil {
				acc = append(acc, dekoda.KeyEntry{Key: k, Err: asDecodeErr(err, src[k])})
				continue
			}
			out[k] = parsed
		}
		if len(acc) > 0 {
			return nil, dekoda.NewLabeled("record", v, acc)
		}
		return out, nil
	})
}
