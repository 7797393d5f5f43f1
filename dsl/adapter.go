package dsl

import (
	"context"

	dekoda "github.com/reoring/dekoda"
)

// AnyDecoder adapts a Decoder[A] to an any-typed DSL wrapper so decoders of
// heterogeneous types can sit side by side inside Type/Partial/Tuple/Union
// declarations. It implements dekoda.Decoder[any].
type AnyDecoder struct {
	decode func(context.Context, any) (any, error)
}

// AnyOf wraps a strongly typed decoder as an AnyDecoder for field builders.
func AnyOf[A any](d dekoda.Decoder[A]) AnyDecoder {
	return AnyDecoder{decode: func(ctx context.Context, v any) (any, error) {
		a, err := d.Decode(ctx, v)
		if err != nil {
			return nil, err
		}
		return a, nil
	}}
}

func (ad AnyDecoder) Decode(ctx context.Context, v any) (any, error) {
	return ad.decode(ctx, v)
}

// ---- field sugar ----

// StringOf returns the string primitive pre-erased for field declarations.
func StringOf() AnyDecoder { return AnyOf[string](String()) }

// NumberOf returns the number primitive pre-erased for field declarations.
func NumberOf() AnyDecoder { return AnyOf[float64](Number()) }

// BooleanOf returns the boolean primitive pre-erased for field declarations.
func BooleanOf() AnyDecoder { return AnyOf[bool](Boolean()) }

// IntOf returns the Int refinement pre-erased for field declarations.
func IntOf() AnyDecoder { return AnyOf[int](Int()) }

// Nullable wraps an AnyDecoder to accept nil: a nil input succeeds with nil,
// anything else is decoded by the underlying decoder.
func Nullable(ad AnyDecoder) AnyDecoder {
	prev := ad.decode
	return AnyDecoder{decode: func(ctx context.Context, v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		return prev(ctx, v)
	}}
}

// Nullable enables fluent chaining: d.StringOf().Nullable()
func (ad AnyDecoder) Nullable() AnyDecoder { return Nullable(ad) }
