package dekoda

import (
	"context"
)

// Decoder validates an unknown input value and, on success, produces a typed
// value. Decoders are immutable once constructed and may be invoked any
// number of times concurrently; a failed Decode always returns a
// *DecodeError describing every structural reason the input was rejected.
type Decoder[A any] interface {
	Decode(ctx context.Context, v any) (A, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc[A any] func(ctx context.Context, v any) (A, error)

func (f DecoderFunc[A]) Decode(ctx context.Context, v any) (A, error) { return f(ctx, v) }

// Decode is a thin wrapper around Decoder.Decode for call-site symmetry with
// DecodeFrom.
func Decode[A any](ctx context.Context, d Decoder[A], v any) (A, error) {
	return d.Decode(ctx, v)
}

// SafeDecode decodes v into A, returning (zero, false) on failure.
func SafeDecode[A any](ctx context.Context, d Decoder[A], v any) (A, bool) {
	val, err := d.Decode(ctx, v)
	if err != nil {
		var zero A
		return zero, false
	}
	return val, true
}

// Is reports whether v conforms to the decoder d.
func Is[A any](ctx context.Context, d Decoder[A], v any) bool {
	_, err := d.Decode(ctx, v)
	return err == nil
}

// DecodeFrom materializes the source into a raw value and decodes it.
func DecodeFrom[A any](ctx context.Context, d Decoder[A], src Source) (A, error) {
	v, err := src.Value()
	if err != nil {
		var zero A
		return zero, err
	}
	return d.Decode(ctx, v)
}

// ---- Composition operators ----
//
// Map, Parse and Alt are the generic sequencing/alternative layer over the
// engine's two primitive outcomes. Structural combinators live in dsl/.

// Map transforms the success value of a decoder.
func Map[A, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return DecoderFunc[B](func(ctx context.Context, v any) (B, error) {
		a, err := d.Decode(ctx, v)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	})
}

// Parse chains a fallible transformation after a successful decode. When f
// returns an error that is not already a *DecodeError it is reported as a
// leaf whose actual is the intermediate value a.
func Parse[A, B any](d Decoder[A], f func(ctx context.Context, a A) (B, error)) Decoder[B] {
	return DecoderFunc[B](func(ctx context.Context, v any) (B, error) {
		a, err := d.Decode(ctx, v)
		if err != nil {
			var zero B
			return zero, err
		}
		b, err := f(ctx, a)
		if err != nil {
			var zero B
			if _, ok := AsDecodeError(err); ok {
				return zero, err
			}
			return zero, NewLeaf(err.Error(), a)
		}
		return b, nil
	})
}

// Alt falls back to the supplied alternative when d fails. The alternative's
// own failure is surfaced unchanged; nothing is ever discarded silently.
func Alt[A any](d Decoder[A], alt func() Decoder[A]) Decoder[A] {
	return DecoderFunc[A](func(ctx context.Context, v any) (A, error) {
		a, err := d.Decode(ctx, v)
		if err == nil {
			return a, nil
		}
		return alt().Decode(ctx, v)
	})
}
