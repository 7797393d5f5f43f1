package dsl

import (
	"context"

	dekoda "github.com/reoring/dekoda"
)

type fieldSpec struct {
	key string
	dec AnyDecoder
}

// TypeBuilder declares a record shape whose every field is decoded, present
// or not. Field declaration order is preserved and drives the order of
// accumulated failures.
type TypeBuilder struct {
	fields []fieldSpec
}

// Type creates a builder for a total record shape.
func Type() *TypeBuilder { return &TypeBuilder{} }

// Field registers a field decoder. Re-declaring a key replaces the decoder in
// place, keeping the original position.
func (b *TypeBuilder) Field(key string, ad AnyDecoder) *TypeBuilder {
	b.fields = setField(b.fields, key, ad)
	return b
}

// Build returns the record decoder.
func (b *TypeBuilder) Build() dekoda.Decoder[map[string]any] {
	fields := b.fields
	return dekoda.DecoderFunc[map[string]any](func(ctx context.Context, v any) (map[string]any, error) {
		return decodeFields(ctx, v, fields, "type", false)
	})
}

// PartialBuilder declares a record shape whose fields are decoded only when
// present; absent keys are omitted from the result entirely.
type PartialBuilder struct {
	fields []fieldSpec
}

// Partial creates a builder for a partial record shape.
func Partial() *PartialBuilder { return &PartialBuilder{} }

// Field registers a field decoder, replacing in place on re-declaration.
func (b *PartialBuilder) Field(key string, ad AnyDecoder) *PartialBuilder {
	b.fields = setField(b.fields, key, ad)
	return b
}

// Build returns the record decoder.
func (b *PartialBuilder) Build() dekoda.Decoder[map[string]any] {
	fields := b.fields
	return dekoda.DecoderFunc[map[string]any](func(ctx context.Context, v any) (map[string]any, error) {
		return decodeFields(ctx, v, fields, "partial", true)
	})
}

func setField(fields []fieldSpec, key string, ad AnyDecoder) []fieldSpec {
	for i := range fields {
		if fields[i].key == key {
			fields[i].dec = ad
			return fields
		}
	}
	return append(fields, fieldSpec{key: key, dec: ad})
}

// decodeFields is the shared exhaustive field loop: every declared field is
// visited even after an earlier failure so one decode surfaces every invalid
// field at once. The UnknownRecord precondition failure propagates verbatim.
func decodeFields(ctx context.Context, v any, fields []fieldSpec, expected string, skipAbsent bool) (map[string]any, error) {
	src, err := UnknownRecord().Decode(ctx, v)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(fields))
	var acc []dekoda.KeyEntry
	for _, f := range fields {
		val, present := src[f.key]
		if skipAbsent && !present {
			continue
		}
		parsed, err := f.dec.Decode(ctx, val)
		if err != nil {
			acc = append(acc, dekoda.KeyEntry{Key: f.key, Err: asDecodeErr(err, val)})
			continue
		}
		out[f.key] = parsed
	}
	if len(acc) > 0 {
		return nil, dekoda.NewLabeled(expected, v, acc)
	}
	return out, nil
}

// asDecodeErr coerces a child error into the tree model; decoders in this
// module only ever return *DecodeError, the fallback covers foreign
// DecoderFunc implementations.
func asDecodeErr(err error, actual any) *dekoda.DecodeError {
	if de, ok := dekoda.AsDecodeError(err); ok {
		return de
	}
	return dekoda.NewLeaf(err.Error(), actual)
}
