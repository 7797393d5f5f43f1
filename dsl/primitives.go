package dsl

import (
	"context"
	"encoding/json"
	"math"
	"reflect"
	"strconv"

	dekoda "github.com/reoring/dekoda"
)

// String returns the decoder accepting exactly string inputs.
func String() dekoda.Decoder[string] {
	return dekoda.DecoderFunc[string](func(ctx context.Context, v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", dekoda.NewLeaf("string", v)
		}
		return s, nil
	})
}

// Boolean returns the decoder accepting exactly bool inputs.
func Boolean() dekoda.Decoder[bool] {
	return dekoda.DecoderFunc[bool](func(ctx context.Context, v any) (bool, error) {
		b, ok := v.(bool)
		if !ok {
			return false, dekoda.NewLeaf("boolean", v)
		}
		return b, nil
	})
}

// Number returns the decoder accepting numeric inputs. JSON sources always
// materialize float64; direct Go ints, uints and json.Number are accepted as
// well and canonicalized to float64.
func Number() dekoda.Decoder[float64] {
	return dekoda.DecoderFunc[float64](func(ctx context.Context, v any) (float64, error) {
		f, ok := toFloat64(v)
		if !ok {
			return 0, dekoda.NewLeaf("number", v)
		}
		return f, nil
	})
}

// Int narrows Number to integer-valued inputs. A fractional value fails with
// the numeric value as the reported actual, not the original unknown input.
func Int() dekoda.Decoder[int] {
	return dekoda.Map(
		Refine(Number(), func(f float64) bool { return math.Trunc(f) == f }, "Int"),
		func(f float64) int { return int(f) },
	)
}

// UnknownArray returns the decoder accepting any []any input.
func UnknownArray() dekoda.Decoder[[]any] {
	return dekoda.DecoderFunc[[]any](func(ctx context.Context, v any) ([]any, error) {
		a, ok := v.([]any)
		if !ok {
			return nil, dekoda.NewLeaf("UnknownArray", v)
		}
		return a, nil
	})
}

// UnknownRecord returns the decoder accepting any map[string]any input.
func UnknownRecord() dekoda.Decoder[map[string]any] {
	return dekoda.DecoderFunc[map[string]any](func(ctx context.Context, v any) (map[string]any, error) {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, dekoda.NewLeaf("UnknownRecord", v)
		}
		return m, nil
	})
}

// Unknown returns the decoder that accepts every input unchanged.
func Unknown() dekoda.Decoder[any] {
	return dekoda.DecoderFunc[any](func(ctx context.Context, v any) (any, error) {
		return v, nil
	})
}

// Never returns the decoder that rejects every input.
func Never() dekoda.Decoder[any] {
	return dekoda.DecoderFunc[any](func(ctx context.Context, v any) (any, error) {
		return nil, dekoda.NewLeaf("never", v)
	})
}

// Nil returns the decoder accepting only nil.
func Nil() dekoda.Decoder[any] {
	return dekoda.DecoderFunc[any](func(ctx context.Context, v any) (any, error) {
		if v != nil {
			return nil, dekoda.NewLeaf("null", v)
		}
		return nil, nil
	})
}

// toFloat64 reports v as a float64 when v carries any numeric representation.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int, int8, int16, int32, int64:
		return float64(reflect.ValueOf(n).Int()), true
	case uint, uint8, uint16, uint32, uint64:
		return float64(reflect.ValueOf(n).Uint()), true
	case json.Number:
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
