package dsl

import (
	"context"
	"strconv"
	"strings"

	dekoda "github.com/reoring/dekoda"
)

// Union tries member decoders in declared order; the first success wins and
// later members are never invoked. When every member fails, the aggregate Or
// failure lists each member's error in declaration order. A zero-member
// union accepts nothing.
func Union(members ...AnyDecoder) dekoda.Decoder[any] {
	return dekoda.DecoderFunc[any](func(ctx context.Context, v any) (any, error) {
		if len(members) == 0 {
			return Never().Decode(ctx, v)
		}
		errs := make([]*dekoda.DecodeError, 0, len(members))
		for _, m := range members {
			parsed, err := m.Decode(ctx, v)
			if err == nil {
				return parsed, nil
			}
			errs = append(errs, asDecodeErr(err, v))
		}
		return nil, dekoda.NewOr("union", v, errs)
	})
}

// Intersect runs every member against the same input independently. Any
// failure yields an And error carrying each failed member's error in order.
// When all members succeed and every success is a plain record, the result is
// the shallow key union with later members winning conflicts; otherwise the
// last member's value is the result. A zero-member intersection returns the
// input unchanged.
func Intersect(members ...AnyDecoder) dekoda.Decoder[any] {
	return dekoda.DecoderFunc[any](func(ctx context.Context, v any) (any, error) {
		if len(members) == 0 {
			return v, nil
		}
		values := make([]any, 0, len(members))
		var errs []*dekoda.DecodeError
		for _, m := range members {
			parsed, err := m.Decode(ctx, v)
			if err != nil {
				errs = append(errs, asDecodeErr(err, v))
				continue
			}
			values = append(values, parsed)
		}
		if len(errs) > 0 {
			return nil, dekoda.NewAnd("intersection", v, errs)
		}
		return mergeIntersection(values), nil
	})
}

func mergeIntersection(values []any) any {
	records := make([]map[string]any, 0, len(values))
	for _, val := range values {
		m, ok := val.(map[string]any)
		if !ok {
			// non-record members are assumed structurally compatible; the
			// last successful value stands in for the whole intersection
			return values[len(values)-1]
		}
		records = append(records, m)
	}
	out := make(map[string]any)
	for _, m := range records {
		for k, vv := range m {
			out[k] = vv
		}
	}
	return out
}

// Variant pairs a discriminant tag with the decoder for that member shape.
type Variant struct {
	Tag     string
	Decoder dekoda.Decoder[map[string]any]
}

// Sum decodes a tagged record by reading the discriminant field and
// delegating the whole input to the matching variant's decoder. The
// discriminant is written back into the success defensively, so a variant
// that does not validate it itself still yields a well-tagged result. A
// missing, non-string or unrecognized discriminant fails with a Labeled
// error naming every declared tag. A zero-variant sum accepts nothing.
func Sum(field string, variants ...Variant) dekoda.Decoder[map[string]any] {
	tags := make([]string, 0, len(variants))
	byTag := make(map[string]dekoda.Decoder[map[string]any], len(variants))
	for _, vr := range variants {
		if _, seen := byTag[vr.Tag]; !seen {
			tags = append(tags, vr.Tag)
		}
		byTag[vr.Tag] = vr.Decoder
	}
	expectedTags := joinQuoted(tags)
	return dekoda.DecoderFunc[map[string]any](func(ctx context.Context, v any) (map[string]any, error) {
		if len(variants) == 0 {
			_, err := Never().Decode(ctx, v)
			return nil, err
		}
		src, err := UnknownRecord().Decode(ctx, v)
		if err != nil {
			return nil, err
		}
		dv := src[field]
		tag, ok := dv.(string)
		var member dekoda.Decoder[map[string]any]
		if ok {
			member = byTag[tag]
		}
		if member == nil {
			return nil, dekoda.NewLabeled("sum", v, []dekoda.KeyEntry{
				{Key: field, Err: dekoda.NewLeaf(expectedTags, dv)},
			})
		}
		out, err := member.Decode(ctx, v)
		if err != nil {
			return nil, err
		}
		out[field] = tag
		return out, nil
	})
}

func joinQuoted(tags []string) string {
	quoted := make([]string, len(tags))
	for i, t := range tags {
		quoted[i] = strconv.Quote(t)
	}
	return strings.Join(quoted, " | ")
}
