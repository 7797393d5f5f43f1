package dsl

import (
	"context"
	"strings"

	dekoda "github.com/reoring/dekoda"
)

// Literals accepts exactly one of a fixed set of primitive values, compared
// by value. Numeric literals and numeric inputs compare through float64 so
// Go int literals match JSON numbers. An empty set accepts nothing.
func Literals(vals ...any) dekoda.Decoder[any] {
	expected := joinDisplays(vals)
	return dekoda.DecoderFunc[any](func(ctx context.Context, v any) (any, error) {
		if len(vals) == 0 {
			return Never().Decode(ctx, v)
		}
		for _, allowed := range vals {
			if literalEquals(v, allowed) {
				return v, nil
			}
		}
		return nil, dekoda.NewLeaf(expected, v)
	})
}

// LiteralsOr is sugar for Union(Literals(vals...), fallback).
func LiteralsOr(fallback AnyDecoder, vals ...any) dekoda.Decoder[any] {
	return Union(AnyOf(Literals(vals...)), fallback)
}

func joinDisplays(vals []any) string {
	displays := make([]string, len(vals))
	for i, v := range vals {
		displays[i] = dekoda.DisplayValue(v)
	}
	return strings.Join(displays, " | ")
}

// literalEquals compares primitive values, normalizing numerics so that
// int(1) and float64(1) match. Non-primitive inputs never match.
func literalEquals(u, allowed any) bool {
	if uf, ok := toFloat64(u); ok {
		af, ok := toFloat64(allowed)
		return ok && uf == af
	}
	switch u.(type) {
	case nil, bool, string:
		return u == allowed
	}
	return false
}
