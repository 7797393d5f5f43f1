package dekoda_test

import (
	"context"
	"strings"
	"testing"
	"time"

	dekoda "github.com/reoring/dekoda"
	d "github.com/reoring/dekoda/dsl"
)

func TestMap_TransformsSuccess(t *testing.T) {
	ctx := context.Background()
	upper := dekoda.Map(d.String(), strings.ToUpper)

	v, err := upper.Decode(ctx, "abc")
	if err != nil || v != "ABC" {
		t.Fatalf("got v=%v err=%v", v, err)
	}

	_, err = upper.Decode(ctx, 1)
	de, ok := dekoda.AsDecodeError(err)
	if !ok || de.Expected != "string" {
		t.Fatalf("expected base failure to propagate, got %v", err)
	}
}

func TestParse_ChainsFallibleTransform(t *testing.T) {
	ctx := context.Background()
	dateFromString := dekoda.Parse(d.String(), func(ctx context.Context, s string) (time.Time, error) {
		return time.Parse(time.RFC3339, s)
	})

	ts, err := dateFromString.Decode(ctx, "2024-01-02T03:04:05Z")
	if err != nil || ts.Year() != 2024 {
		t.Fatalf("got ts=%v err=%v", ts, err)
	}

	_, err = dateFromString.Decode(ctx, "not-a-date")
	de, ok := dekoda.AsDecodeError(err)
	if !ok || de.Kind != dekoda.KindLeaf {
		t.Fatalf("expected leaf from chained failure, got %v", err)
	}
	if de.Actual != "not-a-date" {
		t.Fatalf("actual should be the intermediate value, got %v", de.Actual)
	}

	_, err = dateFromString.Decode(ctx, 1)
	if de, _ := dekoda.AsDecodeError(err); de == nil || de.Expected != "string" {
		t.Fatalf("expected base failure to propagate, got %v", err)
	}
}

func TestAlt_FallsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	dec := dekoda.Alt[any](
		d.AnyOf(d.String()),
		func() dekoda.Decoder[any] { return d.AnyOf(d.Number()) },
	)

	if v, err := dec.Decode(ctx, "s"); err != nil || v != "s" {
		t.Fatalf("primary success expected, got v=%v err=%v", v, err)
	}
	if v, err := dec.Decode(ctx, float64(2)); err != nil || v != float64(2) {
		t.Fatalf("fallback success expected, got v=%v err=%v", v, err)
	}

	_, err := dec.Decode(ctx, true)
	de, ok := dekoda.AsDecodeError(err)
	if !ok || de.Expected != "number" {
		t.Fatalf("alternative failure must surface, got %v", err)
	}
}

func TestAlt_SkipsAlternativeOnSuccess(t *testing.T) {
	ctx := context.Background()
	called := false
	dec := dekoda.Alt[string](d.String(), func() dekoda.Decoder[string] {
		called = true
		return d.String()
	})
	if _, err := dec.Decode(ctx, "ok"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if called {
		t.Fatalf("alternative supplier must not run on success")
	}
}

func TestSafeDecodeAndIs(t *testing.T) {
	ctx := context.Background()

	if v, ok := dekoda.SafeDecode[string](ctx, d.String(), "x"); !ok || v != "x" {
		t.Fatalf("got v=%v ok=%v", v, ok)
	}
	if _, ok := dekoda.SafeDecode[string](ctx, d.String(), 1); ok {
		t.Fatalf("expected failure")
	}
	if !dekoda.Is[bool](ctx, d.Boolean(), true) || dekoda.Is[bool](ctx, d.Boolean(), "no") {
		t.Fatalf("Is mismatch")
	}
}

func TestDecode_Wrapper(t *testing.T) {
	ctx := context.Background()
	v, err := dekoda.Decode[string](ctx, d.String(), "x")
	if err != nil || v != "x" {
		t.Fatalf("got v=%v err=%v", v, err)
	}
}
