package dsl_test

import (
	"context"
	"encoding/json"
	"testing"

	dekoda "github.com/reoring/dekoda"
	d "github.com/reoring/dekoda/dsl"
)

func TestString_PassThrough(t *testing.T) {
	ctx := context.Background()

	v, err := d.String().Decode(ctx, "hello")
	if err != nil || v != "hello" {
		t.Fatalf("got v=%v err=%v", v, err)
	}

	_, err = d.String().Decode(ctx, 1)
	de, ok := dekoda.AsDecodeError(err)
	if !ok || de.Kind != dekoda.KindLeaf || de.Expected != "string" || de.Actual != 1 {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBoolean_PassThrough(t *testing.T) {
	ctx := context.Background()
	v, err := d.Boolean().Decode(ctx, true)
	if err != nil || v != true {
		t.Fatalf("got v=%v err=%v", v, err)
	}
	if _, err := d.Boolean().Decode(ctx, "nope"); err == nil {
		t.Fatalf("expected failure")
	}
}

func TestNumber_AcceptsNumericKinds(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		in   any
		want float64
	}{
		{float64(1.5), 1.5},
		{int(2), 2},
		{int64(3), 3},
		{uint8(4), 4},
		{json.Number("5.5"), 5.5},
	}
	for _, c := range cases {
		v, err := d.Number().Decode(ctx, c.in)
		if err != nil || v != c.want {
			t.Fatalf("in=%v got v=%v err=%v", c.in, v, err)
		}
	}

	_, err := d.Number().Decode(ctx, "1")
	de, _ := dekoda.AsDecodeError(err)
	if de == nil || de.Expected != "number" {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestInt_IntegerRefinement(t *testing.T) {
	ctx := context.Background()

	v, err := d.Int().Decode(ctx, float64(42))
	if err != nil || v != 42 {
		t.Fatalf("got v=%v err=%v", v, err)
	}

	// fractional value: the numeric value is reported, not the raw input
	_, err = d.Int().Decode(ctx, float64(1.5))
	de, _ := dekoda.AsDecodeError(err)
	if de == nil || de.Expected != "Int" || de.Actual != float64(1.5) {
		t.Fatalf("unexpected: %v", err)
	}

	// non-number: the base failure propagates unchanged
	_, err = d.Int().Decode(ctx, "x")
	de, _ = dekoda.AsDecodeError(err)
	if de == nil || de.Expected != "number" || de.Actual != "x" {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestUnknownContainers_IdentityPreserved(t *testing.T) {
	ctx := context.Background()

	arr := []any{1, "a"}
	got, err := d.UnknownArray().Decode(ctx, arr)
	if err != nil || len(got) != 2 || &got[0] != &arr[0] {
		t.Fatalf("expected the same backing slice, got %v err=%v", got, err)
	}

	rec := map[string]any{"k": 1}
	gotm, err := d.UnknownRecord().Decode(ctx, rec)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	gotm["k2"] = 2
	if _, ok := rec["k2"]; !ok {
		t.Fatalf("expected the same backing map")
	}

	if _, err := d.UnknownArray().Decode(ctx, "x"); err == nil {
		t.Fatalf("expected UnknownArray failure")
	}
	if _, err := d.UnknownRecord().Decode(ctx, []any{}); err == nil {
		t.Fatalf("expected UnknownRecord failure")
	}
}

func TestUnknownNeverNil(t *testing.T) {
	ctx := context.Background()

	if v, err := d.Unknown().Decode(ctx, 42); err != nil || v != 42 {
		t.Fatalf("Unknown must accept anything, got v=%v err=%v", v, err)
	}

	_, err := d.Never().Decode(ctx, 42)
	de, _ := dekoda.AsDecodeError(err)
	if de == nil || de.Expected != "never" || de.Actual != 42 {
		t.Fatalf("unexpected: %v", err)
	}

	if v, err := d.Nil().Decode(ctx, nil); err != nil || v != nil {
		t.Fatalf("Nil must accept nil, got v=%v err=%v", v, err)
	}
	if _, err := d.Nil().Decode(ctx, 0); err == nil {
		t.Fatalf("Nil must reject non-nil")
	}
}
