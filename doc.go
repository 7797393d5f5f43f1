package dekoda

// Package dekoda provides:
//
// - A compositional decoder engine: Decoder[A] validates an unknown value and
//   produces a typed result or a structured DecodeError tree
// - A stable error model: five tagged variants (leaf/indexed/labeled/and/or)
//   that accumulate every failure instead of stopping at the first
// - Draw, a multi-line human-readable report over DecodeError
// - Sources for JSON and YAML input via DecodeFrom
//
// Design policy:
// - Keep only public APIs in the root package; structural combinators live
//   under dsl/ and report wording under i18n/.
// - Decoding is pure and synchronous; a decoder may be shared across
//   goroutines freely.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  node := d.Type().
//      Field("value", d.NumberOf()).
//      Field("next", d.AnyOf(next)).
//      Build()
//  v, err := dekoda.DecodeFrom(ctx, node, dekoda.JSONBytes(data))
//  if de, ok := dekoda.AsDecodeError(err); ok {
//      fmt.Println(dekoda.Draw(de))
//  }
