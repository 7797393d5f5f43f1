// Package dsl provides the structural combinators of dekoda: primitives,
// refinements, record/partial builders, homogeneous records, arrays, tuples,
// unions, intersections, tagged sums, literals and lazy self-reference.
//
// Every combinator decodes exhaustively where the shape allows it: a record
// or array with several invalid members reports all of them in one failure.
// Union is the only short-circuiting combinator, returning the first
// member's success.
package dsl
