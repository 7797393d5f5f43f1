package dekoda

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind discriminates the DecodeError tree variants.
type ErrorKind int

const (
	KindLeaf    ErrorKind = iota // single mismatch at one location
	KindIndexed                  // per-position child failures
	KindLabeled                  // per-key child failures
	KindAnd                      // all intersection members failed
	KindOr                       // every union alternative failed
)

func (k ErrorKind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindIndexed:
		return "indexed"
	case KindLabeled:
		return "labeled"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	}
	return "unknown"
}

// IndexEntry pairs a sequence position with the failure observed there.
type IndexEntry struct {
	Index int
	Err   *DecodeError
}

// KeyEntry pairs a field key with the failure observed there.
type KeyEntry struct {
	Key string
	Err *DecodeError
}

// DecodeError is the structured description of a failed decode. It forms a
// tagged tree: Kind selects which of Indexed/Labeled/Members is populated,
// and Leaf populates none. Expected names the shape that was required and
// Actual holds the raw value examined at this node, unmodified.
//
// Composite nodes always carry at least one child; combinators collapse an
// empty accumulator into a success instead of constructing an empty node.
type DecodeError struct {
	Kind     ErrorKind
	Expected string
	Actual   any
	Indexed  []IndexEntry   // Kind == KindIndexed
	Labeled  []KeyEntry     // Kind == KindLabeled
	Members  []*DecodeError // Kind == KindAnd or KindOr
}

// NewLeaf reports a single shape mismatch.
func NewLeaf(expected string, actual any) *DecodeError {
	return &DecodeError{Kind: KindLeaf, Expected: expected, Actual: actual}
}

// NewIndexed reports failures at specific positions of a sequence-like input.
func NewIndexed(expected string, actual any, entries []IndexEntry) *DecodeError {
	return &DecodeError{Kind: KindIndexed, Expected: expected, Actual: actual, Indexed: entries}
}

// NewLabeled reports failures at specific named fields.
func NewLabeled(expected string, actual any, entries []KeyEntry) *DecodeError {
	return &DecodeError{Kind: KindLabeled, Expected: expected, Actual: actual, Labeled: entries}
}

// NewAnd reports that every listed intersection member failed.
func NewAnd(expected string, actual any, members []*DecodeError) *DecodeError {
	return &DecodeError{Kind: KindAnd, Expected: expected, Actual: actual, Members: members}
}

// NewOr reports that every listed alternative failed.
func NewOr(expected string, actual any, members []*DecodeError) *DecodeError {
	return &DecodeError{Kind: KindOr, Expected: expected, Actual: actual, Members: members}
}

// Error summarizes the first few leaves as "expected at /path" entries.
// Use Draw for the full multi-line report.
func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	const maxShown = 3
	type entry struct {
		path     string
		expected string
	}
	var leaves []entry
	total := 0
	var walk func(de *DecodeError, path string)
	walk = func(de *DecodeError, path string) {
		switch de.Kind {
		case KindLeaf:
			total++
			if len(leaves) < maxShown {
				p := path
				if p == "" {
					p = "/"
				}
				leaves = append(leaves, entry{path: p, expected: de.Expected})
			}
		case KindIndexed:
			for _, it := range de.Indexed {
				walk(it.Err, path+"/"+strconv.Itoa(it.Index))
			}
		case KindLabeled:
			for _, it := range de.Labeled {
				walk(it.Err, path+"/"+it.Key)
			}
		case KindAnd, KindOr:
			for _, m := range de.Members {
				walk(m, path)
			}
		}
	}
	walk(e, "")
	b := &strings.Builder{}
	for i, it := range leaves {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "expected %s at %s", it.expected, it.path)
	}
	if total > len(leaves) {
		fmt.Fprintf(b, "; ... (total %d)", total)
	}
	return b.String()
}

// AsDecodeError extracts a *DecodeError from an error using errors.As.
func AsDecodeError(err error) (*DecodeError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
