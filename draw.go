package dekoda

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/dekoda/i18n"
)

// Draw renders a DecodeError as an indented multi-line report. Each node
// contributes one "Cannot decode <actual>, expected <expected>" line; child
// failures are indented one level under their parent, prefixed with their
// position "(2)" or key "(\"name\")" when the node is positional or keyed.
// The result is a pure function of the error value; callers decide where to
// print it.
func Draw(e *DecodeError) string {
	if e == nil {
		return ""
	}
	b := &strings.Builder{}
	drawNode(b, e, 0, "")
	return b.String()
}

func drawNode(b *strings.Builder, e *DecodeError, depth int, prefix string) {
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString(prefix)
	b.WriteString(i18n.T(i18n.CodeCannotDecode, map[string]string{
		"actual":   DisplayValue(e.Actual),
		"expected": e.Expected,
	}))
	switch e.Kind {
	case KindIndexed:
		for _, it := range e.Indexed {
			drawNode(b, it.Err, depth+1, "("+strconv.Itoa(it.Index)+") ")
		}
	case KindLabeled:
		for _, it := range e.Labeled {
			drawNode(b, it.Err, depth+1, "("+strconv.Quote(it.Key)+") ")
		}
	case KindAnd, KindOr:
		for _, m := range e.Members {
			drawNode(b, m, depth+1, "")
		}
	}
}

// DisplayValue renders a raw value the way the report shows it: JSON when the
// value marshals, a %v fallback otherwise.
func DisplayValue(v any) string {
	bs, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bs)
}
