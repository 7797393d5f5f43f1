package dekoda

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Source abstracts over polymorphic input carriers for DecodeFrom. A Source
// yields one fully materialized raw value; syntax errors in the carrier are
// reported as a *DecodeError so every DecodeFrom outcome stays inside the
// one error model.
type Source interface {
	Value() (any, error)
}

// JSONBytes wraps a JSON document as a Source. Numbers materialize as
// float64.
func JSONBytes(b []byte) Source { return jsonBytesSource{b: b} }

// YAMLBytes wraps a YAML document as a Source. Mappings are normalized to
// map[string]any so the same decoders accept both carriers.
func YAMLBytes(b []byte) Source { return yamlBytesSource{b: b} }

// ValueOf wraps an already materialized value as a Source.
func ValueOf(v any) Source { return valueSource{v: v} }

type jsonBytesSource struct{ b []byte }

func (s jsonBytesSource) Value() (any, error) {
	var v any
	if err := json.Unmarshal(s.b, &v); err != nil {
		return nil, NewLeaf("JSON", string(s.b))
	}
	return v, nil
}

type yamlBytesSource struct{ b []byte }

func (s yamlBytesSource) Value() (any, error) {
	var v any
	if err := yaml.Unmarshal(s.b, &v); err != nil {
		return nil, NewLeaf("YAML", string(s.b))
	}
	return normalizeYAML(v), nil
}

type valueSource struct{ v any }

func (s valueSource) Value() (any, error) { return s.v, nil }

// normalizeYAML rewrites map[any]any nodes into map[string]any recursively.
// yaml.v3 already produces string-keyed maps for plain documents; this guards
// the non-string-key corners that older documents can still produce.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, vv := range t {
			t[k] = normalizeYAML(vv)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				ks = DisplayValue(k)
			}
			out[ks] = normalizeYAML(vv)
		}
		return out
	case []any:
		for i := range t {
			t[i] = normalizeYAML(t[i])
		}
		return t
	default:
		return v
	}
}
