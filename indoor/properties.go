// SPDX-License-Identifier: MIT

package indoor

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Properties is free-form JSON-compatible metadata attached to cells, connections and
// the graph itself. No schema is enforced.
//
// Decoding keeps numbers as json.Number so that their literal text survives a
// decode/encode cycle unchanged. Encoding sorts object keys (encoding/json rules).
type Properties map[string]any

// UnmarshalJSON decodes an object while preserving number literals.
func (p *Properties) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return fmt.Errorf("properties: %w", err)
	}
	*p = m

	return nil
}

// Clone returns a deep copy of p. Nested maps and slices are copied; scalars are shared.
// A nil receiver clones to an empty, non-nil map.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			m[k] = cloneValue(vv)
		}
		return m
	case Properties:
		return t.Clone()
	case []any:
		s := make([]any, len(t))
		for i, vv := range t {
			s[i] = cloneValue(vv)
		}
		return s
	default:
		return v
	}
}

func cloneAll(ps []Properties) []Properties {
	out := make([]Properties, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}

	return out
}
