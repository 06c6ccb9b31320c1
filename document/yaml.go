package document

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML parses YAML text into a document value. Mapping keys must be
// strings; non-string keys are rejected rather than coerced.
func FromYAML(data []byte) (*Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &SyntaxError{Cause: err}
	}
	norm, err := normalizeYAML(raw)
	if err != nil {
		return nil, err
	}
	return FromInterface(norm)
}

// normalizeYAML rewrites the yaml.v3 decode shape into the map[string]any form
// FromInterface expects, walking nested containers.
func normalizeYAML(in any) (any, error) {
	switch t := in.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, v := range t {
			nv, err := normalizeYAML(v)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, v := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("document: non-string mapping key %v", k)
			}
			nv, err := normalizeYAML(v)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, v := range t {
			nv, err := normalizeYAML(v)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	default:
		return in, nil
	}
}

// ToYAML renders v as YAML text.
func ToYAML(v *Value) ([]byte, error) {
	return yaml.Marshal(v.Interface())
}
