package document

import (
	"fmt"
	"sort"
	"strconv"

	j "github.com/goccy/go-json"
)

// FromInterface builds a document value from the loosely typed trees produced
// by generic decoders. Map keys are emitted in sorted order since the source
// map carries none.
func FromInterface(in any) (*Value, error) {
	switch t := in.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case j.Number:
		return Number(t.String()), nil
	case int:
		return Int64(int64(t)), nil
	case int32:
		return Int(t), nil
	case int64:
		return Int64(t), nil
	case uint64:
		return Uint64(t), nil
	case float32:
		return Float(t), nil
	case float64:
		return Double(t), nil
	case []any:
		arr := NewArray()
		for _, e := range t {
			v, err := FromInterface(e)
			if err != nil {
				return nil, err
			}
			arr.Append(v)
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			v, err := FromInterface(t[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, v)
		}
		return obj, nil
	}
	return nil, fmt.Errorf("document: unsupported value of type %T", in)
}

// Interface converts v back into a loosely typed tree for generic encoders.
// Numbers come out as int64, uint64, or float64, tightest first.
func (v *Value) Interface() any {
	switch v.kind {
	case kindNull:
		return nil
	case kindBool:
		return v.b
	case kindString:
		return v.str
	case kindNumber:
		if i, err := strconv.ParseInt(v.num, 10, 64); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(v.num, 10, 64); err == nil {
			return u
		}
		f, _ := strconv.ParseFloat(v.num, 64)
		return f
	case kindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	case kindObject:
		out := make(map[string]any, len(v.obj))
		for _, m := range v.obj {
			out[m.Name] = m.Value.Interface()
		}
		return out
	}
	return nil
}
