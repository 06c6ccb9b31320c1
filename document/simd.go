//go:build simdjson

package document

import (
	"bytes"
	"fmt"

	"github.com/minio/simdjson-go"
)

// ParseSIMD parses data with the SIMD-accelerated backend. Hosts without the
// required instruction set fall back to the streaming parser, so callers can
// use it unconditionally.
func ParseSIMD(data []byte) (*Value, error) {
	if !simdjson.SupportedCPU() {
		return Parse(data)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}
	pj, err := simdjson.Parse(data, nil)
	if err != nil {
		return nil, &SyntaxError{Cause: err}
	}
	iter := pj.Iter()
	switch iter.Advance() {
	case simdjson.TypeRoot:
		_, root, err := iter.Root(nil)
		if err != nil {
			return nil, &SyntaxError{Cause: err}
		}
		return simdValue(root)
	case simdjson.TypeNone:
		return nil, &SyntaxError{Cause: fmt.Errorf("no root element")}
	default:
		return simdValue(&iter)
	}
}

func simdValue(it *simdjson.Iter) (*Value, error) {
	switch it.Type() {
	case simdjson.TypeNull:
		return Null(), nil
	case simdjson.TypeBool:
		b, err := it.Bool()
		if err != nil {
			return nil, err
		}
		return Bool(b), nil
	case simdjson.TypeInt:
		n, err := it.Int()
		if err != nil {
			return nil, err
		}
		return Int64(n), nil
	case simdjson.TypeUint:
		u, err := it.Uint()
		if err != nil {
			return nil, err
		}
		return Uint64(u), nil
	case simdjson.TypeFloat:
		f, err := it.Float()
		if err != nil {
			return nil, err
		}
		return Double(f), nil
	case simdjson.TypeString:
		s, err := it.String()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case simdjson.TypeObject:
		obj, err := it.Object(nil)
		if err != nil {
			return nil, err
		}
		out := NewObject()
		var ferr error
		obj.ForEach(func(key []byte, elem simdjson.Iter) {
			if ferr != nil {
				return
			}
			v, err := simdValue(&elem)
			if err != nil {
				ferr = err
				return
			}
			out.Set(string(key), v)
		}, nil)
		if ferr != nil {
			return nil, ferr
		}
		return out, nil
	case simdjson.TypeArray:
		arr, err := it.Array(nil)
		if err != nil {
			return nil, err
		}
		out := NewArray()
		ai := arr.Iter()
		for {
			typ := ai.Advance()
			if typ == simdjson.TypeNone {
				break
			}
			v, err := simdValue(&ai)
			if err != nil {
				return nil, err
			}
			out.Append(v)
		}
		return out, nil
	}
	return nil, fmt.Errorf("document: unexpected element type %v", it.Type())
}
