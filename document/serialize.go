package document

import (
	"fmt"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// Serialize renders v as compact JSON text. Object members are written in
// insertion order and numbers are written from their literal text, so a value
// obtained from Parse serializes back byte-for-byte up to whitespace.
func Serialize(v *Value) (string, error) {
	var sb strings.Builder
	if err := writeValue(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeValue(sb *strings.Builder, v *Value) error {
	switch v.kind {
	case kindNull:
		sb.WriteString("null")
	case kindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case kindNumber:
		sb.WriteString(v.num)
	case kindString:
		return writeString(sb, v.str)
	case kindObject:
		sb.WriteByte('{')
		for i, m := range v.obj {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeString(sb, m.Name); err != nil {
				return err
			}
			sb.WriteByte(':')
			if err := writeValue(sb, m.Value); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	case kindArray:
		sb.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeValue(sb, e); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	default:
		return fmt.Errorf("document: unknown value kind %d", v.kind)
	}
	return nil
}

// writeString defers escaping to the JSON encoder.
func writeString(sb *strings.Builder, s string) error {
	b, err := j.Marshal(s)
	if err != nil {
		return err
	}
	sb.Write(b)
	return nil
}
