package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

// ErrEmptyInput is returned by Parse for input that is empty or all whitespace.
var ErrEmptyInput = errors.New("The JSON string to be parsed is empty")

// SyntaxError reports malformed JSON text. The underlying decoder failure is
// kept as the cause; the surface message is stable.
type SyntaxError struct {
	Cause error
}

func (e *SyntaxError) Error() string { return "The provided JSON text has invalid syntax" }

func (e *SyntaxError) Unwrap() error { return e.Cause }

// Parse decodes one complete JSON value from data. Numbers are captured as
// literal text. Trailing non-whitespace content after the value is a syntax
// error.
func Parse(data []byte) (*Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return nil, &SyntaxError{Cause: err}
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected trailing token %v", tok)
		}
		return nil, &SyntaxError{Cause: err}
	}
	return v, nil
}

func parseValue(dec *j.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseFrom(dec, tok)
}

func parseFrom(dec *j.Decoder, tok j.Token) (*Value, error) {
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case bool:
		return Bool(t), nil
	case j.Number:
		return Number(t.String()), nil
	case string:
		return String(t), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func parseObject(dec *j.Decoder) (*Value, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", tok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseArray(dec *j.Decoder) (*Value, error) {
	arr := NewArray()
	for dec.More() {
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Append(val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
