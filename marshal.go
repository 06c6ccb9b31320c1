package rapidutil

import (
	"errors"

	"github.com/Woodsigel/rapid-util/document"
)

// Marshal serializes rec to JSON text, emitting members in declaration order.
// It never fails for a well-typed record; the error return is reserved for the
// downstream text serializer.
func (t *Type[T]) Marshal(rec *T) (string, error) {
	doc := writeNode(t.bind(rec))
	return document.Serialize(doc)
}

// Unmarshal parses data and populates rec in place. On failure the call aborts
// at the first violation and returns a *Error; members processed before the
// failing one keep whatever value they were set to.
func (t *Type[T]) Unmarshal(data []byte, rec *T) error {
	doc, err := document.Parse(data)
	if err != nil {
		return parseError(err)
	}
	return readNode(t.bind(rec), doc)
}

// Marshal is a package-level convenience over (*Type[T]).Marshal.
func Marshal[T any](t *Type[T], rec *T) (string, error) {
	return t.Marshal(rec)
}

// Unmarshal is a package-level convenience over (*Type[T]).Unmarshal.
func Unmarshal[T any](t *Type[T], data []byte, rec *T) error {
	return t.Unmarshal(data, rec)
}

// parseError projects document-parser failures onto the error taxonomy.
func parseError(err error) *Error {
	if errors.Is(err, document.ErrEmptyInput) {
		return &Error{Code: CodeEmptyInput, Message: err.Error(), Cause: err}
	}
	var se *document.SyntaxError
	if errors.As(err, &se) {
		return &Error{Code: CodeInvalidSyntax, Message: se.Error(), Cause: err}
	}
	return &Error{Code: CodeInvalidSyntax, Message: err.Error(), Cause: err}
}
