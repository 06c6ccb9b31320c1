package rapidutil

import "fmt"

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeEmptyInput          = "empty_input"
	CodeInvalidSyntax       = "invalid_syntax"
	CodeMemberNotFound      = "member_not_found"
	CodeTypeMismatch        = "type_mismatch"
	CodeArrayLengthMismatch = "array_length_mismatch"
	CodeMemberFailure       = "member_failure"
)

// Error is the single failure type surfaced by Unmarshal. Failures raised while
// reading a named object member are rewrapped once per enclosing level, so the
// top-level Message always spells out the full member path with the innermost
// cause appended, and Path accumulates the same path in dotted form.
type Error struct {
	Code    string // One of the codes listed above.
	Path    string // Dotted member path from the record root; empty at the root.
	Message string
	Cause   error // Optional: the wrapped inner failure.
}

// Error returns the human-readable message.
func (e *Error) Error() string { return e.Message }

// Unwrap exposes the wrapped inner failure for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

func errMemberNotFound(name string) *Error {
	return &Error{
		Code:    CodeMemberNotFound,
		Path:    name,
		Message: fmt.Sprintf("JSON doesn't match the struct: required field %q not found", name),
	}
}

func errTypeMismatch(expected, actual string) *Error {
	return &Error{
		Code:    CodeTypeMismatch,
		Message: fmt.Sprintf("Expected %s, got %s", expected, actual),
	}
}

func errNullElements() *Error {
	return &Error{
		Code:    CodeTypeMismatch,
		Message: "JSON array contains null elements",
	}
}

func errArrayLength(documentCount, capacity int) *Error {
	return &Error{
		Code: CodeArrayLengthMismatch,
		Message: fmt.Sprintf(
			"Array size mismatch: JSON contains %d elements, but given array has fixed capacity of %d elements and cannot be resized.",
			documentCount, capacity),
	}
}

// wrapMember prepends exactly one path segment to an error raised while reading
// the named member.
func wrapMember(name string, err error) *Error {
	path := name
	if inner, ok := err.(*Error); ok && inner.Path != "" {
		path = name + "." + inner.Path
	}
	return &Error{
		Code:    CodeMemberFailure,
		Path:    path,
		Message: fmt.Sprintf("Deserialization of member %q failed: %s", name, err.Error()),
		Cause:   err,
	}
}
