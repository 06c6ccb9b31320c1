package rapidutil_test

import (
	"errors"
	"testing"

	rapidutil "github.com/Woodsigel/rapid-util"
)

type inner3 struct {
	C int32
}

type inner2 struct {
	B inner3
}

type outer1 struct {
	A inner2
}

var inner3Type = rapidutil.Describe(func(v *inner3) []rapidutil.Field {
	return []rapidutil.Field{rapidutil.Int32("c", &v.C)}
})

var inner2Type = rapidutil.Describe(func(v *inner2) []rapidutil.Field {
	return []rapidutil.Field{rapidutil.Struct("b", &v.B, inner3Type)}
})

var outer1Type = rapidutil.Describe(func(v *outer1) []rapidutil.Field {
	return []rapidutil.Field{rapidutil.Struct("a", &v.A, inner2Type)}
})

func TestError_PathAccumulatesPerLevel(t *testing.T) {
	var o outer1
	err := outer1Type.Unmarshal([]byte(`{"a":{"b":{"c":"oops"}}}`), &o)
	if err == nil {
		t.Fatalf("expected error")
	}

	var re *rapidutil.Error
	if !errors.As(err, &re) {
		t.Fatalf("expected *rapidutil.Error, got %T", err)
	}
	if re.Path != "a.b.c" {
		t.Fatalf("path mismatch: %q", re.Path)
	}
	want := `Deserialization of member "a" failed: Deserialization of member "b" failed: Deserialization of member "c" failed: Expected Int, got String`
	if re.Message != want {
		t.Fatalf("message mismatch:\n got %q\nwant %q", re.Message, want)
	}
}

func TestError_UnwrapChain(t *testing.T) {
	var o outer1
	err := outer1Type.Unmarshal([]byte(`{"a":{"b":{"c":null}}}`), &o)
	if err == nil {
		t.Fatalf("expected error")
	}

	// outer wrap for "a"
	var level *rapidutil.Error
	if !errors.As(err, &level) || level.Code != rapidutil.CodeMemberFailure {
		t.Fatalf("expected member_failure at top, got %v", err)
	}

	// wrap for "b"
	next, ok := level.Unwrap().(*rapidutil.Error)
	if !ok || next.Code != rapidutil.CodeMemberFailure || next.Path != "b.c" {
		t.Fatalf("expected member_failure b.c, got %+v", next)
	}

	// wrap for "c", then the root cause
	leaf, ok := next.Unwrap().(*rapidutil.Error)
	if !ok || leaf.Path != "c" {
		t.Fatalf("expected member_failure c, got %+v", leaf)
	}
	cause, ok := leaf.Unwrap().(*rapidutil.Error)
	if !ok || cause.Code != rapidutil.CodeTypeMismatch {
		t.Fatalf("expected type_mismatch cause, got %+v", cause)
	}
	if cause.Error() != "Expected Int, got Null" {
		t.Fatalf("cause message mismatch: %q", cause.Error())
	}
}

func TestError_MissingNestedMemberIsNotWrappedTwice(t *testing.T) {
	var o outer1
	err := outer1Type.Unmarshal([]byte(`{"a":{"b":{}}}`), &o)
	if err == nil {
		t.Fatalf("expected error")
	}
	want := `Deserialization of member "a" failed: Deserialization of member "b" failed: JSON doesn't match the struct: required field "c" not found`
	if err.Error() != want {
		t.Fatalf("message mismatch:\n got %q\nwant %q", err.Error(), want)
	}
	var re *rapidutil.Error
	if !errors.As(err, &re) || re.Path != "a.b.c" {
		t.Fatalf("path mismatch: %+v", re)
	}
}
