// Package document holds the generic tree representation of JSON-like text:
// parsing, serialization, and kind queries over {null, bool, number, string,
// array, object} values. Numbers are kept as literal text so integer-versus-
// double classification survives a parse/serialize round trip.
package document

import (
	"math"
	"strconv"
)

type kind uint8

const (
	kindNull kind = iota
	kindBool
	kindNumber
	kindString
	kindObject
	kindArray
)

// Value is one node of a parsed or buildable document tree.
type Value struct {
	kind kind
	b    bool
	num  string
	str  string
	arr  []*Value
	obj  []Member
	idx  map[string]int
}

// Member is one named entry of an object value. Insertion order is preserved.
type Member struct {
	Name  string
	Value *Value
}

// ---- constructors ----

// Null returns a null value.
func Null() *Value { return &Value{kind: kindNull} }

// Bool returns a boolean value.
func Bool(v bool) *Value { return &Value{kind: kindBool, b: v} }

// Int returns a number value holding an int32.
func Int(v int32) *Value { return Number(strconv.FormatInt(int64(v), 10)) }

// Int64 returns a number value holding an int64.
func Int64(v int64) *Value { return Number(strconv.FormatInt(v, 10)) }

// Uint64 returns a number value holding a uint64.
func Uint64(v uint64) *Value { return Number(strconv.FormatUint(v, 10)) }

// Float returns a number value holding a float32.
func Float(v float32) *Value {
	return Number(strconv.FormatFloat(float64(v), 'g', -1, 32))
}

// Double returns a number value holding a float64.
func Double(v float64) *Value {
	return Number(strconv.FormatFloat(v, 'g', -1, 64))
}

// Number returns a number value from its literal text.
func Number(text string) *Value { return &Value{kind: kindNumber, num: text} }

// String returns a string value.
func String(v string) *Value { return &Value{kind: kindString, str: v} }

// NewObject returns an empty object value.
func NewObject() *Value { return &Value{kind: kindObject} }

// NewArray returns an empty array value.
func NewArray() *Value { return &Value{kind: kindArray} }

// ---- kind queries ----

func (v *Value) IsNull() bool   { return v.kind == kindNull }
func (v *Value) IsBool() bool   { return v.kind == kindBool }
func (v *Value) IsNumber() bool { return v.kind == kindNumber }
func (v *Value) IsString() bool { return v.kind == kindString }
func (v *Value) IsObject() bool { return v.kind == kindObject }
func (v *Value) IsArray() bool  { return v.kind == kindArray }

// IsInt reports whether the value is an integral number that fits int32.
func (v *Value) IsInt() bool {
	i, ok := v.intVal()
	return ok && i >= math.MinInt32 && i <= math.MaxInt32
}

// IsInt64 reports whether the value is an integral number that fits int64.
func (v *Value) IsInt64() bool {
	_, ok := v.intVal()
	return ok
}

// IsUint64 reports whether the value is a non-negative integral number that
// fits uint64.
func (v *Value) IsUint64() bool {
	_, ok := v.uintVal()
	return ok
}

// IsDouble reports whether the value is any number convertible to float64.
func (v *Value) IsDouble() bool {
	_, ok := v.floatVal()
	return ok
}

// IsFloat reports whether the value is a number representable as float32
// without overflowing.
func (v *Value) IsFloat() bool {
	f, ok := v.floatVal()
	if !ok {
		return false
	}
	return !math.IsInf(float64(float32(f)), 0)
}

// ---- typed getters ----
// Getters assume the corresponding kind query already succeeded and return the
// zero value otherwise.

func (v *Value) Bool() bool { return v.b }

func (v *Value) Int() int32 {
	i, _ := v.intVal()
	return int32(i)
}

func (v *Value) Int64() int64 {
	i, _ := v.intVal()
	return i
}

func (v *Value) Uint64() uint64 {
	u, _ := v.uintVal()
	return u
}

func (v *Value) Float() float32 {
	f, _ := v.floatVal()
	return float32(f)
}

func (v *Value) Double() float64 {
	f, _ := v.floatVal()
	return f
}

func (v *Value) String() string { return v.str }

// NumberText returns the literal text of a number value.
func (v *Value) NumberText() string { return v.num }

func (v *Value) intVal() (int64, bool) {
	if v.kind != kindNumber {
		return 0, false
	}
	i, err := strconv.ParseInt(v.num, 10, 64)
	return i, err == nil
}

func (v *Value) uintVal() (uint64, bool) {
	if v.kind != kindNumber {
		return 0, false
	}
	u, err := strconv.ParseUint(v.num, 10, 64)
	return u, err == nil
}

func (v *Value) floatVal() (float64, bool) {
	if v.kind != kindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.num, 64)
	return f, err == nil
}

// ---- object access ----

// Member returns the named member value.
func (v *Value) Member(name string) (*Value, bool) {
	if v.idx == nil {
		return nil, false
	}
	i, ok := v.idx[name]
	if !ok {
		return nil, false
	}
	return v.obj[i].Value, true
}

// Set adds or replaces the named member, preserving first-insertion order.
func (v *Value) Set(name string, val *Value) {
	if v.idx == nil {
		v.idx = make(map[string]int)
	}
	if i, ok := v.idx[name]; ok {
		v.obj[i].Value = val
		return
	}
	v.idx[name] = len(v.obj)
	v.obj = append(v.obj, Member{Name: name, Value: val})
}

// Members returns the ordered member list.
func (v *Value) Members() []Member { return v.obj }

// ---- array access ----

// Len returns the element count of an array value.
func (v *Value) Len() int { return len(v.arr) }

// Index returns the i-th element of an array value.
func (v *Value) Index(i int) *Value { return v.arr[i] }

// Append adds an element to an array value.
func (v *Value) Append(val *Value) { v.arr = append(v.arr, val) }

// TypeName reports the runtime kind of v for diagnostics, with numbers
// narrowed to the tightest matching kind.
func TypeName(v *Value) string {
	switch v.kind {
	case kindNull:
		return "Null"
	case kindBool:
		return "Boolean"
	case kindString:
		return "String"
	case kindObject:
		return "Object"
	case kindArray:
		return "Array"
	case kindNumber:
		switch {
		case v.IsInt():
			return "Int"
		case v.IsInt64():
			return "Int64"
		case v.IsUint64():
			return "Uint64"
		case v.IsDouble():
			return "Double"
		}
		return "Number"
	}
	return "Unknown"
}
