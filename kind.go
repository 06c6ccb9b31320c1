package rapidutil

// Kind identifies the JSON-primitive kind a bound scalar carries. It is fixed
// when the field binds and never changes afterwards.
type Kind int

const (
	KindInt32 Kind = iota
	KindInt64
	KindUint64
	KindBool
	KindFloat
	KindDouble
	KindString
)

// String returns the kind name used in type-mismatch messages.
func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "Int"
	case KindInt64:
		return "Int64"
	case KindUint64:
		return "Uint64"
	case KindBool:
		return "Bool"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	}
	return "Unknown"
}
