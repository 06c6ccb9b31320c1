package rapidutil

import "github.com/Woodsigel/rapid-util/document"

// Scalar is the closed set of Go types a JSON-primitive field may carry. Named
// types are deliberately excluded so the kind of every bound scalar is exact.
type Scalar interface {
	int32 | int64 | uint64 | bool | float32 | float64 | string
}

// Field binds one named member of a record. Fields are produced by the typed
// constructors below; the constructor chosen fixes the member's classification
// (scalar kind, container shape, nullability) at compile time.
type Field struct {
	name string
	bind func() node
}

// Name returns the member name the field serializes under.
func (f Field) Name() string { return f.name }

// FieldOption adjusts how a field binds.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	readOnly bool
}

// ReadOnly marks a scalar member as marshal-only. Unmarshal treats a write into
// a read-only member as a contract violation and panics.
func ReadOnly() FieldOption {
	return func(c *fieldConfig) { c.readOnly = true }
}

func applyFieldOptions(opts []FieldOption) fieldConfig {
	var cfg fieldConfig
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// ---- scalar members ----

// Int32 binds an int32 member.
func Int32(name string, v *int32, opts ...FieldOption) Field {
	return Field{name: name, bind: scalarBind(v, opts)}
}

// Int64 binds an int64 member.
func Int64(name string, v *int64, opts ...FieldOption) Field {
	return Field{name: name, bind: scalarBind(v, opts)}
}

// Uint64 binds a uint64 member.
func Uint64(name string, v *uint64, opts ...FieldOption) Field {
	return Field{name: name, bind: scalarBind(v, opts)}
}

// Bool binds a bool member.
func Bool(name string, v *bool, opts ...FieldOption) Field {
	return Field{name: name, bind: scalarBind(v, opts)}
}

// Float32 binds a float32 member.
func Float32(name string, v *float32, opts ...FieldOption) Field {
	return Field{name: name, bind: scalarBind(v, opts)}
}

// Float64 binds a float64 member.
func Float64(name string, v *float64, opts ...FieldOption) Field {
	return Field{name: name, bind: scalarBind(v, opts)}
}

// String binds a string member.
func String(name string, v *string, opts ...FieldOption) Field {
	return Field{name: name, bind: scalarBind(v, opts)}
}

// Nullable scalar members bind through a pointer-to-pointer: a nil pointer
// means the value is legitimately absent. Unmarshaling document-null clears the
// pointer; unmarshaling a value allocates default storage first when needed.

// Int32Ptr binds a nullable int32 member.
func Int32Ptr(name string, v **int32, opts ...FieldOption) Field {
	return Field{name: name, bind: scalarPtrBind(v, opts)}
}

// Int64Ptr binds a nullable int64 member.
func Int64Ptr(name string, v **int64, opts ...FieldOption) Field {
	return Field{name: name, bind: scalarPtrBind(v, opts)}
}

// Uint64Ptr binds a nullable uint64 member.
func Uint64Ptr(name string, v **uint64, opts ...FieldOption) Field {
	return Field{name: name, bind: scalarPtrBind(v, opts)}
}

// BoolPtr binds a nullable bool member.
func BoolPtr(name string, v **bool, opts ...FieldOption) Field {
	return Field{name: name, bind: scalarPtrBind(v, opts)}
}

// Float32Ptr binds a nullable float32 member.
func Float32Ptr(name string, v **float32, opts ...FieldOption) Field {
	return Field{name: name, bind: scalarPtrBind(v, opts)}
}

// Float64Ptr binds a nullable float64 member.
func Float64Ptr(name string, v **float64, opts ...FieldOption) Field {
	return Field{name: name, bind: scalarPtrBind(v, opts)}
}

// StringPtr binds a nullable string member.
func StringPtr(name string, v **string, opts ...FieldOption) Field {
	return Field{name: name, bind: scalarPtrBind(v, opts)}
}

// ---- record members ----

// Struct binds a nested record member described by t.
func Struct[T any](name string, v *T, t *Type[T]) Field {
	return Field{name: name, bind: func() node { return t.bind(v) }}
}

// StructPtr binds a nullable nested record member; a nil pointer means absent.
func StructPtr[T any](name string, v **T, t *Type[T]) Field {
	return Field{name: name, bind: structPtrBind(v, t)}
}

// ---- sequence members ----

// ElemBinder binds one element of a homogeneous sequence. Binders produced by
// the Of*Ptr constructors additionally permit document-null elements.
type ElemBinder[E any] struct {
	nullable bool
	bind     func(*E) node
}

func ofScalar[T Scalar]() ElemBinder[T] {
	return ElemBinder[T]{bind: func(p *T) node { return scalarBind(p, nil)() }}
}

func ofScalarPtr[T Scalar]() ElemBinder[*T] {
	return ElemBinder[*T]{nullable: true, bind: func(p **T) node { return scalarPtrBind(p, nil)() }}
}

func OfInt32() ElemBinder[int32]     { return ofScalar[int32]() }
func OfInt64() ElemBinder[int64]     { return ofScalar[int64]() }
func OfUint64() ElemBinder[uint64]   { return ofScalar[uint64]() }
func OfBool() ElemBinder[bool]       { return ofScalar[bool]() }
func OfFloat32() ElemBinder[float32] { return ofScalar[float32]() }
func OfFloat64() ElemBinder[float64] { return ofScalar[float64]() }
func OfString() ElemBinder[string]   { return ofScalar[string]() }

func OfInt32Ptr() ElemBinder[*int32]     { return ofScalarPtr[int32]() }
func OfInt64Ptr() ElemBinder[*int64]     { return ofScalarPtr[int64]() }
func OfUint64Ptr() ElemBinder[*uint64]   { return ofScalarPtr[uint64]() }
func OfBoolPtr() ElemBinder[*bool]       { return ofScalarPtr[bool]() }
func OfFloat32Ptr() ElemBinder[*float32] { return ofScalarPtr[float32]() }
func OfFloat64Ptr() ElemBinder[*float64] { return ofScalarPtr[float64]() }
func OfStringPtr() ElemBinder[*string]   { return ofScalarPtr[string]() }

// OfStruct binds sequence elements that are records described by t.
func OfStruct[E any](t *Type[E]) ElemBinder[E] {
	return ElemBinder[E]{bind: func(p *E) node { return t.bind(p) }}
}

// OfStructPtr binds nullable record elements; nil elements marshal to null and
// document-null elements are skipped on unmarshal.
func OfStructPtr[E any](t *Type[E]) ElemBinder[*E] {
	return ElemBinder[*E]{nullable: true, bind: func(p **E) node { return structPtrBind(p, t)() }}
}

// OfTuple binds sequence elements that are tuples described by t.
func OfTuple[E any](t *TupleType[E]) ElemBinder[E] {
	return ElemBinder[E]{bind: func(p *E) node { return t.bind(p) }}
}

// Fixed binds a fixed-capacity sequence through a slice view over its backing
// storage; for an array member pass arr[:]. The bound node is never resizable:
// a document array with more non-null elements than the view's length is an
// arity error.
func Fixed[E any](name string, view []E, eb ElemBinder[E]) Field {
	return Field{name: name, bind: func() node {
		return &arrayNode{elems: bindSliceElems(view, eb), elemNullable: eb.nullable}
	}}
}

// FixedNullable binds a nullable fixed-capacity sequence. view projects the
// allocated wrapper onto a slice over its elements; for a *[3]bool member pass
// func(a *[3]bool) []bool { return a[:] }.
func FixedNullable[A, E any](name string, v **A, view func(*A) []E, eb ElemBinder[E]) Field {
	var build func() *arrayNode
	build = func() *arrayNode {
		n := &arrayNode{
			elemNullable: eb.nullable,
			null: &nullableHook{
				absent: func() bool { return *v == nil },
				reset:  func() { *v = nil },
			},
		}
		if *v != nil {
			n.elems = bindSliceElems(view(*v), eb)
		}
		n.reinit = func() *arrayNode {
			if *v == nil {
				*v = new(A)
			}
			return build()
		}
		return n
	}
	return Field{name: name, bind: func() node { return build() }}
}

// Dynamic binds a resizable sequence. Unmarshal resizes the slice, growing or
// shrinking, to the document's non-null element count; a nil slice marshals as
// an empty array.
func Dynamic[E any](name string, v *[]E, eb ElemBinder[E]) Field {
	return Field{name: name, bind: dynamicBind(v, eb, false)}
}

// DynamicNullable binds a nullable resizable sequence: a nil slice means
// absent and marshals as null. Unmarshaling document-null sets the slice nil;
// unmarshaling an array reinitializes it to an empty non-nil slice first.
func DynamicNullable[E any](name string, v *[]E, eb ElemBinder[E]) Field {
	return Field{name: name, bind: dynamicBind(v, eb, true)}
}

// ---- shared binding helpers ----

func bindSliceElems[E any](s []E, eb ElemBinder[E]) []node {
	out := make([]node, len(s))
	for i := range s {
		out[i] = eb.bind(&s[i])
	}
	return out
}

func dynamicBind[E any](v *[]E, eb ElemBinder[E], nullable bool) func() node {
	var build func() *arrayNode
	build = func() *arrayNode {
		n := &arrayNode{
			elems:        bindSliceElems(*v, eb),
			resizable:    true,
			elemNullable: eb.nullable,
		}
		n.resize = func(size int) []node {
			next := make([]E, size)
			copy(next, *v)
			*v = next
			fresh := bindSliceElems(*v, eb)
			n.elems = fresh
			return fresh
		}
		if nullable {
			n.null = &nullableHook{
				absent: func() bool { return *v == nil },
				reset:  func() { *v = nil },
			}
			n.reinit = func() *arrayNode {
				if *v == nil {
					*v = []E{}
				}
				return build()
			}
		}
		return n
	}
	return func() node { return build() }
}

func structPtrBind[T any](v **T, t *Type[T]) func() node {
	return func() node {
		n := &objectNode{
			null: &nullableHook{
				absent: func() bool { return *v == nil },
				reset:  func() { *v = nil },
			},
			reinit: func() []member {
				if *v == nil {
					*v = new(T)
				}
				return t.bind(*v).members
			},
		}
		if *v != nil {
			n.members = t.bind(*v).members
		}
		return n
	}
}

func scalarBind[T Scalar](v *T, opts []FieldOption) func() node {
	cfg := applyFieldOptions(opts)
	k := scalarKind(v)
	return func() node {
		return &primitiveNode{
			kind:     k,
			readOnly: cfg.readOnly,
			emit:     func() *document.Value { return scalarValue(v) },
			store:    func(d *document.Value) { storeScalar(v, d) },
		}
	}
}

func scalarPtrBind[T Scalar](v **T, opts []FieldOption) func() node {
	cfg := applyFieldOptions(opts)
	var probe T
	k := scalarKind(&probe)
	return func() node {
		return &primitiveNode{
			kind:     k,
			readOnly: cfg.readOnly,
			null: &nullableHook{
				absent: func() bool { return *v == nil },
				reset:  func() { *v = nil },
			},
			emit: func() *document.Value { return scalarValue(*v) },
			store: func(d *document.Value) {
				if *v == nil {
					*v = new(T)
				}
				storeScalar(*v, d)
			},
		}
	}
}

// scalarKind classifies a scalar pointer. The Scalar constraint is closed, so
// the default branch is unreachable.
func scalarKind(v any) Kind {
	switch v.(type) {
	case *int32:
		return KindInt32
	case *int64:
		return KindInt64
	case *uint64:
		return KindUint64
	case *bool:
		return KindBool
	case *float32:
		return KindFloat
	case *float64:
		return KindDouble
	case *string:
		return KindString
	}
	panic("rapidutil: unsupported scalar type")
}

func scalarValue(v any) *document.Value {
	switch p := v.(type) {
	case *int32:
		return document.Int(*p)
	case *int64:
		return document.Int64(*p)
	case *uint64:
		return document.Uint64(*p)
	case *bool:
		return document.Bool(*p)
	case *float32:
		return document.Float(*p)
	case *float64:
		return document.Double(*p)
	case *string:
		return document.String(*p)
	}
	panic("rapidutil: unsupported scalar type")
}

func storeScalar(v any, d *document.Value) {
	switch p := v.(type) {
	case *int32:
		*p = d.Int()
	case *int64:
		*p = d.Int64()
	case *uint64:
		*p = d.Uint64()
	case *bool:
		*p = d.Bool()
	case *float32:
		*p = d.Float()
	case *float64:
		*p = d.Double()
	case *string:
		*p = d.String()
	}
}
