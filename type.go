package rapidutil

import "fmt"

// Type is the descriptor table for a describable record type. The field list
// is fixed at definition time; its order defines both marshal output order and
// the order in which missing required members are reported.
type Type[T any] struct {
	fields func(*T) []Field
}

// Describe registers the ordered member list for T and validates it once
// against a zero-value probe. Malformed descriptors (no members, empty or
// duplicate names) are a fatal definition-time error and panic; field shape
// errors cannot occur here because the Field constructors are typed.
func Describe[T any](fields func(*T) []Field) *Type[T] {
	if fields == nil {
		panic("rapidutil: Describe requires a field descriptor function")
	}
	var probe T
	fs := fields(&probe)
	if len(fs) == 0 {
		panic(fmt.Sprintf("rapidutil: type %T describes no members", probe))
	}
	seen := make(map[string]struct{}, len(fs))
	for _, f := range fs {
		if f.name == "" {
			panic(fmt.Sprintf("rapidutil: type %T describes a member with an empty name", probe))
		}
		if f.bind == nil {
			panic(fmt.Sprintf("rapidutil: type %T describes member %q without a binding", probe, f.name))
		}
		if _, dup := seen[f.name]; dup {
			panic(fmt.Sprintf("rapidutil: type %T describes member %q twice", probe, f.name))
		}
		seen[f.name] = struct{}{}
	}
	return &Type[T]{fields: fields}
}

// bind assembles a fresh value tree over rec. Binding is pure structural work:
// it evaluates the descriptor list against rec and cannot fail.
func (t *Type[T]) bind(v *T) *objectNode {
	fs := t.fields(v)
	members := make([]member, len(fs))
	for i, f := range fs {
		members[i] = member{name: f.name, node: f.bind()}
	}
	return &objectNode{members: members}
}

// TupleType describes a record rendered as a fixed-arity, heterogeneous JSON
// array. Elements are positional: they carry no names and failures inside them
// surface without an index path segment.
type TupleType[T any] struct {
	elems func(*T) []Elem
}

// DescribeTuple registers the ordered element list for tuple type T.
func DescribeTuple[T any](elems func(*T) []Elem) *TupleType[T] {
	if elems == nil {
		panic("rapidutil: DescribeTuple requires an element descriptor function")
	}
	var probe T
	es := elems(&probe)
	if len(es) == 0 {
		panic(fmt.Sprintf("rapidutil: tuple type %T describes no elements", probe))
	}
	for i, e := range es {
		if e.bind == nil {
			panic(fmt.Sprintf("rapidutil: tuple type %T describes element %d without a binding", probe, i))
		}
	}
	return &TupleType[T]{elems: elems}
}

func (t *TupleType[T]) bind(v *T) *arrayNode {
	es := t.elems(v)
	nodes := make([]node, len(es))
	for i, e := range es {
		nodes[i] = e.bind()
	}
	return &arrayNode{elems: nodes, positional: true}
}

// Elem is one positional binding inside a tuple.
type Elem struct {
	bind func() node
}

// ElemScalar binds a scalar tuple position.
func ElemScalar[T Scalar](v *T) Elem {
	return Elem{bind: scalarBind(v, nil)}
}

// ElemScalarPtr binds a nullable scalar tuple position.
func ElemScalarPtr[T Scalar](v **T) Elem {
	return Elem{bind: scalarPtrBind(v, nil)}
}

// ElemStruct binds a record tuple position.
func ElemStruct[T any](v *T, t *Type[T]) Elem {
	return Elem{bind: func() node { return t.bind(v) }}
}

// ElemStructPtr binds a nullable record tuple position.
func ElemStructPtr[T any](v **T, t *Type[T]) Elem {
	return Elem{bind: structPtrBind(v, t)}
}

// ElemTuple binds a nested tuple position.
func ElemTuple[T any](v *T, t *TupleType[T]) Elem {
	return Elem{bind: func() node { return t.bind(v) }}
}

// ElemFixed binds a fixed-capacity sequence position through a slice view.
func ElemFixed[E any](view []E, eb ElemBinder[E]) Elem {
	return Elem{bind: func() node {
		return &arrayNode{elems: bindSliceElems(view, eb), elemNullable: eb.nullable}
	}}
}

// ElemDynamic binds a resizable sequence position.
func ElemDynamic[E any](v *[]E, eb ElemBinder[E]) Elem {
	return Elem{bind: dynamicBind(v, eb, false)}
}

// ---- tuple members ----

// Tuple binds a tuple member described by t.
func Tuple[T any](name string, v *T, t *TupleType[T]) Field {
	return Field{name: name, bind: func() node { return t.bind(v) }}
}

// TuplePtr binds a nullable tuple member; a nil pointer means absent.
func TuplePtr[T any](name string, v **T, t *TupleType[T]) Field {
	var build func() *arrayNode
	build = func() *arrayNode {
		n := &arrayNode{
			positional: true,
			null: &nullableHook{
				absent: func() bool { return *v == nil },
				reset:  func() { *v = nil },
			},
		}
		if *v != nil {
			n.elems = t.bind(*v).elems
		}
		n.reinit = func() *arrayNode {
			if *v == nil {
				*v = new(T)
			}
			return build()
		}
		return n
	}
	return Field{name: name, bind: func() node { return build() }}
}
