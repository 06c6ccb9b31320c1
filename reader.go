package rapidutil

import "github.com/Woodsigel/rapid-util/document"

// readNode transfers one document value into the storage bound behind n,
// mutating the record in place. The first violation aborts the whole call;
// fields already written keep their new values.
func readNode(n node, d *document.Value) error {
	switch n := n.(type) {
	case *primitiveNode:
		return readPrimitive(n, d)
	case *objectNode:
		return readObject(n, d)
	case *arrayNode:
		return readArray(n, d)
	default:
		panic("rapidutil: unknown node variant")
	}
}

func readPrimitive(n *primitiveNode, d *document.Value) error {
	if n.readOnly {
		panic("rapidutil: attempted to deserialize into a read-only member")
	}
	if d.IsNull() {
		if n.null != nil {
			n.null.reset()
			return nil
		}
		return errTypeMismatch(n.kind.String(), "Null")
	}
	if err := validateKind(n.kind, d); err != nil {
		return err
	}
	n.store(d)
	return nil
}

// validateKind checks the document value's runtime kind against the kind fixed
// on the node at build time. There is no numeric coercion across kinds.
func validateKind(k Kind, d *document.Value) error {
	ok := false
	switch k {
	case KindInt32:
		ok = d.IsInt()
	case KindInt64:
		ok = d.IsInt64()
	case KindUint64:
		ok = d.IsUint64()
	case KindBool:
		ok = d.IsBool()
	case KindFloat:
		ok = d.IsFloat()
	case KindDouble:
		ok = d.IsDouble()
	case KindString:
		ok = d.IsString()
	}
	if !ok {
		return errTypeMismatch(k.String(), document.TypeName(d))
	}
	return nil
}

func readObject(n *objectNode, d *document.Value) error {
	if d.IsNull() {
		if n.null != nil {
			n.null.reset()
			return nil
		}
		return errTypeMismatch("Object", "Null")
	}
	if !d.IsObject() {
		return errTypeMismatch("Object", document.TypeName(d))
	}
	members := n.members
	if n.null != nil && n.null.absent() {
		members = n.reinit()
	}
	for _, m := range members {
		dv, ok := d.Member(m.name)
		if !ok {
			return errMemberNotFound(m.name)
		}
		if err := readNode(m.node, dv); err != nil {
			return wrapMember(m.name, err)
		}
	}
	return nil
}

func readArray(n *arrayNode, d *document.Value) error {
	if d.IsNull() {
		if n.null != nil {
			n.null.reset()
			return nil
		}
		return errTypeMismatch("Array", "Null")
	}
	if !d.IsArray() {
		return errTypeMismatch("Array", document.TypeName(d))
	}
	if n.null != nil && n.null.absent() {
		n = n.reinit()
	}
	if n.positional {
		return readTuple(n, d)
	}

	// Null elements are a permitted skip marker only for element-nullable
	// sequences; the check precedes arity so a null never masks an overflow.
	raw := d.Len()
	nonNull := 0
	for i := 0; i < raw; i++ {
		if !d.Index(i).IsNull() {
			nonNull++
		}
	}
	if nonNull != raw && !n.elemNullable {
		return errNullElements()
	}

	elems := n.elems
	if nonNull > len(elems) && !n.resizable {
		return errArrayLength(nonNull, len(elems))
	}
	if n.resizable && nonNull != len(elems) {
		elems = n.resize(nonNull)
	}

	// Array elements are silently positional: failures inside them carry no
	// index path segment.
	idx := 0
	for i := 0; i < raw; i++ {
		dv := d.Index(i)
		if dv.IsNull() {
			continue
		}
		if err := readNode(elems[idx], dv); err != nil {
			return err
		}
		idx++
	}
	return nil
}

// readTuple maps document elements onto tuple positions one-to-one. A null is
// never a skip marker here: it goes straight to the i-th element node, so
// nullable positions reset and required positions reject it.
func readTuple(n *arrayNode, d *document.Value) error {
	count := d.Len()
	if count > len(n.elems) {
		return errArrayLength(count, len(n.elems))
	}
	for i := 0; i < count; i++ {
		dv := d.Index(i)
		if dv.IsNull() && nullHookOf(n.elems[i]) == nil {
			return errNullElements()
		}
		if err := readNode(n.elems[i], dv); err != nil {
			return err
		}
	}
	return nil
}
