package rapidutil

import "github.com/Woodsigel/rapid-util/document"

// writeNode projects a bound value tree onto a document tree. Writing is total:
// it reads through the bound references, emits null for absent nullable nodes,
// and cannot fail over a well-formed tree.
func writeNode(n node) *document.Value {
	switch n := n.(type) {
	case *primitiveNode:
		if n.null != nil && n.null.absent() {
			return document.Null()
		}
		return n.emit()
	case *objectNode:
		if n.null != nil && n.null.absent() {
			return document.Null()
		}
		obj := document.NewObject()
		for _, m := range n.members {
			obj.Set(m.name, writeNode(m.node))
		}
		return obj
	case *arrayNode:
		if n.null != nil && n.null.absent() {
			return document.Null()
		}
		arr := document.NewArray()
		for _, e := range n.elems {
			arr.Append(writeNode(e))
		}
		return arr
	default:
		panic("rapidutil: unknown node variant")
	}
}
