package rapidutil

import "github.com/Woodsigel/rapid-util/document"

// node is the closed set of value-tree variants. The tree mirrors one record's
// shape for the duration of a single Marshal/Unmarshal call; every leaf holds a
// live reference into the record's storage, never a copy.
type node interface{ sealedNode() }

// nullableHook is the capability a nullable-wrapped node exposes: query whether
// the wrapped value is absent, and mark it absent. Reinitialization lives on
// the owning node because it must return freshly bound children.
type nullableHook struct {
	absent func() bool
	reset  func()
}

// primitiveNode binds one scalar of a fixed Kind. emit and store close over the
// field pointer; store reinitializes absent nullable storage before writing.
type primitiveNode struct {
	kind     Kind
	readOnly bool
	null     *nullableHook // nil when the field is not nullable
	emit     func() *document.Value
	store    func(*document.Value)
}

type member struct {
	name string
	node node
}

// objectNode binds a record. Members keep field-declaration order. For
// nullable records reinit allocates a default value and returns its freshly
// bound members.
type objectNode struct {
	members []member
	null    *nullableHook
	reinit  func() []member
}

// arrayNode binds a sequence or a tuple. resize grows or shrinks the backing
// container and always returns fresh element nodes; element nodes bound before
// a resize are never reused. For nullable sequences reinit allocates the
// wrapper and returns a fully rebound node. Positional arrays (tuples) are
// never resizable and dispatch nulls per element instead of sequence-wide.
type arrayNode struct {
	elems        []node
	resizable    bool
	elemNullable bool
	positional   bool
	resize       func(int) []node
	null         *nullableHook
	reinit       func() *arrayNode
}

func (*primitiveNode) sealedNode() {}
func (*objectNode) sealedNode()    {}
func (*arrayNode) sealedNode()     {}

// nullHookOf returns the node's nullable capability, nil for required nodes.
func nullHookOf(n node) *nullableHook {
	switch n := n.(type) {
	case *primitiveNode:
		return n.null
	case *objectNode:
		return n.null
	case *arrayNode:
		return n.null
	}
	return nil
}
