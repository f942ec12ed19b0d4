package ast

// Visitor receives a node from Walk. Returning is the only control
// flow: every descendant is always visited.
type Visitor func(Node)

// Walk traverses node and all of its descendants in document order,
// calling enter before a node's children and leave after them. Either
// hook may be nil.
//
// Walking a Program covers Body only; a component's Template sub-tree
// has its own declared traversal pass and is walked explicitly by the
// caller.
func Walk(node Node, enter, leave Visitor) {
	if node == nil {
		return
	}
	if enter != nil {
		enter(node)
	}
	for _, child := range children(node) {
		Walk(child, enter, leave)
	}
	if leave != nil {
		leave(node)
	}
}

func children(node Node) []Node {
	switch n := node.(type) {
	case *Program:
		return n.Body
	case *CallExpression:
		out := make([]Node, 0, len(n.Arguments)+1)
		if n.Callee != nil {
			out = append(out, n.Callee)
		}
		return append(out, n.Arguments...)
	case *MemberExpression:
		out := make([]Node, 0, 2)
		if n.Object != nil {
			out = append(out, n.Object)
		}
		if n.Property != nil {
			out = append(out, n.Property)
		}
		return out
	case *Element:
		out := make([]Node, 0, len(n.Attributes)+len(n.Children))
		for _, attr := range n.Attributes {
			out = append(out, attr)
		}
		return append(out, n.Children...)
	case *Attribute:
		if n.Value == nil {
			return nil
		}
		return []Node{n.Value}
	case *ExpressionContainer:
		if n.Expression == nil {
			return nil
		}
		return []Node{n.Expression}
	case *Raw:
		return n.Children
	}
	return nil
}
