package ast

import (
	"fmt"
)

// Children returns the direct children of a node in source order. Absent
// optional children are skipped.
func Children(n Node) []Node {
	var children []Node

	add := func(nodes ...Node) {
		for _, c := range nodes {
			if c != nil {
				children = append(children, c)
			}
		}
	}

	switch n := n.(type) {
	case *Literal:
		// leaf
	case *Binary:
		add(n.Left, n.Right)
	case *Unary:
		add(n.Right)
	case *Call:
		add(n.Args...)
	case *ArrayLiteral:
		add(n.Elements...)
	case *Index:
		add(n.Target, n.Index)
	case *VarDecl:
		add(n.Initializer)
	case *FuncDecl:
		add(n.Body)
	case *IfStmt:
		add(n.Condition, n.Then, n.Else)
	case *WhileStmt:
		add(n.Condition, n.Body)
	case *ForStmt:
		add(n.Init, n.Condition, n.Increment, n.Body)
	case *ReturnStmt:
		add(n.Value)
	case *WriteStmt:
		add(n.Value)
	case *Block:
		add(n.Statements...)
	default:
		panic(fmt.Sprintf("ast: unknown node %T", n))
	}

	return children
}

// Inspect traverses the tree rooted at n depth-first, calling fn for each
// node. Children are skipped when fn returns false.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}
