package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/xiam/vira/lexer"
)

// Print writes a human-readable, indented representation of the nodes
func Print(w io.Writer, nodes ...Node) {
	for i := range nodes {
		printLevel(w, nodes[i], 0)
	}
}

func printLevel(w io.Writer, n Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}

	line, col := n.Token().Pos()
	fmt.Fprintf(w, "%s(%s)", indent, n.Type())

	switch n := n.(type) {
	case *Literal:
		fmt.Fprintf(w, ": %s %s", n.Kind, encodeLiteral(n))
	case *Binary:
		fmt.Fprintf(w, ": %s", n.Operator.Text())
	case *Unary:
		fmt.Fprintf(w, ": %s", n.Operator.Text())
	case *Call:
		fmt.Fprintf(w, ": %s", n.Callee)
	case *VarDecl:
		fmt.Fprintf(w, ": %s", n.Name)
		if n.DeclaredType != "" {
			fmt.Fprintf(w, " %s", n.DeclaredType)
		}
	case *FuncDecl:
		fmt.Fprintf(w, ": %s(%s) -> %s", n.Name, joinParams(n.Params, ", "), n.ReturnType)
	case *ReturnStmt:
		if n.Value == nil {
			fmt.Fprint(w, ": void")
		}
	case *ArrayLiteral, *Index, *IfStmt, *WhileStmt, *ForStmt, *WriteStmt, *Block:
		// children only
	default:
		panic("unknown node type")
	}

	fmt.Fprintf(w, " [%d %d]\n", line, col)

	for _, c := range Children(n) {
		printLevel(w, c, level+1)
	}
}

// Encode transforms nodes into a compact s-expression representation, top
// level nodes are separated by spaces.
func Encode(nodes ...Node) string {
	parts := make([]string, 0, len(nodes))
	for i := range nodes {
		parts = append(parts, encodeNode(nodes[i]))
	}
	return strings.Join(parts, " ")
}

func encodeList(nodes []Node) []string {
	parts := make([]string, 0, len(nodes))
	for i := range nodes {
		parts = append(parts, encodeNode(nodes[i]))
	}
	return parts
}

func sexpr(head string, parts ...string) string {
	return "(" + strings.Join(append([]string{head}, parts...), " ") + ")"
}

func encodeLiteral(n *Literal) string {
	if n.Kind == lexer.TokenString {
		return fmt.Sprintf("%q", n.Value)
	}
	return n.Value
}

func joinParams(params []Param, sep string) string {
	parts := make([]string, 0, len(params))
	for i := range params {
		parts = append(parts, params[i].String())
	}
	return strings.Join(parts, sep)
}

func encodeNode(n Node) string {
	if n == nil {
		return ":nil"
	}

	switch n := n.(type) {
	case *Literal:
		return encodeLiteral(n)

	case *Binary:
		return sexpr(n.Operator.Text(), encodeNode(n.Left), encodeNode(n.Right))

	case *Unary:
		return sexpr(n.Operator.Text(), encodeNode(n.Right))

	case *Call:
		return sexpr("call", append([]string{n.Callee}, encodeList(n.Args)...)...)

	case *ArrayLiteral:
		return "[" + strings.Join(encodeList(n.Elements), " ") + "]"

	case *Index:
		return sexpr("index", encodeNode(n.Target), encodeNode(n.Index))

	case *VarDecl:
		name := n.Name
		if n.DeclaredType != "" {
			name += ":" + n.DeclaredType
		}
		return sexpr("let", name, encodeNode(n.Initializer))

	case *FuncDecl:
		return sexpr("func", n.Name, "("+joinParams(n.Params, " ")+")", n.ReturnType, encodeNode(n.Body))

	case *IfStmt:
		if n.Else == nil {
			return sexpr("if", encodeNode(n.Condition), encodeNode(n.Then))
		}
		return sexpr("if", encodeNode(n.Condition), encodeNode(n.Then), encodeNode(n.Else))

	case *WhileStmt:
		return sexpr("while", encodeNode(n.Condition), encodeNode(n.Body))

	case *ForStmt:
		return sexpr("for", encodeNode(n.Init), encodeNode(n.Condition), encodeNode(n.Increment), encodeNode(n.Body))

	case *ReturnStmt:
		if n.Value == nil {
			return "(return)"
		}
		return sexpr("return", encodeNode(n.Value))

	case *WriteStmt:
		return sexpr("write", encodeNode(n.Value))

	case *Block:
		return sexpr("block", encodeList(n.Statements)...)
	}

	panic("unknown node type")
}
