package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/vira"
	"github.com/xiam/vira/ast"
)

func printTree(nodes []ast.Node) {
	for i := range nodes {
		printIndentedTree(nodes[i], 0)
	}
}

func printIndentedTree(node ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)

	children := ast.Children(node)
	if len(children) == 0 {
		fmt.Printf("%s<%s>%s</%s>\n", indent, node.Type(), node.Token().Text(), node.Type())
		return
	}

	fmt.Printf("%s<%s>\n", indent, node.Type())
	for i := range children {
		printIndentedTree(children[i], indentationLevel+1)
	}
	fmt.Printf("%s</%s>\n", indent, node.Type())
}

func main() {
	input := `let total = f(1, 2) * 3 write [total, "Hello world!"]`

	nodes, diags := vira.Parse([]byte(input))
	if err := diags.Err(); err != nil {
		log.Fatal("vira.Parse:", err)
	}

	printTree(nodes)
}
