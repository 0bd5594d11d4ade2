package main

import (
	"log"
	"os"

	"github.com/xiam/vira"
	"github.com/xiam/vira/ast"
)

func main() {
	input := `
		func max(a: int, b: int) -> int [
			if a > b [ return a ]
			return b
		]
		let xs: array<int> = [89, 67, 3]
		write max(xs[0], xs[1])
	`

	nodes, diags := vira.Parse([]byte(input))
	if err := diags.Err(); err != nil {
		log.Fatal("vira.Parse:", err)
	}

	ast.Print(os.Stdout, nodes...)
}
