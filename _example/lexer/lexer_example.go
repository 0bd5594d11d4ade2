package main

import (
	"fmt"
	"log"

	"github.com/xiam/vira"
)

func main() {
	input := `
		@ greets someone
		func greet(name: string) -> string [
			return "Hello, " + name + "! 😊"
		]
		write greet("world")
	`

	tokens, err := vira.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("vira.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
