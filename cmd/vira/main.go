package main

import (
	"os"

	"github.com/xiam/vira/cmd/vira/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
