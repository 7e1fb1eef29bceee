package main

import (
	"os"

	"github.com/penwyp/go-codebase-viz/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
