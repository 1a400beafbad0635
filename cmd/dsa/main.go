package main

import (
	"os"

	"dsa/cmd/dsa/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
