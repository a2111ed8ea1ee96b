package main

import (
	"os"

	"polyshare/cmd/polyshare/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
