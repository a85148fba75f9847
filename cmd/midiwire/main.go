package main

import (
	"os"

	"midiwire/cmd/midiwire/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
