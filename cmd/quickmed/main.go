package main

import (
	"os"

	"github.com/okian/quickmed/cmd/quickmed/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
