package main

import (
	"os"

	"github.com/nestegg-dev/nestegg/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
