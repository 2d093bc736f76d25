package main

import (
	"os"

	"github.com/meenmo/datecalc/cmd/datecalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
