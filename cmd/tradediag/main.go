package main

import (
	"os"

	"tradediag/cmd/tradediag/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
