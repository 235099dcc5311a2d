package main

import (
	"os"

	"hotline/cmd/hotlinectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
