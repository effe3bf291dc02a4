package main

import (
	"os"

	"github.com/mugpunters/vantage/cmd/vantage/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
