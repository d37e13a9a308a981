package main

import (
	"os"

	"github.com/xilo-pro/xilo/cmd/xilo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
