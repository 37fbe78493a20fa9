package main

import (
	"os"

	"github.com/ngrash/go-civil/cmd/civil/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
