package main

import (
	"os"

	"github.com/dmitrymomot/argkit/cmd/datafetch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
