package main

import (
	"os"

	"github.com/resurgence-tools/edjb/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
