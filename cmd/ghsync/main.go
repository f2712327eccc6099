package main

import (
	"os"

	"github.com/asana/ghsync/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
