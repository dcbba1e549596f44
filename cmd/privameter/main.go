package main

import (
	"os"

	"github.com/privameter/privameter/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
