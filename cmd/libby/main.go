package main

import (
	"os"

	"github.com/codegod100/libby/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
