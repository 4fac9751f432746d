package main

import (
	"os"

	"github.com/dshills/linesift/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
