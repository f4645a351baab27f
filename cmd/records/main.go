// Package main provides the records CLI.
package main

import (
	"os"

	"github.com/mesh-intelligence/records/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
