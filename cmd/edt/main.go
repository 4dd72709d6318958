// Package main provides the edt command-line tool.
package main

import (
	"os"

	"github.com/edt-labs/edt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
