// Package main is the entry point for the licsum binary.
package main

import (
	"os"

	"licsum/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
