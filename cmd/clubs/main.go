// Package main is the entry point for the clubs command-line tool.
package main

import (
	"os"

	"github.com/homesweetlove/club-of-dcu.io/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
