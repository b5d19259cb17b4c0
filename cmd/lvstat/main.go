// Package main provides the entry point for the lvstat CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvstat/cmd/lvstat/commands"
)

func main() {
	err := commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
