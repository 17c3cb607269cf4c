// Command refresh-eslint-config regenerates the .eslintrc files of every
// package from the shared templates.
package main

import (
	"fmt"
	"os"

	"github.com/nemtech/catapult-scripts/internal/cli"
)

func main() {
	if err := cli.ExecuteCommand("refresh-eslint-config", os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
