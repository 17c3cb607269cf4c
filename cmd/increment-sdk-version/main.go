// Command increment-sdk-version increments the SDK minor version in the SDK
// package and in every package that depends on it.
package main

import (
	"fmt"
	"os"

	"github.com/nemtech/catapult-scripts/internal/cli"
)

func main() {
	if err := cli.ExecuteCommand("increment-sdk-version", os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
