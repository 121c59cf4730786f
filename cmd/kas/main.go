// Command kas solves widget layouts and replays input against them.
package main

import (
	"fmt"
	"os"

	"github.com/kas-gui/kas-go/cmd/kas/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
