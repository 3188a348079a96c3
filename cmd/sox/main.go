// Command sox is the sox interpreter's command-line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/sox/cmd/sox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
