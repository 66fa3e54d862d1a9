// main is the entry point for the workpulse CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/workpulse/cmd"
	"github.com/huangsam/workpulse/internal/iocache"
)

func main() {
	err := cmd.Execute()

	// Always release stores and flush profiles before deciding the exit code.
	iocache.CloseCaching()
	if perr := cmd.StopProfiling(); perr != nil {
		fmt.Fprintln(os.Stderr, "warning:", perr)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
