package main

import (
	"fmt"
	"os"

	"github.com/funvibe/ferro/internal/config"
	"github.com/funvibe/ferro/pkg/cli"
)

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			// Print stack trace for debugging
			if os.Getenv("DEBUG") == "1" {
				panic(r) // Re-panic to get stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if os.Getenv("FERRO_TEST_MODE") == "1" {
		config.IsTestMode = true
	}

	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
