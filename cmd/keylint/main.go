package main

import (
	"fmt"
	"os"

	"github.com/keylint-dev/keylint/internal/cli"
)

var version = "0.1.0-dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "keylint:", err)
		os.Exit(1)
	}
}
