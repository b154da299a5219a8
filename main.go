// ABOUTME: Entry point for the stl-admin CLI
// ABOUTME: Terminal client for the STL Auto leasing back office

package main

import (
	"fmt"
	"os"

	"github.com/stlauto/backoffice-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
