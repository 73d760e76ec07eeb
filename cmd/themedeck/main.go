// Command themedeck browses, previews and exports the built-in design themes.
package main

import (
	"fmt"
	"os"

	"github.com/claritypath/themedeck/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
