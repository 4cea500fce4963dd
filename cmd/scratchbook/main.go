// Command scratchbook manages a local scratchcard and lottery ticket catalog.
package main

import (
	"os"

	"github.com/mesh-intelligence/scratchbook/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
