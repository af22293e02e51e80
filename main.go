// Libby is a small three page Fyne demo. The root package lets
// `fyne package` build the application from the module root.
package main

import (
	"os"

	"github.com/codegod100/libby/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
