// makeicon converts the branding pictures into .ico files before packaging
package main

import (
	"os"

	"liquido-calc/internal/cli"
)

var Version = "1.0.0"

func main() {
	cli.Version = Version

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
