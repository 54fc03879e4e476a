// jenkins-builder triggers a Jenkins build for every project named in the
// PROJECTS environment variable, stopping at the first failure.
package main

import (
	"os"

	"jenkinsbuilder/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
