// Command dirsize reports the apparent disk usage of a directory tree,
// counting hard-linked content once.
package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/idelchi/dirsize/internal/cli"
)

// version is set at build time.
var version = "unknown - unofficial & generated by unknown"

func main() {
	err := cli.New(version).Execute()

	switch {
	case err == nil:
	case errors.Is(err, cli.ErrUsage):
		os.Exit(1)
	default:
		logrus.WithError(err).Fatal("computing directory size")
	}
}
