package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/idelchi/dirsize/internal/dirsize"
)

// newLogger builds the logger handed to the calculation.
// Only warnings and above are written, so skipped entries stay silent.
func newLogger(out io.Writer, version string) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    !isTerminal(out),
		DisableTimestamp: true,
	})

	return log.WithField("version", version)
}

// isTerminal reports whether out is an interactive terminal.
func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func logic(options dirsize.Options, out io.Writer) error {
	result, err := dirsize.Calculate(options)
	if err != nil {
		return err
	}

	return PrintReport(result, out)
}
