package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/idelchi/dirsize/internal/dirsize"
)

// PrintReport writes one "<path>: <size>" line per counted file, sorted by
// path, followed by a "Total: <total>" line.
func PrintReport(result *dirsize.Result, writer io.Writer) error {
	w := bufio.NewWriter(writer)

	for _, entry := range result.Entries() {
		fmt.Fprintf(w, "%s: %d\n", entry.Path, entry.Size)
	}

	fmt.Fprintf(w, "Total: %d\n", result.TotalSize)

	return w.Flush()
}
