// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"github.com/achandrasek6/Query-Match/core/match"
)

// WriteText prints one TSV row per pair. Rows arrive already sorted by the
// matcher contract; the writer preserves order.
func WriteText(w io.Writer, pairs []match.Pair, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "query_start\ttext_start\tmismatches"); err != nil {
			return err
		}
	}
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%d\n", p.QueryStart, p.TextStart, p.Mismatches); err != nil {
			return err
		}
	}
	return nil
}
