// internal/output/pipe.go
package output

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the downstream consumer (a `head`,
// say) closed stdout early. Callers treat that as success, not failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
