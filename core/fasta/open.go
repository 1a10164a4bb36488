// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path, transparently decompressing gzip. "-" means stdin.
// Gzip is detected by peeking at the magic number (1F 8B), which works for
// non-seekable inputs like pipes too.
func openReader(path string) (io.ReadCloser, error) {
	var base io.ReadCloser
	if path == "-" {
		base = io.NopCloser(os.Stdin)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		base = fh
	}
	br := bufio.NewReader(base)
	if sig, err := br.Peek(2); err == nil && sig[0] == 0x1f && sig[1] == 0x8b {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = base.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, base}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{base}}, nil
}
