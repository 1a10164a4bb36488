// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Record represents a parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// ReadAll parses every record from r. Sequence lines are concatenated with
// surrounding whitespace trimmed; bases are passed through unvalidated.
func ReadAll(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs []Record
		cur  *Record
	)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			recs = append(recs, Record{ID: parseHeaderID(line[1:])})
			cur = &recs[len(recs)-1]
			continue
		}
		if cur == nil {
			// headerless input: treat everything as one anonymous record
			recs = append(recs, Record{})
			cur = &recs[len(recs)-1]
		}
		cur.Seq = append(cur.Seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	return recs, nil
}

// ReadFirst opens path (plain, gzip, or "-" for stdin) and returns the first
// record with a non-empty sequence. An input without one is an error.
func ReadFirst(path string) (Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return Record{}, err
	}
	defer func() { _ = rc.Close() }()

	recs, err := ReadAll(rc)
	if err != nil {
		return Record{}, err
	}
	for _, r := range recs {
		if len(r.Seq) > 0 {
			return r, nil
		}
	}
	return Record{}, fmt.Errorf("fasta: no sequence records in %s", path)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
