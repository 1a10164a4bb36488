package fasta

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadAllMultiRecord(t *testing.T) {
	in := ">seq1 description text\nACGT\nacgt\n\n>seq2\nTTTT\n"
	recs, err := ReadAll(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "seq1" {
		t.Errorf("ID %q, want seq1 (description stripped)", recs[0].ID)
	}
	if string(recs[0].Seq) != "ACGTacgt" {
		t.Errorf("seq %q, want lines concatenated unmodified", recs[0].Seq)
	}
	if recs[1].ID != "seq2" || string(recs[1].Seq) != "TTTT" {
		t.Errorf("second record = %+v", recs[1])
	}
}

func TestReadAllHeaderless(t *testing.T) {
	recs, err := ReadAll(strings.NewReader("ACGT\nACGT\n"))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(recs) != 1 || string(recs[0].Seq) != "ACGTACGT" || recs[0].ID != "" {
		t.Fatalf("headerless parse = %+v", recs)
	}
}

func TestReadFirst(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "in.fa")
	if err := os.WriteFile(fn, []byte(">empty\n>real\nACGTACGT\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rec, err := ReadFirst(fn)
	if err != nil {
		t.Fatalf("ReadFirst: %v", err)
	}
	if rec.ID != "real" || string(rec.Seq) != "ACGTACGT" {
		t.Errorf("got %+v, want first record with a non-empty sequence", rec)
	}
}

func TestReadFirstGzip(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "in.fa.gz")

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write([]byte(">gz\nACGT\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fn, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	rec, err := ReadFirst(fn)
	if err != nil {
		t.Fatalf("ReadFirst gzip: %v", err)
	}
	if rec.ID != "gz" || string(rec.Seq) != "ACGT" {
		t.Errorf("got %+v", rec)
	}
}

func TestReadFirstErrors(t *testing.T) {
	if _, err := ReadFirst(filepath.Join(t.TempDir(), "missing.fa")); err == nil {
		t.Error("expected error for missing file")
	}

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.fa")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFirst(empty); err == nil {
		t.Error("expected error for input without sequence records")
	}
}
