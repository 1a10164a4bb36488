package cli

import (
	"io"
	"strings"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("qmatch-test")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseInlineDefaults(t *testing.T) {
	opt, err := parse(t, "--query", "ACGT", "--text", "ACGTACGT", "--length", "4", "--mismatches", "1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.N != 4 || opt.K != 1 {
		t.Errorf("N=%d K=%d, want 4/1", opt.N, opt.K)
	}
	if !opt.Header {
		t.Error("header should default on")
	}
	if opt.Output != "text" {
		t.Errorf("output %q, want text", opt.Output)
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantErr string
	}{
		{
			"inline conflicts with file",
			[]string{"--query", "ACGT", "--query-file", "q.fa", "--text", "ACGT"},
			"--query conflicts",
		},
		{
			"missing query",
			[]string{"--text", "ACGT"},
			"provide --query",
		},
		{
			"missing text",
			[]string{"--query", "ACGT"},
			"provide --text",
		},
		{
			"zero length",
			[]string{"--query", "ACGT", "--text", "ACGT", "--length", "0"},
			"--length",
		},
		{
			"negative mismatches",
			[]string{"--query", "ACGT", "--text", "ACGT", "--mismatches", "-1"},
			"--mismatches",
		},
		{
			"k not below n",
			[]string{"--query", "ACGT", "--text", "ACGT", "--length", "4", "--mismatches", "4"},
			"filtration",
		},
		{
			"bad output",
			[]string{"--query", "ACGT", "--text", "ACGT", "--output", "xml"},
			"invalid --output",
		},
		{
			"double stdin",
			[]string{"--query-file", "-", "--text-file", "-"},
			"stdin",
		},
		{
			"demo conflicts with sequences",
			[]string{"--demo", "--query", "ACGT"},
			"--demo conflicts",
		},
		{
			"demo text too short",
			[]string{"--demo", "--text-length", "10", "--length", "15"},
			"--text-length",
		},
		{
			"demo query too short",
			[]string{"--demo", "--query-length", "10", "--length", "15"},
			"--query-length",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse(t, tc.argv...)
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseDemoDefaults(t *testing.T) {
	opt, err := parse(t, "--demo")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// reference demonstration parameters
	if opt.TextLen != 200 || opt.QueryLen != 60 || opt.N != 15 || opt.K != 2 {
		t.Errorf("demo defaults = m=%d p=%d n=%d k=%d, want 200/60/15/2",
			opt.TextLen, opt.QueryLen, opt.N, opt.K)
	}
}
