// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/achandrasek6/Query-Match/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Sequence input (inline or FASTA file, one per sequence)
	Query     string
	Text      string
	QueryFile string
	TextFile  string

	// Matching parameters
	N int // length of matched substrings
	K int // max mismatches per alignment

	// Performance
	Threads   int
	Prefilter bool

	// Demo mode
	Demo     bool
	TextLen  int
	QueryLen int
	Seed     int64

	// Output
	Output string
	Header bool // true unless --no-header

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: approximate n-mer query matching (l-mer filtration, Hamming distance)

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Sequence input
	fs.StringVar(&opt.Query, "query", "", "query sequence, inline [*]")
	fs.StringVar(&opt.Text, "text", "", "text sequence, inline [*]")
	fs.StringVar(&opt.QueryFile, "query-file", "", "query FASTA file ('-' = stdin) [*]")
	fs.StringVar(&opt.TextFile, "text-file", "", "text FASTA file ('-' = stdin) [*]")

	// Matching parameters
	fs.IntVar(&opt.N, "length", 15, "length of matched substrings (n) [15]")
	fs.IntVar(&opt.K, "mismatches", 2, "max mismatches per alignment (k) [2]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.BoolVar(&opt.Prefilter, "prefilter", false, "Bloom-prescreen text positions before scanning [false]")

	// Demo mode
	fs.BoolVar(&opt.Demo, "demo", false, "generate random sequences with a planted approximate match and search them [false]")
	fs.IntVar(&opt.TextLen, "text-length", 200, "demo: length of generated text [200]")
	fs.IntVar(&opt.QueryLen, "query-length", 60, "demo: length of generated query [60]")
	fs.Int64Var(&opt.Seed, "seed", 1, "demo: random seed [1]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	if opt.N <= 0 {
		return opt, errors.New("--length must be ≥ 1")
	}
	if opt.K < 0 {
		return opt, errors.New("--mismatches must be ≥ 0")
	}
	if opt.K+1 > opt.N {
		return opt, errors.New("--mismatches must be < --length (filtration needs n ≥ k+1)")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}

	if opt.Demo {
		if opt.Query != "" || opt.Text != "" || opt.QueryFile != "" || opt.TextFile != "" {
			return opt, errors.New("--demo conflicts with --query/--text/--query-file/--text-file")
		}
		if opt.TextLen < opt.N {
			return opt, errors.New("--text-length must be ≥ --length")
		}
		if opt.QueryLen < opt.N {
			return opt, errors.New("--query-length must be ≥ --length")
		}
		return opt, nil
	}

	switch {
	case opt.Query != "" && opt.QueryFile != "":
		return opt, errors.New("--query conflicts with --query-file")
	case opt.Query == "" && opt.QueryFile == "":
		return opt, errors.New("provide --query or --query-file (or --demo)")
	}
	switch {
	case opt.Text != "" && opt.TextFile != "":
		return opt, errors.New("--text conflicts with --text-file")
	case opt.Text == "" && opt.TextFile == "":
		return opt, errors.New("provide --text or --text-file (or --demo)")
	}
	if opt.QueryFile == "-" && opt.TextFile == "-" {
		return opt, errors.New("only one of --query-file/--text-file may read stdin")
	}
	return opt, nil
}
