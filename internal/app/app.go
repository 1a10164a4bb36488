// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"

	"github.com/achandrasek6/Query-Match/core/fasta"
	"github.com/achandrasek6/Query-Match/core/match"
	"github.com/achandrasek6/Query-Match/internal/cli"
	"github.com/achandrasek6/Query-Match/internal/demo"
	"github.com/achandrasek6/Query-Match/internal/output"
	"github.com/achandrasek6/Query-Match/internal/version"
)

// RunContext parses argv, runs the matcher (or the demo), and writes results
// to stdout. Exit codes: 0 success (a clean run with zero matches is still
// success), 2 usage or input error, 3 write failure. A broken pipe on stdout
// is success.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("qmatch")
	fs.SetOutput(io.Discard)

	usage := func() int {
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); output.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if len(argv) == 0 {
		return usage()
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage()
		}
		_, _ = fmt.Fprintln(stderr, err)
		if code := usage(); code != 0 {
			return code
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "qmatch version %s\n", version.Version)
		if e := outw.Flush(); output.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	m := match.New(match.Config{
		N:         opts.N,
		K:         opts.K,
		Threads:   opts.Threads,
		Prefilter: opts.Prefilter,
	})

	if opts.Demo {
		rng := rand.New(rand.NewSource(opts.Seed))
		prm := demo.Params{TextLen: opts.TextLen, QueryLen: opts.QueryLen, N: opts.N, K: opts.K}
		if err := demo.Run(outw, rng, prm, m); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		if e := outw.Flush(); output.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	query, err := loadSequence(opts.Query, opts.QueryFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	text, err := loadSequence(opts.Text, opts.TextFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	pairs, err := m.FindContext(parent, query, text)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	switch opts.Output {
	case "json":
		err = output.WriteJSON(outw, pairs)
	default:
		err = output.WriteText(outw, pairs, opts.Header)
	}
	if output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if e := outw.Flush(); output.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

// Run executes with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func loadSequence(inline, path string) ([]byte, error) {
	if inline != "" {
		return []byte(inline), nil
	}
	rec, err := fasta.ReadFirst(path)
	if err != nil {
		return nil, err
	}
	return rec.Seq, nil
}
