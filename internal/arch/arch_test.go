// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

const mod = "github.com/achandrasek6/Query-Match"

// core packages are the reusable library surface: they must not reach into
// the application layer, and leaf packages must not depend on each other.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}

	bans := map[string][]string{
		mod + "/core/match": {mod + "/internal/", mod + "/cmd/", mod + "/core/fasta", mod + "/core/dna"},
		mod + "/core/dna":   {mod + "/internal/", mod + "/cmd/", mod + "/core/match", mod + "/core/fasta"},
		mod + "/core/fasta": {mod + "/internal/", mod + "/cmd/", mod + "/core/match", mod + "/core/dna"},
		mod + "/internal/output": {
			mod + "/internal/app", mod + "/internal/cli", mod + "/internal/demo", mod + "/cmd/",
		},
		mod + "/internal/demo": {
			mod + "/internal/app", mod + "/internal/cli", mod + "/internal/output", mod + "/cmd/",
		},
		mod + "/internal/cli": {
			mod + "/internal/app", mod + "/cmd/",
		},
	}

	var violations []string
	dec := json.NewDecoder(&out)
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode go list output: %v", err)
		}
		banned, ok := bans[p.ImportPath]
		if !ok {
			continue
		}
		for _, imp := range p.Imports {
			for _, b := range banned {
				if imp == b || (strings.HasSuffix(b, "/") && strings.HasPrefix(imp, b)) {
					violations = append(violations, p.ImportPath+" imports "+imp)
				}
			}
		}
	}
	if len(violations) > 0 {
		t.Fatalf("layering violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
