// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"github.com/achandrasek6/Query-Match/core/match"
	"github.com/achandrasek6/Query-Match/pkg/api"
)

// ToAPIMatch converts a domain pair to the stable wire schema (v1).
func ToAPIMatch(p match.Pair) api.MatchV1 {
	return api.MatchV1{
		QueryStart: p.QueryStart,
		TextStart:  p.TextStart,
		Mismatches: p.Mismatches,
	}
}

// WriteJSON writes a single pretty-indented JSON array of v1 matches.
// An empty result is rendered as [], not null.
func WriteJSON(w io.Writer, pairs []match.Pair) error {
	out := make([]api.MatchV1, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, ToAPIMatch(p))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
