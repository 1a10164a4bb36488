// pkg/api/matches_v1.go
// Package api defines the stable (v1) wire schemas emitted by qmatch.
// Field names are frozen; additions must be backward compatible.
package api

// MatchV1 is one verified alignment: 1-based starts of the two n-mers and
// their Hamming distance.
type MatchV1 struct {
	QueryStart int `json:"query_start"`
	TextStart  int `json:"text_start"`
	Mismatches int `json:"mismatches"`
}
