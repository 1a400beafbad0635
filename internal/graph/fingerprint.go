package graph

import (
	"encoding/hex"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex digest of g's shape and weights, independent
// of storage layout and insertion order.
//
// It hashes a canonical description with BLAKE2b-256 and truncates to 10
// bytes (20 hex chars).
func Fingerprint(g Graph) string {
	sum := blake2b.Sum256([]byte(canonical(g)))
	return hex.EncodeToString(sum[:10])
}

func canonical(g Graph) string {
	lines := make([]string, 0, g.EdgeCount()+1)
	for _, e := range g.Edges() {
		from, to := e.From.Name, e.To.Name
		if !g.Directed() && to < from {
			from, to = to, from
		}
		lines = append(lines, from+"\x00"+to+"\x00"+FormatWeight(e.Weight))
	}
	slices.Sort(lines)

	var b strings.Builder
	b.WriteString("directed=" + boolString(g.Directed()) + ";weighted=" + boolString(g.Weighted()) + "\n")
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

func boolString(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
