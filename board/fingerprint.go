package board

import (
	"strings"

	"github.com/cespare/xxhash"
)

// Fingerprint serializes the position canonically: eight lines from rank
// 8 down to rank 1, eight space-separated tokens per line, "." for an
// empty cell, the piece letter otherwise (uppercase White, lowercase
// Black). Two boards with identical placement produce identical
// fingerprints, which makes the string usable directly as a cache key.
// The same format is the on-disk position format (see package boardio).
func (b *Board) Fingerprint() string {
	var sb strings.Builder
	for row := Dim - 1; row >= 0; row-- {
		if row < Dim-1 {
			sb.WriteByte('\n')
		}
		for col := 0; col < Dim; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if p := b.grid[row][col]; p != nil {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Hash64 returns a 64-bit digest of the fingerprint, for compact cache
// keys and autosave filenames.
func (b *Board) Hash64() uint64 {
	return xxhash.Sum64String(b.Fingerprint())
}
