package movegen

import (
	"github.com/rs/zerolog/log"

	"github.com/patzerhq/patzer/board"
)

type checkKey struct {
	hash  uint64
	white bool
}

// A Generator filters reachable cells down to legal ones and answers
// check queries. It owns the check-detection cache, so its lifetime
// should span a game session; all methods assume single-threaded access.
type Generator struct {
	checkCache map[checkKey]bool

	lookups uint64
	hits    uint64
}

func NewGenerator() *Generator {
	return &Generator{checkCache: make(map[checkKey]bool)}
}

// Valid returns the cells p can legally move to: every reachable cell
// whose trial move does not leave p's own king in check. The board is
// fingerprint-identical before and after the call.
func (g *Generator) Valid(b *board.Board, p *board.Piece) []board.Cell {
	if !b.IsValidCell(p.Cell()) {
		return nil
	}
	var cells []board.Cell
	for _, target := range Reachable(b, p) {
		inCheck := false
		b.Simulate(p, target, func() {
			inCheck = g.InCheck(b, p.IsWhite())
		})
		if !inCheck {
			cells = append(cells, target)
		}
	}
	return cells
}

// InCheck reports whether the given color's king is attacked by any
// opposing piece. A color with no king on the board is never in check;
// positions built by direct placement may lack one. Results are memoized
// by position hash and color for the lifetime of the generator.
func (g *Generator) InCheck(b *board.Board, white bool) bool {
	key := checkKey{hash: b.Hash64(), white: white}
	g.lookups++
	if inCheck, ok := g.checkCache[key]; ok {
		g.hits++
		return inCheck
	}
	inCheck := g.inCheck(b, white)
	g.checkCache[key] = inCheck
	return inCheck
}

func (g *Generator) inCheck(b *board.Board, white bool) bool {
	king := b.FindKing(white)
	if king == nil {
		return false
	}
	kingCell := king.Cell()
	for attacker := range b.Pieces(!white) {
		for _, c := range Reachable(b, attacker) {
			if c == kingCell {
				return true
			}
		}
	}
	return false
}

// LogCacheStats emits the check-cache counters at debug level.
func (g *Generator) LogCacheStats() {
	log.Debug().
		Int("entries", len(g.checkCache)).
		Uint64("lookups", g.lookups).
		Uint64("hits", g.hits).
		Msg("check-cache-stats")
}
