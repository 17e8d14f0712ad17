// Package eval scores positions. Evaluation is always from White's
// perspective: positive values favor White.
package eval

import (
	"slices"

	"github.com/samber/lo"

	"github.com/patzerhq/patzer/board"
	"github.com/patzerhq/patzer/movegen"
)

// Material base values indexed by piece kind. The king's value dominates
// everything else so that losing it swamps any positional difference.
var materialValue = [...]float64{
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 3,
	board.Rook:   5,
	board.Queen:  9,
	board.King:   1000,
}

const (
	mobilityWeight = 0.05
	captureWeight  = 0.10
	centerWeight   = 0.01
)

// An Evaluator maps a position to a scalar. With Heuristics off it scores
// material only, which is deterministic and what the search tests rely
// on; with Heuristics on it adds small mobility, capture-potential and
// center-control bonuses for interactive play.
type Evaluator struct {
	Heuristics bool

	gen *movegen.Generator
}

func New(gen *movegen.Generator, heuristics bool) *Evaluator {
	return &Evaluator{Heuristics: heuristics, gen: gen}
}

// Evaluate returns the sum of White's piece scores minus Black's. An
// empty board and the symmetric initial position both evaluate to 0.
func (e *Evaluator) Evaluate(b *board.Board) float64 {
	score := func(p *board.Piece) float64 { return e.pieceScore(b, p) }
	white := lo.SumBy(slices.Collect(b.Pieces(true)), score)
	black := lo.SumBy(slices.Collect(b.Pieces(false)), score)
	return white - black
}

// pieceScore is independent of color; the color only decides whether it
// is added or subtracted in Evaluate, which keeps the metric symmetric.
func (e *Evaluator) pieceScore(b *board.Board, p *board.Piece) float64 {
	base := materialValue[p.Kind()]
	if !e.Heuristics {
		return base
	}

	valid := e.gen.Valid(b, p)
	mobility := mobilityWeight * float64(len(valid))

	capture := 0.0
	center := 0.0
	for _, c := range valid {
		if target := b.Get(c); target != nil && target.IsWhite() != p.IsWhite() {
			capture += captureWeight
		}
		if c.Row >= 2 && c.Row <= 5 && c.Col >= 2 && c.Col <= 5 {
			center += centerWeight
		}
	}
	return base + mobility + capture + center
}
