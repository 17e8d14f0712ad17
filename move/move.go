package move

import (
	"fmt"
	"math"

	"github.com/patzerhq/patzer/board"
)

// A Move is an ephemeral candidate produced by the search: a piece, the
// cell it would move to, and the evaluation score attached to the
// resulting position. Moves are never board state; applying one is a
// plain Board.Set.
type Move struct {
	Piece   *board.Piece
	From    board.Cell
	To      board.Cell
	Score   float64
	Capture bool
}

// New records a candidate move of p to target with the given score.
func New(p *board.Piece, target board.Cell, score float64, capture bool) *Move {
	return &Move{
		Piece:   p,
		From:    p.Cell(),
		To:      target,
		Score:   score,
		Capture: capture,
	}
}

// NoLegal returns the sentinel move used when the side to move has no
// legal moves: -Inf when White is to move, +Inf when Black is. Checkmate
// and stalemate both collapse to this signal.
func NoLegal(whiteToMove bool) *Move {
	score := math.Inf(1)
	if whiteToMove {
		score = math.Inf(-1)
	}
	return &Move{From: board.NoCell, To: board.NoCell, Score: score}
}

// IsSentinel reports whether this is a no-legal-moves marker rather than
// a playable move.
func (m *Move) IsSentinel() bool {
	return m.Piece == nil
}

// ShortDescription renders the move in compact algebraic form, e.g.
// "Rd4xd7" for a capture or "Pe2.e4" for a quiet move.
func (m *Move) ShortDescription() string {
	if m.IsSentinel() {
		return "(no move)"
	}
	sep := byte('.')
	if m.Capture {
		sep = 'x'
	}
	return fmt.Sprintf("%c%s%c%s", m.Piece.Kind().Letter(), m.From, sep, m.To)
}

// String adds the evaluation score, for logs and the shell.
func (m *Move) String() string {
	return fmt.Sprintf("%s(%.2f)", m.ShortDescription(), m.Score)
}
