package move

import (
	"math"
	"testing"

	"github.com/matryer/is"

	"github.com/patzerhq/patzer/board"
)

func TestShortDescription(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()

	rook := board.NewPiece(board.Rook, true)
	is.NoErr(b.Set(board.Cell{Row: 3, Col: 3}, rook))

	quiet := New(rook, board.Cell{Row: 3, Col: 6}, 0.5, false)
	is.Equal(quiet.ShortDescription(), "Rd4.g4")
	is.Equal(quiet.String(), "Rd4.g4(0.50)")

	capture := New(rook, board.Cell{Row: 6, Col: 3}, 6.0, true)
	is.Equal(capture.ShortDescription(), "Rd4xd7")
	is.Equal(capture.String(), "Rd4xd7(6.00)")
}

func TestBlackMoveUsesUppercaseKindLetter(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()

	knight := board.NewPiece(board.Knight, false)
	is.NoErr(b.Set(board.Cell{Row: 7, Col: 1}, knight))

	m := New(knight, board.Cell{Row: 5, Col: 2}, -0.25, false)
	is.Equal(m.ShortDescription(), "Nb8.c6")
}

func TestNoLegal(t *testing.T) {
	is := is.New(t)

	white := NoLegal(true)
	is.True(white.IsSentinel())
	is.True(math.IsInf(white.Score, -1))
	is.Equal(white.ShortDescription(), "(no move)")

	black := NoLegal(false)
	is.True(black.IsSentinel())
	is.True(math.IsInf(black.Score, 1))
}

func TestNewRecordsSourceCell(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()

	pawn := board.NewPiece(board.Pawn, true)
	is.NoErr(b.Set(board.Cell{Row: 1, Col: 4}, pawn))

	m := New(pawn, board.Cell{Row: 3, Col: 4}, 0, false)
	is.Equal(m.From, board.Cell{Row: 1, Col: 4})
	is.Equal(m.To, board.Cell{Row: 3, Col: 4})

	// the record is ephemeral; moving the piece later does not change it
	is.NoErr(b.Set(board.Cell{Row: 3, Col: 4}, pawn))
	is.Equal(m.From, board.Cell{Row: 1, Col: 4})
}
