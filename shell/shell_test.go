package shell

import (
	"testing"

	"github.com/matryer/is"

	"github.com/patzerhq/patzer/board"
	"github.com/patzerhq/patzer/eval"
	"github.com/patzerhq/patzer/move"
	"github.com/patzerhq/patzer/movegen"
	"github.com/patzerhq/patzer/search"
)

func TestResolveMoverAcrossGames(t *testing.T) {
	is := is.New(t)
	gen := movegen.NewGenerator()
	solver := search.NewSolver(gen, eval.New(gen, false), 0)

	b1 := board.NewBoard()
	b1.Reset()
	cached := solver.Suggest(b1, 2, false)
	is.True(!cached.IsSentinel())

	// a later game reaching the same position gets the memoized move back;
	// committing it must move the current board's piece
	b2 := board.NewBoard()
	b2.Reset()
	again := solver.Suggest(b2, 2, false)
	is.True(again == cached) // memoized by position, not by board

	mover := resolveMover(b2, again)
	is.True(mover != nil)
	is.True(mover != again.Piece)
	is.Equal(mover.Kind(), again.Piece.Kind())
	is.Equal(mover.IsWhite(), again.Piece.IsWhite())

	is.NoErr(b2.Set(again.To, mover))
	is.True(b2.Get(again.From) == nil) // source cell vacated, no duplicate
	count := 0
	for range b2.Pieces(false) {
		count++
	}
	is.Equal(count, 16)
}

func TestResolveMoverRejectsMismatch(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	b.Reset()

	is.True(resolveMover(b, nil) == nil)
	is.True(resolveMover(b, move.NoLegal(true)) == nil)

	pawn := b.Get(board.Cell{Row: 1, Col: 4})
	m := move.New(pawn, board.Cell{Row: 3, Col: 4}, 0, false)
	is.True(resolveMover(b, m) == pawn)

	// once the source cell is vacated the move no longer applies
	is.NoErr(b.Set(board.Cell{Row: 3, Col: 4}, pawn))
	is.True(resolveMover(b, m) == nil)
}
