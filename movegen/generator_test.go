package movegen

import (
	"testing"

	"github.com/matryer/is"

	"github.com/patzerhq/patzer/board"
)

func TestInCheckByKnight(t *testing.T) {
	is := is.New(t)
	b := parse(t, `
		. . . . . . . .
		. . . . . K . .
		. . . . . . . .
		. . . . n . . .
		. . . . . . . .
		. . . . . k . .
		. . . . . . . .
		. . . . . . . .`)

	gen := NewGenerator()
	is.True(gen.InCheck(b, true))
	is.True(!gen.InCheck(b, false))
}

func TestInCheckByQueen(t *testing.T) {
	is := is.New(t)
	b := parse(t, `
		. . . . . . . .
		. . . . . Q . .
		. . . . . . . .
		. . . . . . . .
		. . k . . K . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .`)

	gen := NewGenerator()
	is.True(!gen.InCheck(b, true))
	is.True(gen.InCheck(b, false))
}

func TestInCheckByPawns(t *testing.T) {
	is := is.New(t)
	b := parse(t, `
		. . . . . . . .
		. . . . . . . .
		. . k . . . . .
		. P . . . . p .
		. . . . . K . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .`)

	gen := NewGenerator()
	is.True(gen.InCheck(b, true))
	is.True(gen.InCheck(b, false))
}

func TestInCheckAbsentKing(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator()

	b := board.NewBoard()
	is.True(!gen.InCheck(b, true))
	is.True(!gen.InCheck(b, false))

	// direct placement without kings
	is.NoErr(b.Set(board.Cell{Row: 3, Col: 3}, board.NewPiece(board.Queen, false)))
	is.True(!gen.InCheck(b, true))
}

func TestInCheckMemoized(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	b.Reset()

	gen := NewGenerator()
	first := gen.InCheck(b, true)
	lookupsBefore := gen.lookups
	hitsBefore := gen.hits
	is.Equal(gen.InCheck(b, true), first)
	is.Equal(gen.lookups, lookupsBefore+1)
	is.Equal(gen.hits, hitsBefore+1)
}

func TestValidFiltersPinnedPiece(t *testing.T) {
	is := is.New(t)
	b := parse(t, `
		. . . . q . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . R . . .
		. . . . K . . .`)

	gen := NewGenerator()
	rook := b.Get(board.Cell{Row: 1, Col: 4})
	valid := gen.Valid(b, rook)

	// the rook is pinned to the e-file; sideways moves expose the king
	for _, c := range valid {
		is.Equal(c.Col, 4)
	}
	is.Equal(len(valid), 6) // e3 through e8, capturing the queen
}

func TestValidKingCannotWalkIntoCheck(t *testing.T) {
	is := is.New(t)
	b := parse(t, `
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		r . . . . . . .
		. . . . K . . .`)

	gen := NewGenerator()
	king := b.Get(board.Cell{Row: 0, Col: 4})
	valid := gen.Valid(b, king)

	// every cell on rank 2 is covered by the rook
	for _, c := range valid {
		is.Equal(c.Row, 0)
	}
	is.Equal(len(valid), 2) // d1 and f1
}

func TestValidLeavesBoardIntact(t *testing.T) {
	is := is.New(t)
	b := parse(t, `
		r . b q . . . .
		. . p . . . . .
		. p . . . . . .
		. . . . p . . .
		. . . P . . . N
		. . . . . P . .
		P . P . . . . .
		R . B Q K . . .`)

	gen := NewGenerator()
	before := b.Fingerprint()
	for _, white := range []bool{true, false} {
		for p := range b.Pieces(white) {
			gen.Valid(b, p)
			is.Equal(b.Fingerprint(), before)
		}
	}
}

func TestValidUnplacedPiece(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	b.Reset()
	gen := NewGenerator()
	is.Equal(len(gen.Valid(b, board.NewPiece(board.Rook, true))), 0)
}
