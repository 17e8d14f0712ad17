package board

import (
	"iter"
	"strings"
)

// Dim is the board dimension; chess boards are 8x8.
const Dim = 8

// A Board holds the full position: an 8x8 grid of piece slots. The board
// is the single shared mutable resource of the engine; speculative moves
// during legality checking and search mutate it in place and restore it
// before returning (see Simulate).
type Board struct {
	grid [Dim][Dim]*Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// IsValidCell reports whether both coordinates lie on the board. NoCell
// (and any other absent coordinate) is invalid.
func (b *Board) IsValidCell(c Cell) bool {
	return c.Row >= 0 && c.Row < Dim && c.Col >= 0 && c.Col < Dim
}

// Get returns the occupant of c, or nil if the cell is empty or off the
// board. It never fails; ray scanning reads off-board cells freely.
func (b *Board) Get(c Cell) *Piece {
	if !b.IsValidCell(c) {
		return nil
	}
	return b.grid[c.Row][c.Col]
}

// Set places p on c, or empties c when p is nil. Placement has move
// semantics: the piece's previous cell is cleared, and any prior occupant
// of c is overwritten (this is how captures happen). The piece's stored
// cell and the grid are updated together; they are never observable in a
// partially updated state.
func (b *Board) Set(c Cell, p *Piece) error {
	if c.Row < 0 || c.Row >= Dim {
		return &OutOfRangeError{Cell: c, Axis: AxisRow}
	}
	if c.Col < 0 || c.Col >= Dim {
		return &OutOfRangeError{Cell: c, Axis: AxisColumn}
	}
	if p != nil {
		if prev := p.cell; b.IsValidCell(prev) && b.grid[prev.Row][prev.Col] == p {
			b.grid[prev.Row][prev.Col] = nil
		}
		p.cell = c
	}
	b.grid[c.Row][c.Col] = p
	return nil
}

// CellEmpty reports whether c is on the board and unoccupied.
func (b *Board) CellEmpty(c Cell) bool {
	return b.IsValidCell(c) && b.grid[c.Row][c.Col] == nil
}

// CanEnter reports whether p may move onto c: the cell must be on the
// board and either empty or held by the opposing color.
func (b *Board) CanEnter(p *Piece, c Cell) bool {
	if !b.IsValidCell(c) {
		return false
	}
	occ := b.grid[c.Row][c.Col]
	return occ == nil || occ.white != p.white
}

// CanCapture reports whether p may capture on c: the cell must be on the
// board and held by the opposing color.
func (b *Board) CanCapture(p *Piece, c Cell) bool {
	if !b.IsValidCell(c) {
		return false
	}
	occ := b.grid[c.Row][c.Col]
	return occ != nil && occ.white != p.white
}

// Clear empties the grid.
func (b *Board) Clear() {
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			b.grid[row][col] = nil
		}
	}
}

var backRank = [Dim]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Reset clears the board and places the standard 32-piece initial setup:
// White on ranks 1-2, Black on ranks 7-8.
func (b *Board) Reset() {
	b.Clear()
	for col := 0; col < Dim; col++ {
		b.Set(Cell{0, col}, NewPiece(backRank[col], true))
		b.Set(Cell{1, col}, NewPiece(Pawn, true))
		b.Set(Cell{6, col}, NewPiece(Pawn, false))
		b.Set(Cell{7, col}, NewPiece(backRank[col], false))
	}
}

// FindKing returns the king of the given color, or nil if that color has
// no king on the board.
func (b *Board) FindKing(white bool) *Piece {
	for p := range b.Pieces(white) {
		if p.kind == King {
			return p
		}
	}
	return nil
}

// Pieces iterates over all pieces of the given color in row-major scan
// order (row 0 to 7, column 0 to 7). The order is stable, which the
// search relies on for deterministic move ranking.
func (b *Board) Pieces(white bool) iter.Seq[*Piece] {
	return func(yield func(*Piece) bool) {
		for row := 0; row < Dim; row++ {
			for col := 0; col < Dim; col++ {
				p := b.grid[row][col]
				if p == nil || p.white != white {
					continue
				}
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Simulate applies the trial move of p to target, runs fn against the
// resulting position, and restores the exact prior layout, including the
// back-references of p and any captured occupant. p must currently be on
// the board and target must be a valid cell; both hold for every cell
// produced by move generation.
func (b *Board) Simulate(p *Piece, target Cell, fn func()) {
	from := p.cell
	captured := b.grid[target.Row][target.Col]

	b.grid[from.Row][from.Col] = nil
	b.grid[target.Row][target.Col] = p
	p.cell = target

	fn()

	b.grid[from.Row][from.Col] = p
	p.cell = from
	b.grid[target.Row][target.Col] = captured
	if captured != nil {
		captured.cell = target
	}
}

// String renders the position for terminal display, rank 8 at the top,
// with rank and file labels.
func (b *Board) String() string {
	var sb strings.Builder
	for row := Dim - 1; row >= 0; row-- {
		sb.WriteByte(byte('1' + row))
		sb.WriteByte(' ')
		for col := 0; col < Dim; col++ {
			sb.WriteByte(' ')
			if p := b.grid[row][col]; p != nil {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for col := 0; col < Dim; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(files[col])
	}
	sb.WriteByte('\n')
	return sb.String()
}
