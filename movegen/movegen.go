// Package movegen generates piece moves: the raw geometric reachability
// of each piece kind, and on top of that the legality filter that rejects
// moves leaving the mover's own king in check.
package movegen

import "github.com/patzerhq/patzer/board"

type direction struct {
	dRow int
	dCol int
}

var (
	orthogonals = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonals   = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	royals      = []direction{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	knightJumps = []direction{
		{-2, -1}, {-2, 1}, {2, -1}, {2, 1},
		{-1, -2}, {-1, 2}, {1, -2}, {1, 2},
	}
)

// Reachable returns every cell p could geometrically move to, ignoring
// whether the move would expose p's own king. Legality is layered on top
// by Generator.Valid.
func Reachable(b *board.Board, p *board.Piece) []board.Cell {
	if !b.IsValidCell(p.Cell()) {
		return nil
	}
	switch p.Kind() {
	case board.Pawn:
		return pawnReachable(b, p)
	case board.Rook:
		return slide(b, p, orthogonals)
	case board.Bishop:
		return slide(b, p, diagonals)
	case board.Queen:
		return slide(b, p, royals)
	case board.Knight:
		return step(b, p, knightJumps)
	case board.King:
		return step(b, p, royals)
	}
	return nil
}

// pawnReachable: one cell forward onto an empty cell, two from the
// starting rank when both cells are empty, and the two forward diagonals
// when they hold an opposing piece. No en-passant.
func pawnReachable(b *board.Board, p *board.Piece) []board.Cell {
	from := p.Cell()
	forward, startRow := 1, 1
	if !p.IsWhite() {
		forward, startRow = -1, 6
	}

	var cells []board.Cell
	oneAhead := board.Cell{Row: from.Row + forward, Col: from.Col}
	if b.CellEmpty(oneAhead) {
		cells = append(cells, oneAhead)
		if from.Row == startRow {
			twoAhead := board.Cell{Row: from.Row + 2*forward, Col: from.Col}
			if b.CellEmpty(twoAhead) {
				cells = append(cells, twoAhead)
			}
		}
	}
	for _, dCol := range []int{1, -1} {
		hit := board.Cell{Row: from.Row + forward, Col: from.Col + dCol}
		if b.CanCapture(p, hit) {
			cells = append(cells, hit)
		}
	}
	return cells
}

// slide walks each ray until the board edge, stopping before an own piece
// and including then stopping on an opposing piece.
func slide(b *board.Board, p *board.Piece, dirs []direction) []board.Cell {
	from := p.Cell()
	var cells []board.Cell
	for _, d := range dirs {
		cur := board.Cell{Row: from.Row + d.dRow, Col: from.Col + d.dCol}
		for {
			if b.CellEmpty(cur) {
				cells = append(cells, cur)
				cur = board.Cell{Row: cur.Row + d.dRow, Col: cur.Col + d.dCol}
				continue
			}
			if b.CanCapture(p, cur) {
				cells = append(cells, cur)
			}
			break
		}
	}
	return cells
}

// step includes each fixed-offset cell that is empty or holds an opposing
// piece; no path blocking applies.
func step(b *board.Board, p *board.Piece, dirs []direction) []board.Cell {
	from := p.Cell()
	var cells []board.Cell
	for _, d := range dirs {
		target := board.Cell{Row: from.Row + d.dRow, Col: from.Col + d.dCol}
		if b.CanEnter(p, target) {
			cells = append(cells, target)
		}
	}
	return cells
}
