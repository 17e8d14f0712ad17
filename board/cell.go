package board

import "fmt"

// A Cell is a single coordinate on the board. Row 0 is rank 1 (White's
// back rank) and column 0 is the a-file.
type Cell struct {
	Row int
	Col int
}

// NoCell marks the absence of a coordinate, e.g. for a piece that has not
// been placed yet. It is never a valid cell.
var NoCell = Cell{-1, -1}

const files = "abcdefgh"

// String renders the cell in algebraic notation ("e4").
func (c Cell) String() string {
	if c.Row < 0 || c.Row > 7 || c.Col < 0 || c.Col > 7 {
		return "-"
	}
	return fmt.Sprintf("%c%d", files[c.Col], c.Row+1)
}

// ParseCell converts algebraic notation ("e4") back into a Cell.
func ParseCell(s string) (Cell, error) {
	if len(s) != 2 {
		return NoCell, fmt.Errorf("badly formatted cell %q", s)
	}
	col := int(s[0] - 'a')
	row := int(s[1] - '1')
	if col < 0 || col > 7 || row < 0 || row > 7 {
		return NoCell, fmt.Errorf("cell %q is off the board", s)
	}
	return Cell{Row: row, Col: col}, nil
}
