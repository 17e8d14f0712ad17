package board

import "fmt"

// Axis identifies which coordinate of a cell was out of range.
type Axis uint8

const (
	AxisRow Axis = iota
	AxisColumn
)

func (a Axis) String() string {
	if a == AxisRow {
		return "row"
	}
	return "column"
}

// An OutOfRangeError is returned by Set when a cell coordinate falls
// outside [0,7]. Read-only accessors never return it; they treat
// off-board cells as empty/invalid instead.
type OutOfRangeError struct {
	Cell Cell
	Axis Axis
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d of cell (%d, %d) is out of range",
		e.Axis, axisValue(e), e.Cell.Row, e.Cell.Col)
}

func axisValue(e *OutOfRangeError) int {
	if e.Axis == AxisRow {
		return e.Cell.Row
	}
	return e.Cell.Col
}
