package model

// CellState is the state of a single cell. The zero value is Dead.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// IsAlive reports whether the cell is alive
func (s CellState) IsAlive() bool {
	return s == Alive
}

func (s CellState) String() string {
	if s == Alive {
		return "ALIVE"
	}
	return "DEAD"
}

// StateOf converts a boolean liveness to a CellState
func StateOf(alive bool) CellState {
	if alive {
		return Alive
	}
	return Dead
}

// Coordinates identifies a cell by zero-based row and column
type Coordinates struct {
	Row int
	Col int
}

// Shift is a relative offset from one cell to another
type Shift struct {
	Row int
	Col int
}

// Apply returns the coordinates moved by the shift
func (c Coordinates) Apply(s Shift) Coordinates {
	return Coordinates{Row: c.Row + s.Row, Col: c.Col + s.Col}
}

// neighborShifts lists the eight offsets around a cell, row by row
var neighborShifts = [8]Shift{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
