package gridbuf

import "github.com/andyrewlee/termsnap/serialize"

// Line is one terminal row.
type Line struct {
	cells    []Cell
	wrapped  bool
	occupied int // columns ever written; cells past it are untouched
}

func newLine(cols int) *Line {
	l := &Line{cells: make([]Cell, cols)}
	for i := range l.cells {
		l.cells[i] = blankCell()
	}
	return l
}

// Cell returns the cell at column x, or nil when x is out of bounds.
func (l *Line) Cell(x int) serialize.Cell {
	if x < 0 || x >= len(l.cells) {
		return nil
	}
	return &l.cells[x]
}

// Length is the occupied column count.
func (l *Line) Length() int { return l.occupied }

// Wrapped reports whether this row soft-continues the previous one.
func (l *Line) Wrapped() bool { return l.wrapped }

func (l *Line) touch(end int) {
	if end > l.occupied {
		l.occupied = end
	}
}

// clearCell resets a column to the unwritten state, detaching it from any
// wide character that covered it.
func (l *Line) clearCell(x int) {
	if x >= 0 && x < len(l.cells) {
		l.cells[x] = blankCell()
	}
}
