package serialize

// span is a resolved traversal window: inclusive absolute rows plus an
// inclusive column bound applied per row (further clamped by each line's
// occupied length).
type span struct {
	startRow int
	endRow   int
	startCol int
	endCol   int
}

// rowHandler receives traversal events from walk. Concrete serializers
// implement only these hooks; the row/column iteration itself is shared.
type rowHandler interface {
	beforeSerialize(rowCount, startRow, endRow int)
	// nextCell is invoked for every occupied column. prev is the previous
	// cell on the same row, nil at the start of a row.
	nextCell(cell, prev Cell, row, col int)
	rowEnd(row int, last bool)
	afterSerialize()
}

// walk drives a handler over every occupied cell in the span. Absent lines
// and cells are skipped silently: terminal buffers are legitimately sparse
// and "nothing there" is not an error.
func walk(buf Buffer, sp span, h rowHandler) {
	h.beforeSerialize(sp.endRow-sp.startRow+1, sp.startRow, sp.endRow)
	for y := sp.startRow; y <= sp.endRow; y++ {
		if line := buf.Line(y); line != nil {
			end := line.Length() - 1
			if sp.endCol < end {
				end = sp.endCol
			}
			var prev Cell
			for x := sp.startCol; x <= end; x++ {
				cell := line.Cell(x)
				if cell == nil {
					continue
				}
				h.nextCell(cell, prev, y, x)
				prev = cell
			}
		}
		h.rowEnd(y, y == sp.endRow)
	}
	h.afterSerialize()
}
