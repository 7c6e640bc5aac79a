package serialize

import (
	"fmt"
	"strconv"
	"strings"
)

// stringHandler accumulates the escape-coded replay string for one pass.
// All state is owned by a single serialize call and never escapes it.
type stringHandler struct {
	buf         Buffer
	visibleRows int

	rows []string // finished rows
	seps []string // separator following each finished row
	cur  strings.Builder

	// pendingBlanks defers empty columns so runs of blanks become literal
	// spaces instead of per-space escape emission.
	pendingBlanks int

	last style // last rendered style
	null style // the buffer's null-cell style

	startRow       int
	lastContentRow int // absolute row of the most recent non-blank cell
}

func newStringHandler(buf Buffer, visibleRows int) *stringHandler {
	return &stringHandler{buf: buf, visibleRows: visibleRows}
}

func (h *stringHandler) beforeSerialize(rowCount, startRow, endRow int) {
	h.startRow = startRow
	h.lastContentRow = -1
	h.null = styleOf(h.buf.NullCell())
	h.last = h.null
	if rowCount > 0 {
		h.rows = make([]string, 0, rowCount)
		h.seps = make([]string, 0, rowCount)
	}
}

func (h *stringHandler) nextCell(cell, _ Cell, row, _ int) {
	// Width-0 placeholders belong to the preceding wide cell and never
	// produce output or style comparisons.
	if cell.Width() == 0 {
		return
	}

	cur := styleOf(cell)
	empty := isEmptyCell(cell)

	// Blank columns only care about background: a foreground change on
	// empty space is invisible and must not force an escape.
	var sgr []int
	changed := false
	if empty {
		if !cur.equalBg(h.last) {
			sgr = diffStyle(cur, h.last, h.null)
			changed = true
		}
	} else {
		sgr = diffStyle(cur, h.last, h.null)
		changed = len(sgr) > 0
	}

	if changed {
		// Queued blanks were painted under the old style; materialize
		// them before switching.
		h.flushBlanks()
		h.writeSGR(sgr)
		h.last = cur
	}

	if empty {
		h.pendingBlanks += cell.Width()
		return
	}
	h.flushBlanks()
	h.cur.WriteString(cell.Chars())
	h.lastContentRow = row
}

func (h *stringHandler) rowEnd(row int, last bool) {
	h.flushBlanks()
	h.rows = append(h.rows, h.cur.String())
	h.cur.Reset()

	// Soft-wrapped continuations never get an explicit break.
	sep := ""
	if !last {
		if next := h.buf.Line(row + 1); next == nil || !next.Wrapped() {
			sep = "\r\n"
		}
	}
	h.seps = append(h.seps, sep)
}

func (h *stringHandler) afterSerialize() {}

func (h *stringHandler) flushBlanks() {
	if h.pendingBlanks == 0 {
		return
	}
	h.cur.WriteString(strings.Repeat(" ", h.pendingBlanks))
	h.pendingBlanks = 0
}

func (h *stringHandler) writeSGR(params []int) {
	h.cur.WriteString("\x1b[")
	for i, p := range params {
		if i > 0 {
			h.cur.WriteByte(';')
		}
		h.cur.WriteString(strconv.Itoa(p))
	}
	h.cur.WriteByte('m')
}

// serializeString assembles the finished rows. When the serialized window is
// essentially the live screen, trailing all-blank rows are discarded; the
// final cursor escape repositions within the serialized coordinate space.
func (h *stringHandler) serializeString(excludeCursor bool) string {
	keep := len(h.rows)
	if h.buf.Length()-h.startRow <= h.visibleRows {
		if h.lastContentRow < 0 {
			keep = 0
		} else if n := h.lastContentRow - h.startRow + 1; n < keep {
			keep = n
		}
	}

	var out strings.Builder
	for i := 0; i < keep; i++ {
		out.WriteString(h.rows[i])
		if i < keep-1 {
			out.WriteString(h.seps[i])
		}
	}

	if !excludeCursor {
		row := h.buf.BaseY() + h.buf.CursorY() - h.startRow + 1
		if row < 1 {
			row = 1
		}
		col := h.buf.CursorX() + 1
		if col < 1 {
			col = 1
		}
		fmt.Fprintf(&out, "\x1b[%d;%dH", row, col)
	}
	return out.String()
}
