package gridbuf

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/andyrewlee/termsnap/serialize"
)

// Buffer is one logical screen: the trailing rows of lines form the live
// screen, everything before them is scrollback.
type Buffer struct {
	kind       serialize.BufferKind
	cols, rows int
	lines      []*Line
	cursorX    int
	cursorY    int // relative to the top of the live screen
	maxHistory int
	nullCell   Cell
}

func newBuffer(kind serialize.BufferKind, cols, rows, maxHistory int) *Buffer {
	b := &Buffer{
		kind:       kind,
		cols:       cols,
		rows:       rows,
		maxHistory: maxHistory,
		nullCell:   blankCell(),
	}
	b.lines = make([]*Line, rows)
	for i := range b.lines {
		b.lines[i] = newLine(cols)
	}
	return b
}

func (b *Buffer) Kind() serialize.BufferKind { return b.kind }
func (b *Buffer) CursorX() int               { return b.cursorX }
func (b *Buffer) CursorY() int               { return b.cursorY }
func (b *Buffer) BaseY() int                 { return len(b.lines) - b.rows }

// ViewportY pins the viewport to the bottom of the buffer; gridbuf has no
// independent scroll position.
func (b *Buffer) ViewportY() int { return b.BaseY() }

func (b *Buffer) Length() int { return len(b.lines) }

func (b *Buffer) Line(y int) serialize.Line {
	if y < 0 || y >= len(b.lines) {
		return nil
	}
	return b.lines[y]
}

func (b *Buffer) NullCell() serialize.Cell { return &b.nullCell }

// line returns the concrete row, bypassing the accessor interface.
func (b *Buffer) line(y int) *Line {
	if y < 0 || y >= len(b.lines) {
		return nil
	}
	return b.lines[y]
}

// screenLine returns the row at screen-relative index y.
func (b *Buffer) screenLine(y int) *Line {
	return b.line(b.BaseY() + y)
}

// scroll pushes a blank row in at the bottom, moving the top screen row into
// scrollback, and trims history to maxHistory.
func (b *Buffer) scroll() {
	b.lines = append(b.lines, newLine(b.cols))
	if over := len(b.lines) - (b.rows + b.maxHistory); over > 0 {
		b.lines = b.lines[over:]
	}
}

// writeAt places text on the absolute row starting at column col without
// wrapping; content past the right edge is dropped. It returns the column
// after the last written cell.
func (b *Buffer) writeAt(row, col int, text string, st Style) int {
	line := b.line(row)
	if line == nil {
		return col
	}
	x := col
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Str()
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			// Combining mark with no base in this write: attach it to
			// the preceding cell.
			if x > 0 && x-1 < len(line.cells) && line.cells[x-1].chars != "" {
				line.cells[x-1].chars += cluster
			}
			continue
		}
		if x+w > b.cols {
			break
		}
		b.setCell(line, x, cluster, w, st)
		x += w
	}
	return x
}

// setCell writes one grapheme cluster, keeping wide-character placeholder
// pairs consistent the way the terminal would.
func (b *Buffer) setCell(line *Line, x int, cluster string, w int, st Style) {
	cur := line.cells[x]
	// Overwriting a placeholder orphans the wide char before it.
	if cur.width == 0 {
		line.clearCell(x - 1)
	}
	// Overwriting a wide char orphans its placeholder.
	if cur.width == 2 {
		line.clearCell(x + 1)
	}

	first, _ := firstRune(cluster)
	line.cells[x] = Cell{chars: cluster, code: first, width: w, style: st}
	if w == 2 && x+1 < len(line.cells) {
		line.cells[x+1] = Cell{width: 0, style: st}
		line.touch(x + 2)
		return
	}
	line.touch(x + w)
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
