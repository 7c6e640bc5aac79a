package gridbuf

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/andyrewlee/termsnap/serialize"
)

// DefaultHistory is the scrollback bound for grids created with New.
const DefaultHistory = 1000

// Ensure the grid satisfies the full accessor contract.
var (
	_ serialize.Source     = (*Grid)(nil)
	_ serialize.ModeSource = (*Grid)(nil)
	_ serialize.Buffer     = (*Buffer)(nil)
	_ serialize.Line       = (*Line)(nil)
	_ serialize.Cell       = (*Cell)(nil)
)

// Grid is a terminal cell grid implementing serialize.Source. It is not safe
// for concurrent use; the owner drives writes and serialization from one
// goroutine, matching a terminal's single-writer event loop.
type Grid struct {
	cols, rows int
	normal     *Buffer
	alt        *Buffer
	altActive  bool
	modes      map[int]bool
}

// New creates a grid with DefaultHistory scrollback rows.
func New(cols, rows int) *Grid {
	return NewWithHistory(cols, rows, DefaultHistory)
}

// NewWithHistory creates a grid bounded to the given scrollback row count.
func NewWithHistory(cols, rows, history int) *Grid {
	return &Grid{
		cols:   cols,
		rows:   rows,
		normal: newBuffer(serialize.BufferNormal, cols, rows, history),
		modes:  make(map[int]bool),
	}
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// ActiveBuffer returns the screen currently displayed.
func (g *Grid) ActiveBuffer() serialize.Buffer {
	return g.active()
}

// NormalBuffer returns the scrollback-bearing normal screen.
func (g *Grid) NormalBuffer() serialize.Buffer { return g.normal }

// AltScreenActive reports whether the alternate screen is displayed.
func (g *Grid) AltScreenActive() bool { return g.altActive }

func (g *Grid) active() *Buffer {
	if g.altActive {
		return g.alt
	}
	return g.normal
}

// EnterAltScreen switches to a fresh alternate screen, like DECSET 1049.
func (g *Grid) EnterAltScreen() {
	g.alt = newBuffer(serialize.BufferAlternate, g.cols, g.rows, 0)
	g.altActive = true
}

// ExitAltScreen returns to the normal screen, discarding alt content.
func (g *Grid) ExitAltScreen() {
	g.altActive = false
	g.alt = nil
}

// SetPrivateMode records a DEC private mode as set or reset.
func (g *Grid) SetPrivateMode(n int, on bool) {
	if on {
		g.modes[n] = true
	} else {
		delete(g.modes, n)
	}
}

// PrivateModes returns the DEC private modes currently set, in no particular
// order.
func (g *Grid) PrivateModes() []int {
	out := make([]int, 0, len(g.modes))
	for n := range g.modes {
		out = append(out, n)
	}
	return out
}

// SetCursor moves the active screen's cursor, clamped to the screen.
func (g *Grid) SetCursor(x, y int) {
	b := g.active()
	b.cursorX = clamp(x, 0, g.cols-1)
	b.cursorY = clamp(y, 0, g.rows-1)
}

// SetWrapped flags the absolute row as a soft continuation of the previous
// row on the active screen.
func (g *Grid) SetWrapped(y int, wrapped bool) {
	if line := g.active().line(y); line != nil {
		line.wrapped = wrapped
	}
}

// WriteAt places text on the active screen at an absolute row and column,
// in the default style, without moving the cursor or wrapping.
func (g *Grid) WriteAt(row, col int, text string) {
	g.active().writeAt(row, col, text, Style{})
}

// WriteStyledAt is WriteAt with an explicit style.
func (g *Grid) WriteStyledAt(row, col int, text string, st Style) {
	g.active().writeAt(row, col, text, st)
}

// Print writes text at the cursor in the default style, typewriter fashion:
// "\n" starts a new row, "\r" returns to column 0, overlong lines soft-wrap
// with the continuation row flagged wrapped, and writes below the last row
// scroll the screen (pushing rows into history on the normal screen).
func (g *Grid) Print(text string) {
	g.PrintStyled(text, Style{})
}

// PrintStyled is Print with an explicit style.
func (g *Grid) PrintStyled(text string, st Style) {
	b := g.active()
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Str()
		switch cluster {
		case "\n", "\r\n":
			b.cursorX = 0
			g.lineFeed(b)
			continue
		case "\r":
			b.cursorX = 0
			continue
		}

		w := runewidth.StringWidth(cluster)
		if w == 0 {
			if line := b.screenLine(b.cursorY); line != nil && b.cursorX > 0 {
				if line.cells[b.cursorX-1].chars != "" {
					line.cells[b.cursorX-1].chars += cluster
				}
			}
			continue
		}

		if b.cursorX+w > g.cols {
			// Soft wrap; the continuation row carries the wrap flag so
			// serialization never places a hard break before it.
			g.lineFeed(b)
			b.cursorX = 0
			if line := b.screenLine(b.cursorY); line != nil {
				line.wrapped = true
			}
		}

		if line := b.screenLine(b.cursorY); line != nil {
			b.setCell(line, b.cursorX, cluster, w, st)
		}
		b.cursorX += w
	}
}

func (g *Grid) lineFeed(b *Buffer) {
	if b.cursorY < g.rows-1 {
		b.cursorY++
		return
	}
	b.scroll()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
