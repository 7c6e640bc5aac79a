// Package serialize converts a terminal's in-memory cell grid into a
// byte-exact ANSI replay stream: literal characters interleaved with SGR and
// cursor escape sequences that reproduce the original screen, line-wrap
// structure, and cursor position when written to a freshly initialized
// terminal. It also offers plain-text extraction and a compact binary
// snapshot encoding.
//
// The package never parses escape sequences and never renders anything. It
// reads cells through the Source/Buffer/Line/Cell accessor interfaces, which
// the hosting terminal implements over its own grid (the gridbuf package
// provides a reference implementation).
package serialize

// BufferKind identifies which logical screen a Buffer represents.
type BufferKind int

const (
	BufferNormal BufferKind = iota
	BufferAlternate
)

// ColorMode describes how a cell's color value is interpreted. The values
// mirror the accessor contract: 0 is the terminal default, 1 is a palette
// index, and 2, 3 or -1 all mean 24-bit RGB. Any other value is a programmer
// error and causes a panic during serialization rather than silently
// defaulting.
type ColorMode int

const (
	ColorDefault ColorMode = 0
	ColorPalette ColorMode = 1
	ColorRGB     ColorMode = 2
)

// Source is the terminal a Serializer is attached to. It exposes the normal
// and currently active screens plus the visible dimensions.
type Source interface {
	// ActiveBuffer returns the screen currently being displayed.
	ActiveBuffer() Buffer
	// NormalBuffer returns the scrollback-bearing normal screen, even while
	// the alternate screen is active.
	NormalBuffer() Buffer
	// AltScreenActive reports whether the alternate screen is displayed.
	AltScreenActive() bool
	Cols() int
	Rows() int
}

// ModeSource is an optional extension of Source. When implemented, the
// serializer appends DEC private-mode set sequences for every reported mode
// so that replay restores input-affecting state (bracketed paste, mouse
// tracking and friends). See Options.ExcludeModes.
type ModeSource interface {
	// PrivateModes returns the DEC private mode numbers currently set.
	PrivateModes() []int
}

// Buffer is a read-only view of one logical screen including scrollback.
// Row indices are absolute: row 0 is the oldest scrollback row and
// Length()-1 the bottom of the live screen.
type Buffer interface {
	Kind() BufferKind
	// CursorX and CursorY are relative to the top of the live screen.
	CursorX() int
	CursorY() int
	// ViewportY is the absolute row currently at the top of the viewport.
	ViewportY() int
	// BaseY is the absolute row of the top of the live screen, i.e. the
	// number of scrollback rows.
	BaseY() int
	// Length is the total row count including scrollback.
	Length() int
	// Line returns the row at absolute index y, or nil when nothing was
	// ever written there. Absent rows are not an error.
	Line(y int) Line
	// NullCell is the "nothing painted" cell; its style defines what the
	// serializer treats as the default style.
	NullCell() Cell
}

// Line is one terminal row.
type Line interface {
	// Cell returns the cell at column x, or nil when absent.
	Cell(x int) Cell
	// Length is the number of occupied columns; cells past it were never
	// written and need no emission.
	Length() int
	// Wrapped reports whether this row is a soft continuation of the
	// previous row. Wrapped rows must not be preceded by a hard break in
	// the replay stream.
	Wrapped() bool
}

// Cell is one grid position. A wide character occupies a width-2 cell
// followed by a width-0 placeholder; placeholders never produce output.
type Cell interface {
	// Chars returns the cell's character content, possibly a multi-rune
	// grapheme cluster, or "" for unwritten cells and placeholders.
	Chars() string
	// Code is the first code point of Chars, or 0 when empty.
	Code() rune
	// Width is the display width: 0, 1 or 2.
	Width() int

	FgColorMode() ColorMode
	FgColor() int
	BgColorMode() ColorMode
	BgColor() int

	Bold() bool
	Italic() bool
	Underline() bool
	Blink() bool
	Inverse() bool
	Invisible() bool
	Dim() bool
	Strikethrough() bool
}

// Range selects an inclusive span of absolute rows to serialize.
type Range struct {
	Start int
	End   int
}

// Options controls Serializer.Serialize and Serializer.SerializeBinary.
// A nil *Options means "everything": the whole buffer including all
// scrollback, alternate screen and private modes included.
type Options struct {
	// Range, when non-nil, serializes exactly that inclusive row span and
	// overrides Scrollback.
	Range *Range
	// Scrollback is the number of scrollback rows to include above the
	// visible screen. Zero serializes the visible screen only; a negative
	// value includes the entire scrollback.
	Scrollback int
	// ExcludeModes suppresses DEC private-mode restoration sequences.
	ExcludeModes bool
	// ExcludeAltScreen suppresses the alternate-screen section even when
	// the alternate screen is active.
	ExcludeAltScreen bool
}

// TextOptions controls Serializer.SerializeText. A nil *TextOptions keeps
// the defaults: all scrollback, right-trimmed lines, trailing blank lines
// stripped.
type TextOptions struct {
	// Scrollback follows the same semantics as Options.Scrollback.
	Scrollback int
	// KeepTrailingSpace preserves trailing spaces on each line.
	KeepTrailingSpace bool
	// KeepBlankLines preserves trailing all-blank lines.
	KeepBlankLines bool
}
