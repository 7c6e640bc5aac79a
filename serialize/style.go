package serialize

import "fmt"

// colorClass collapses the accessor's color-mode values into the three
// classes SGR emission distinguishes.
type colorClass int

const (
	classDefault colorClass = iota
	classPalette
	classRGB
)

// classify maps an accessor color mode onto its emission class. Modes 2, 3
// and -1 all denote 24-bit RGB. Anything else is a broken accessor; fail
// loudly instead of guessing a color.
func classify(m ColorMode) colorClass {
	switch m {
	case ColorDefault:
		return classDefault
	case ColorPalette:
		return classPalette
	case 2, 3, -1:
		return classRGB
	}
	panic(fmt.Sprintf("serialize: unsupported color mode %d", int(m)))
}

// style is the SGR-relevant subset of a cell, captured by value so it can be
// compared and carried across cells during one pass.
type style struct {
	fgMode ColorMode
	fg     int
	bgMode ColorMode
	bg     int

	bold      bool
	dim       bool
	italic    bool
	underline bool
	blink     bool
	inverse   bool
	invisible bool
	strike    bool
}

// styleOf snapshots a cell's style.
func styleOf(c Cell) style {
	return style{
		fgMode:    c.FgColorMode(),
		fg:        c.FgColor(),
		bgMode:    c.BgColorMode(),
		bg:        c.BgColor(),
		bold:      c.Bold(),
		dim:       c.Dim(),
		italic:    c.Italic(),
		underline: c.Underline(),
		blink:     c.Blink(),
		inverse:   c.Inverse(),
		invisible: c.Invisible(),
		strike:    c.Strikethrough(),
	}
}

func (s style) equalFg(o style) bool {
	return s.fgMode == o.fgMode && s.fg == o.fg
}

func (s style) equalBg(o style) bool {
	return s.bgMode == o.bgMode && s.bg == o.bg
}

func (s style) equalFlags(o style) bool {
	return s.bold == o.bold &&
		s.dim == o.dim &&
		s.italic == o.italic &&
		s.underline == o.underline &&
		s.blink == o.blink &&
		s.inverse == o.inverse &&
		s.invisible == o.invisible &&
		s.strike == o.strike
}

func (s style) equal(o style) bool {
	return s.equalFg(o) && s.equalBg(o) && s.equalFlags(o)
}

// hasFlags reports whether any text attribute is set.
func (s style) hasFlags() bool {
	return s.bold || s.dim || s.italic || s.underline ||
		s.blink || s.inverse || s.invisible || s.strike
}

// defaultLike reports whether s renders identically to the buffer's null
// cell: both color channels match the null cell and no flags are set.
func (s style) defaultLike(null style) bool {
	return !s.hasFlags() && s.equalFg(null) && s.equalBg(null)
}

// isEmptyCell reports whether a cell holds nothing printable. Code point 0,
// empty content, surrogate halves, out-of-range code points and width-1
// private-use fillers all count as empty; only their background matters.
func isEmptyCell(c Cell) bool {
	code := c.Code()
	switch {
	case code == 0, c.Chars() == "":
		return true
	case code >= 0xD800 && code <= 0xDFFF:
		return true
	case code > 0x10FFFF:
		return true
	case code >= 0xF000 && c.Width() == 1:
		return true
	}
	return false
}
