// Package gridbuf is an in-memory implementation of the serialize accessor
// contract: a styled cell grid with scrollback, an alternate screen, soft
// line-wrap flags and wide-character placeholders. Hosts that already own a
// terminal emulator implement serialize.Source over their own grid instead;
// gridbuf exists for tests, tooling and embedders without one. It deliberately
// contains no escape-sequence parsing.
package gridbuf

import "github.com/andyrewlee/termsnap/serialize"

// Style holds the paintable attributes applied to written cells. The zero
// value is the terminal default style.
type Style struct {
	FgMode serialize.ColorMode
	Fg     int
	BgMode serialize.ColorMode
	Bg     int

	Bold          bool
	Italic        bool
	Underline     bool
	Blink         bool
	Inverse       bool
	Invisible     bool
	Dim           bool
	Strikethrough bool
}

// Cell is one grid position. Unwritten cells have empty content and width 1;
// a width-0 cell is the placeholder after a wide character.
type Cell struct {
	chars string
	code  rune
	width int
	style Style
}

func blankCell() Cell {
	return Cell{width: 1}
}

func (c *Cell) Chars() string { return c.chars }
func (c *Cell) Code() rune    { return c.code }
func (c *Cell) Width() int    { return c.width }

func (c *Cell) FgColorMode() serialize.ColorMode { return c.style.FgMode }
func (c *Cell) FgColor() int                     { return c.style.Fg }
func (c *Cell) BgColorMode() serialize.ColorMode { return c.style.BgMode }
func (c *Cell) BgColor() int                     { return c.style.Bg }

func (c *Cell) Bold() bool          { return c.style.Bold }
func (c *Cell) Italic() bool        { return c.style.Italic }
func (c *Cell) Underline() bool     { return c.style.Underline }
func (c *Cell) Blink() bool         { return c.style.Blink }
func (c *Cell) Inverse() bool       { return c.style.Inverse }
func (c *Cell) Invisible() bool     { return c.style.Invisible }
func (c *Cell) Dim() bool           { return c.style.Dim }
func (c *Cell) Strikethrough() bool { return c.style.Strikethrough }
