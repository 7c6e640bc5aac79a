package serialize

import (
	"encoding/binary"
	"fmt"
)

// Binary snapshot framing. The format is a compact cell stream for web and
// remote clients: a fixed header followed by per-row records with trailing
// blanks trimmed. All multi-byte integers are little-endian.
const (
	binaryMagic   = 0x5654 // "VT"
	binaryVersion = 1

	markerRow      = 0xfd
	markerEmptyRow = 0xfe

	// flags header byte
	binaryFlagAltScreen = 0x01

	// cell type byte
	cellExtended = 0x80 // attrs/colors follow
	cellUnicode  = 0x40 // multi-byte character payload
	cellHasFg    = 0x20
	cellHasBg    = 0x10
	cellFgRGB    = 0x08
	cellBgRGB    = 0x04

	// attrs byte
	attrBold      = 0x01
	attrItalic    = 0x02
	attrUnderline = 0x04
	attrBlink     = 0x08
	attrInverse   = 0x10
	attrInvisible = 0x20
	attrDim       = 0x40
	attrStrike    = 0x80
)

// SerializeBinary encodes the active screen as a binary snapshot. Options
// follow Serialize semantics for range and scrollback; ExcludeModes and
// ExcludeAltScreen have no effect since the snapshot carries no escape
// sequences.
func (s *Serializer) SerializeBinary(opts *Options) ([]byte, error) {
	if s.src == nil {
		return nil, ErrNotAttached
	}

	scrollback := -1
	var rng *Range
	if opts != nil {
		scrollback = opts.Scrollback
		rng = opts.Range
	}

	buf := s.src.ActiveBuffer()
	var sp span
	if rng != nil {
		if rng.Start > rng.End {
			return nil, fmt.Errorf("serialize: invalid range %d..%d", rng.Start, rng.End)
		}
		sp = span{startRow: rng.Start, endRow: rng.End, startCol: 0, endCol: s.src.Cols() - 1}
	} else {
		sp = windowSpan(buf, scrollback, s.src.Rows(), s.src.Cols())
	}

	h := &binaryHandler{buf: buf, cols: s.src.Cols(), altActive: s.src.AltScreenActive()}
	walk(buf, sp, h)
	return h.out, nil
}

// binaryHandler is the row-walker hook set producing the binary snapshot.
type binaryHandler struct {
	buf       Buffer
	cols      int
	altActive bool

	out   []byte
	cells []Cell // current row, width-0 placeholders excluded
	null  style
}

func (h *binaryHandler) beforeSerialize(rowCount, startRow, endRow int) {
	h.null = styleOf(h.buf.NullCell())

	if rowCount < 0 {
		rowCount = 0
	}
	var hdr [28]byte
	binary.LittleEndian.PutUint16(hdr[0:], binaryMagic)
	hdr[2] = binaryVersion
	if h.altActive {
		hdr[3] |= binaryFlagAltScreen
	}
	binary.LittleEndian.PutUint32(hdr[4:], uint32(h.cols))
	binary.LittleEndian.PutUint32(hdr[8:], uint32(rowCount))
	binary.LittleEndian.PutUint32(hdr[12:], uint32(h.buf.ViewportY()))
	binary.LittleEndian.PutUint32(hdr[16:], uint32(h.buf.CursorX()))
	binary.LittleEndian.PutUint32(hdr[20:], uint32(h.buf.CursorY()))
	binary.LittleEndian.PutUint32(hdr[24:], 0) // reserved
	h.out = append(h.out, hdr[:]...)
}

func (h *binaryHandler) nextCell(cell, _ Cell, _, _ int) {
	if cell.Width() == 0 {
		return
	}
	h.cells = append(h.cells, cell)
}

func (h *binaryHandler) rowEnd(_ int, _ bool) {
	cells := trimBlankCells(h.cells, h.null)
	if len(cells) == 0 {
		h.out = append(h.out, markerEmptyRow, 1)
	} else {
		h.out = append(h.out, markerRow)
		var n [2]byte
		binary.LittleEndian.PutUint16(n[:], uint16(len(cells)))
		h.out = append(h.out, n[:]...)
		for _, c := range cells {
			h.encodeCell(c)
		}
	}
	h.cells = h.cells[:0]
}

func (h *binaryHandler) afterSerialize() {}

// trimBlankCells drops trailing cells that are blank in the default style.
func trimBlankCells(cells []Cell, null style) []Cell {
	end := len(cells)
	for end > 0 {
		c := cells[end-1]
		if !cellBlank(c) || !styleOf(c).defaultLike(null) {
			break
		}
		end--
	}
	return cells[:end]
}

func cellBlank(c Cell) bool {
	return isEmptyCell(c) || c.Chars() == " "
}

func (h *binaryHandler) encodeCell(c Cell) {
	st := styleOf(c)
	blank := cellBlank(c)
	hasAttrs := st.hasFlags()
	hasFg := classify(st.fgMode) != classDefault
	hasBg := classify(st.bgMode) != classDefault

	// A default-style blank compresses to a single zero byte.
	if blank && !hasAttrs && !hasFg && !hasBg {
		h.out = append(h.out, 0x00)
		return
	}

	chars := c.Chars()
	if blank {
		chars = " "
	}
	ascii := len(chars) == 1 && chars[0] <= 0x7f

	var typ byte
	if hasAttrs || hasFg || hasBg {
		typ |= cellExtended
	}
	if !ascii {
		typ |= cellUnicode | 0x02
	} else if chars != " " {
		typ |= 0x01
	}
	if hasFg {
		typ |= cellHasFg
		if classify(st.fgMode) == classRGB {
			typ |= cellFgRGB
		}
	}
	if hasBg {
		typ |= cellHasBg
		if classify(st.bgMode) == classRGB {
			typ |= cellBgRGB
		}
	}
	h.out = append(h.out, typ)

	if !ascii {
		h.out = append(h.out, byte(len(chars)))
		h.out = append(h.out, chars...)
	} else if chars != " " {
		h.out = append(h.out, chars[0])
	}

	if typ&cellExtended == 0 {
		return
	}
	h.out = append(h.out, attrByte(st))
	if hasFg {
		h.out = appendColorBytes(h.out, st.fgMode, st.fg)
	}
	if hasBg {
		h.out = appendColorBytes(h.out, st.bgMode, st.bg)
	}
}

func attrByte(st style) byte {
	var b byte
	if st.bold {
		b |= attrBold
	}
	if st.italic {
		b |= attrItalic
	}
	if st.underline {
		b |= attrUnderline
	}
	if st.blink {
		b |= attrBlink
	}
	if st.inverse {
		b |= attrInverse
	}
	if st.invisible {
		b |= attrInvisible
	}
	if st.dim {
		b |= attrDim
	}
	if st.strike {
		b |= attrStrike
	}
	return b
}

func appendColorBytes(out []byte, mode ColorMode, v int) []byte {
	if classify(mode) == classRGB {
		return append(out, byte(v>>16), byte(v>>8), byte(v))
	}
	return append(out, byte(v))
}
