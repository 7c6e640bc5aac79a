package serialize

import "strings"

// SerializeText extracts the active screen as plain text with all styling
// discarded. Lines are joined with "\n"; by default each line is
// right-trimmed and trailing all-blank lines are stripped.
func (s *Serializer) SerializeText(opts *TextOptions) (string, error) {
	if s.src == nil {
		return "", ErrNotAttached
	}

	scrollback := -1
	trim, strip := true, true
	if opts != nil {
		scrollback = opts.Scrollback
		trim = !opts.KeepTrailingSpace
		strip = !opts.KeepBlankLines
	}

	buf := s.src.ActiveBuffer()
	sp := windowSpan(buf, scrollback, s.src.Rows(), s.src.Cols())

	lines := make([]string, 0, sp.endRow-sp.startRow+1)
	for y := sp.startRow; y <= sp.endRow; y++ {
		lines = append(lines, lineText(buf.Line(y), sp.endCol, trim))
	}
	if strip {
		for len(lines) > 0 && strings.TrimRight(lines[len(lines)-1], " ") == "" {
			lines = lines[:len(lines)-1]
		}
	}
	return strings.Join(lines, "\n"), nil
}

// lineText flattens one row to text. Blank and absent cells become spaces so
// later content keeps its column; width-0 placeholders vanish.
func lineText(l Line, endCol int, trim bool) string {
	if l == nil {
		return ""
	}
	end := l.Length() - 1
	if endCol < end {
		end = endCol
	}
	var b strings.Builder
	for x := 0; x <= end; x++ {
		c := l.Cell(x)
		if c == nil {
			b.WriteByte(' ')
			continue
		}
		if c.Width() == 0 {
			continue
		}
		if isEmptyCell(c) {
			for i := 0; i < c.Width(); i++ {
				b.WriteByte(' ')
			}
			continue
		}
		b.WriteString(c.Chars())
	}
	out := b.String()
	if trim {
		out = strings.TrimRight(out, " ")
	}
	return out
}
