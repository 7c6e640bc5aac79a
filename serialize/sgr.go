package serialize

// SGR attribute codes. Bold and dim share reset code 22 by terminal
// convention: emitting 22 clears both. The differ relies on flag emission
// order (bold before dim) so a bold→dim transition produces "22;2", which
// replays to exactly dim.
const (
	sgrReset = 0

	sgrBold      = 1
	sgrDim       = 2
	sgrItalic    = 3
	sgrUnderline = 4
	sgrBlink     = 5
	sgrInverse   = 7
	sgrInvisible = 8
	sgrStrike    = 9

	sgrNoBoldDim   = 22
	sgrNoItalic    = 23
	sgrNoUnderline = 24
	sgrNoBlink     = 25
	sgrNoInverse   = 27
	sgrNoInvisible = 28
	sgrNoStrike    = 29

	sgrFgDefault = 39
	sgrBgDefault = 49
	sgrFgExt     = 38
	sgrBgExt     = 48
)

// diffStyle computes the minimal ordered SGR parameter list that transitions
// a terminal rendering prev into cur. null is the buffer's null-cell style;
// a cell indistinguishable from it gets a single full reset instead of
// per-attribute resets.
func diffStyle(cur, prev, null style) []int {
	fgChanged := !cur.equalFg(prev)
	bgChanged := !cur.equalBg(prev)
	flagsChanged := !cur.equalFlags(prev)
	if !fgChanged && !bgChanged && !flagsChanged {
		return nil
	}

	if cur.defaultLike(null) {
		if prev.defaultLike(null) {
			return nil
		}
		return []int{sgrReset}
	}

	var seq []int
	if flagsChanged {
		seq = appendFlagDiff(seq, cur, prev)
	}
	if fgChanged {
		seq = appendColor(seq, cur.fgMode, cur.fg, true)
	}
	if bgChanged {
		seq = appendColor(seq, cur.bgMode, cur.bg, false)
	}
	return seq
}

// appendFlagDiff emits a set or reset code for every changed flag, in
// numeric code order.
func appendFlagDiff(seq []int, cur, prev style) []int {
	if cur.bold != prev.bold {
		seq = append(seq, pick(cur.bold, sgrBold, sgrNoBoldDim))
	}
	if cur.dim != prev.dim {
		seq = append(seq, pick(cur.dim, sgrDim, sgrNoBoldDim))
	}
	if cur.italic != prev.italic {
		seq = append(seq, pick(cur.italic, sgrItalic, sgrNoItalic))
	}
	if cur.underline != prev.underline {
		seq = append(seq, pick(cur.underline, sgrUnderline, sgrNoUnderline))
	}
	if cur.blink != prev.blink {
		seq = append(seq, pick(cur.blink, sgrBlink, sgrNoBlink))
	}
	if cur.inverse != prev.inverse {
		seq = append(seq, pick(cur.inverse, sgrInverse, sgrNoInverse))
	}
	if cur.invisible != prev.invisible {
		seq = append(seq, pick(cur.invisible, sgrInvisible, sgrNoInvisible))
	}
	if cur.strike != prev.strike {
		seq = append(seq, pick(cur.strike, sgrStrike, sgrNoStrike))
	}
	return seq
}

func pick(on bool, set, reset int) int {
	if on {
		return set
	}
	return reset
}

// appendColor encodes one color channel. Palette indices below 16 use the
// compact forms (30-37/90-97 or 40-47/100-107); higher indices use the
// 38;5/48;5 form and RGB the 38;2/48;2 form.
func appendColor(seq []int, mode ColorMode, v int, fg bool) []int {
	ext, def := sgrBgExt, sgrBgDefault
	base, bright := 40, 100
	if fg {
		ext, def = sgrFgExt, sgrFgDefault
		base, bright = 30, 90
	}

	switch classify(mode) {
	case classDefault:
		return append(seq, def)
	case classPalette:
		switch {
		case v >= 16:
			return append(seq, ext, 5, v)
		case v >= 8:
			return append(seq, bright+v-8)
		default:
			return append(seq, base+v)
		}
	case classRGB:
		return append(seq, ext, 2, (v>>16)&0xff, (v>>8)&0xff, v&0xff)
	}
	return seq
}
