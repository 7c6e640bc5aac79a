package serialize

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/x/ansi"
)

// ErrNotAttached is returned when a Serializer method is called before a
// terminal source has been attached. This is a programmer error; serialize
// never runs without a live source.
var ErrNotAttached = errors.New("serialize: not attached to a terminal source")

// Serializer converts the attached terminal's buffers into replay streams.
// It holds no per-call state and performs no locking: serialization is a
// synchronous read of the source's current snapshot, driven from the same
// goroutine that mutates the terminal.
type Serializer struct {
	src Source
}

// New returns a Serializer attached to src. A nil src is allowed; attach one
// with Attach before serializing.
func New(src Source) *Serializer {
	return &Serializer{src: src}
}

// Attach binds the serializer to a terminal source.
func (s *Serializer) Attach(src Source) {
	s.src = src
}

// Serialize renders the terminal into an escape-coded replay string: literal
// characters interleaved with SGR sequences, row separators, a trailing
// cursor reposition, the alternate screen section when active, and DEC
// private-mode restoration. Writing the result into a freshly initialized
// terminal of the same dimensions reproduces the serialized screen.
func (s *Serializer) Serialize(opts *Options) (string, error) {
	if s.src == nil {
		return "", ErrNotAttached
	}

	scrollback := -1
	var rng *Range
	excludeModes, excludeAlt := false, false
	if opts != nil {
		scrollback = opts.Scrollback
		rng = opts.Range
		excludeModes = opts.ExcludeModes
		excludeAlt = opts.ExcludeAltScreen
	}

	normal := s.src.NormalBuffer()
	var sp span
	if rng != nil {
		if rng.Start > rng.End {
			return "", fmt.Errorf("serialize: invalid range %d..%d", rng.Start, rng.End)
		}
		sp = span{startRow: rng.Start, endRow: rng.End, startCol: 0, endCol: s.src.Cols() - 1}
	} else {
		sp = windowSpan(normal, scrollback, s.src.Rows(), s.src.Cols())
	}

	out := s.serializeSpan(normal, sp)

	// Replay must re-enter the alternate screen before drawing its content,
	// so the section opens with DECSET 1049 and a cursor home.
	if s.src.AltScreenActive() && !excludeAlt {
		alt := s.src.ActiveBuffer()
		altSp := windowSpan(alt, scrollback, s.src.Rows(), s.src.Cols())
		out += "\x1b[?1049h\x1b[H" + s.serializeSpan(alt, altSp)
	}

	if !excludeModes {
		out += s.modeSequences()
	}
	return out, nil
}

func (s *Serializer) serializeSpan(buf Buffer, sp span) string {
	h := newStringHandler(buf, s.src.Rows())
	walk(buf, sp, h)
	return h.serializeString(false)
}

// modeSequences emits DECSET sequences for every private mode the source
// reports as set, in ascending order for deterministic output.
func (s *Serializer) modeSequences() string {
	ms, ok := s.src.(ModeSource)
	if !ok {
		return ""
	}
	nums := append([]int(nil), ms.PrivateModes()...)
	sort.Ints(nums)
	out := ""
	for _, n := range nums {
		out += ansi.SetMode(ansi.DECMode(n))
	}
	return out
}

// windowSpan resolves a bottom-anchored window over the buffer: the visible
// screen plus up to scrollback history rows. A negative scrollback takes the
// whole buffer.
func windowSpan(buf Buffer, scrollback, visibleRows, cols int) span {
	length := buf.Length()
	want := length
	if scrollback >= 0 {
		want = scrollback + visibleRows
		if want > length {
			want = length
		}
	}
	return span{
		startRow: length - want,
		endRow:   length - 1,
		startCol: 0,
		endCol:   cols - 1,
	}
}
