package serialize_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/andyrewlee/termsnap/gridbuf"
	"github.com/andyrewlee/termsnap/serialize"
)

func serializeBinary(t *testing.T, g *gridbuf.Grid, opts *serialize.Options) []byte {
	t.Helper()
	out, err := serialize.New(g).SerializeBinary(opts)
	if err != nil {
		t.Fatalf("SerializeBinary: %v", err)
	}
	return out
}

func TestBinaryHeader(t *testing.T) {
	g := gridbuf.New(10, 3)
	g.WriteAt(0, 0, "A")
	g.SetCursor(1, 0)

	out := serializeBinary(t, g, nil)
	if len(out) < 28 {
		t.Fatalf("snapshot too short: %d bytes", len(out))
	}
	if magic := binary.LittleEndian.Uint16(out[0:]); magic != 0x5654 {
		t.Errorf("magic = %#x, want 0x5654", magic)
	}
	if out[2] != 1 {
		t.Errorf("version = %d, want 1", out[2])
	}
	if out[3] != 0 {
		t.Errorf("flags = %#x, want 0", out[3])
	}
	if cols := binary.LittleEndian.Uint32(out[4:]); cols != 10 {
		t.Errorf("cols = %d, want 10", cols)
	}
	if rows := binary.LittleEndian.Uint32(out[8:]); rows != 3 {
		t.Errorf("rows = %d, want 3", rows)
	}
	if cx := binary.LittleEndian.Uint32(out[16:]); cx != 1 {
		t.Errorf("cursorX = %d, want 1", cx)
	}
	if cy := binary.LittleEndian.Uint32(out[20:]); cy != 0 {
		t.Errorf("cursorY = %d, want 0", cy)
	}
}

func TestBinaryRows(t *testing.T) {
	g := gridbuf.New(10, 3)
	g.WriteStyledAt(0, 0, "A", gridbuf.Style{Bold: true, FgMode: serialize.ColorPalette, Fg: 1})

	out := serializeBinary(t, g, nil)
	body := out[28:]

	// Row 0: marker, cell count 1, then one styled ASCII cell.
	want := []byte{
		0xfd, 1, 0,
		0x80 | 0x20 | 0x01, // extended, has fg, ascii
		'A',
		0x01, // bold
		1,    // palette red
		// Rows 1 and 2 are empty.
		0xfe, 1,
		0xfe, 1,
	}
	if !bytes.Equal(body, want) {
		t.Errorf("body = % x, want % x", body, want)
	}
}

func TestBinaryBlankCompression(t *testing.T) {
	g := gridbuf.New(10, 1)
	g.WriteAt(0, 0, "A")
	g.WriteAt(0, 2, "B")

	out := serializeBinary(t, g, nil)
	body := out[28:]
	want := []byte{
		0xfd, 3, 0,
		0x01, 'A',
		0x00, // default blank collapses to one byte
		0x01, 'B',
	}
	if !bytes.Equal(body, want) {
		t.Errorf("body = % x, want % x", body, want)
	}
}

func TestBinaryUnicodeAndRGB(t *testing.T) {
	g := gridbuf.New(10, 1)
	g.WriteStyledAt(0, 0, "é", gridbuf.Style{BgMode: serialize.ColorRGB, Bg: 0x112233})

	out := serializeBinary(t, g, nil)
	body := out[28:]
	want := []byte{
		0xfd, 1, 0,
		0x80 | 0x40 | 0x10 | 0x04 | 0x02, // extended, unicode, bg, bg rgb
		2, 0xc3, 0xa9,                    // utf-8 "é"
		0x00,             // no attrs
		0x11, 0x22, 0x33, // rgb background
	}
	if !bytes.Equal(body, want) {
		t.Errorf("body = % x, want % x", body, want)
	}
}

func TestBinaryTrimsTrailingBlanks(t *testing.T) {
	g := gridbuf.New(10, 1)
	g.WriteAt(0, 0, "A   ") // written spaces in default style still trim

	out := serializeBinary(t, g, nil)
	body := out[28:]
	want := []byte{0xfd, 1, 0, 0x01, 'A'}
	if !bytes.Equal(body, want) {
		t.Errorf("body = % x, want % x", body, want)
	}
}

func TestBinaryAltScreenFlag(t *testing.T) {
	g := gridbuf.New(10, 2)
	g.EnterAltScreen()

	out := serializeBinary(t, g, nil)
	if out[3]&0x01 == 0 {
		t.Errorf("flags = %#x, want alt-screen bit set", out[3])
	}
}
