package serialize_test

import (
	"testing"

	"github.com/andyrewlee/termsnap/gridbuf"
	"github.com/andyrewlee/termsnap/serialize"
)

func TestSerializeTextBasic(t *testing.T) {
	g := gridbuf.New(20, 5)
	g.WriteAt(0, 0, "hello")
	g.WriteAt(2, 0, "world")

	got, err := serialize.New(g).SerializeText(nil)
	if err != nil {
		t.Fatalf("SerializeText: %v", err)
	}
	want := "hello\n\nworld"
	if got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestSerializeTextDropsStyling(t *testing.T) {
	g := gridbuf.New(20, 3)
	g.PrintStyled("alert", gridbuf.Style{Bold: true, FgMode: serialize.ColorPalette, Fg: 1})

	got, err := serialize.New(g).SerializeText(nil)
	if err != nil {
		t.Fatalf("SerializeText: %v", err)
	}
	if got != "alert" {
		t.Errorf("text = %q, want %q", got, "alert")
	}
}

func TestSerializeTextKeepsColumns(t *testing.T) {
	g := gridbuf.New(20, 2)
	g.WriteAt(0, 0, "a")
	g.WriteAt(0, 4, "b")

	got, err := serialize.New(g).SerializeText(nil)
	if err != nil {
		t.Fatalf("SerializeText: %v", err)
	}
	if got != "a   b" {
		t.Errorf("text = %q, want %q", got, "a   b")
	}
}

func TestSerializeTextKeepBlankLines(t *testing.T) {
	g := gridbuf.New(20, 4)
	g.WriteAt(0, 0, "only")

	got, err := serialize.New(g).SerializeText(&serialize.TextOptions{KeepBlankLines: true})
	if err != nil {
		t.Fatalf("SerializeText: %v", err)
	}
	want := "only\n\n\n"
	if got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestSerializeTextScrollbackWindow(t *testing.T) {
	g := gridbuf.New(10, 2)
	g.Print("one\ntwo\nthree\nfour")

	got, err := serialize.New(g).SerializeText(&serialize.TextOptions{Scrollback: 1})
	if err != nil {
		t.Fatalf("SerializeText: %v", err)
	}
	want := "two\nthree\nfour"
	if got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestSerializeTextWideChars(t *testing.T) {
	g := gridbuf.New(20, 2)
	g.Print("日本 ok")

	got, err := serialize.New(g).SerializeText(nil)
	if err != nil {
		t.Fatalf("SerializeText: %v", err)
	}
	if got != "日本 ok" {
		t.Errorf("text = %q, want %q", got, "日本 ok")
	}
}

func TestSerializeTextAltScreen(t *testing.T) {
	g := gridbuf.New(20, 3)
	g.Print("normal")
	g.EnterAltScreen()
	g.WriteAt(0, 0, "alt content")

	got, err := serialize.New(g).SerializeText(nil)
	if err != nil {
		t.Fatalf("SerializeText: %v", err)
	}
	if got != "alt content" {
		t.Errorf("text extraction follows the active screen; got %q", got)
	}
}
