// Command termsnap-demo builds a small styled screen in memory and writes
// its serialized form to stdout. Pipe the default ANSI output straight into a
// terminal to replay the screen:
//
//	termsnap-demo | cat
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andyrewlee/termsnap/gridbuf"
	"github.com/andyrewlee/termsnap/serialize"
)

func main() {
	cols := flag.Int("cols", 40, "screen width in columns")
	rows := flag.Int("rows", 8, "screen height in rows")
	format := flag.String("format", "ansi", "output format: ansi, text, or binary")
	flag.Parse()

	if *cols < 1 || *rows < 1 {
		fmt.Fprintln(os.Stderr, "cols and rows must be positive")
		os.Exit(1)
	}

	g := gridbuf.New(*cols, *rows)
	fillSample(g)

	s := serialize.New(g)
	switch *format {
	case "ansi":
		out, err := s.Serialize(nil)
		if err != nil {
			fail(err)
		}
		os.Stdout.WriteString(out)
	case "text":
		out, err := s.SerializeText(nil)
		if err != nil {
			fail(err)
		}
		fmt.Println(out)
	case "binary":
		out, err := s.SerializeBinary(nil)
		if err != nil {
			fail(err)
		}
		os.Stdout.Write(out)
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(1)
	}
}

// fillSample writes a screen exercising the interesting serialization paths:
// styled runs, palette and RGB color, wide characters, and a soft wrap.
func fillSample(g *gridbuf.Grid) {
	g.PrintStyled("termsnap", gridbuf.Style{
		Bold:   true,
		FgMode: serialize.ColorPalette,
		Fg:     2,
	})
	g.Print(" demo\r\n\r\n")

	g.Print("plain ")
	g.PrintStyled("inverse", gridbuf.Style{Inverse: true})
	g.Print(" ")
	g.PrintStyled("rgb", gridbuf.Style{
		FgMode: serialize.ColorRGB,
		Fg:     0xff8800,
	})
	g.Print("\r\n")

	g.PrintStyled("wide: 日本語", gridbuf.Style{Underline: true})
	g.Print("\r\n")

	// Long enough to soft-wrap on the default width.
	g.Print("this line keeps going until it wraps onto the next row")
	g.SetCursor(0, g.Rows()-1)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "serialize failed: %v\n", err)
	os.Exit(1)
}
