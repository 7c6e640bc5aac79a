package serialize

import (
	"reflect"
	"testing"
)

func TestDiffStyleSelfIsEmpty(t *testing.T) {
	styles := []style{
		{},
		{bold: true, fgMode: ColorPalette, fg: 1},
		{fgMode: ColorRGB, fg: 0x336699, bgMode: ColorPalette, bg: 238, underline: true},
		{dim: true, italic: true, blink: true, inverse: true, invisible: true, strike: true},
	}
	for _, st := range styles {
		if got := diffStyle(st, st, style{}); got != nil {
			t.Errorf("diffStyle(%+v, same) = %v, want nil", st, got)
		}
	}
}

func TestDiffStyleFullReset(t *testing.T) {
	prev := style{
		bold: true, dim: true, italic: true, underline: true,
		blink: true, inverse: true, invisible: true, strike: true,
		fgMode: ColorPalette, fg: 1, bgMode: ColorRGB, bg: 0x112233,
	}
	got := diffStyle(style{}, prev, style{})
	if !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("non-default -> default = %v, want [0]", got)
	}
}

func TestDiffStyleDefaultToDefault(t *testing.T) {
	// The null-cell style may itself carry a color; cells matching it need
	// no emission.
	null := style{bgMode: ColorPalette, bg: 0}
	if got := diffStyle(null, null, null); got != nil {
		t.Errorf("default -> default = %v, want nil", got)
	}
}

func TestDiffStyleBoldRed(t *testing.T) {
	cur := style{bold: true, fgMode: ColorPalette, fg: 1}
	got := diffStyle(cur, style{}, style{})
	if !reflect.DeepEqual(got, []int{1, 31}) {
		t.Errorf("default -> bold red = %v, want [1 31]", got)
	}
}

func TestDiffStyleBoldToDim(t *testing.T) {
	// Bold and dim share reset code 22; emission order (bold before dim)
	// yields 22;2 which replays to exactly dim.
	got := diffStyle(style{dim: true}, style{bold: true}, style{})
	if !reflect.DeepEqual(got, []int{22, 2}) {
		t.Errorf("bold -> dim = %v, want [22 2]", got)
	}
}

func TestDiffStyleFlagOrder(t *testing.T) {
	cur := style{
		bold: true, dim: true, italic: true, underline: true,
		blink: true, inverse: true, invisible: true, strike: true,
		fgMode: ColorPalette, fg: 2,
	}
	got := diffStyle(cur, style{}, style{})
	want := []int{1, 2, 3, 4, 5, 7, 8, 9, 32}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("all flags = %v, want %v", got, want)
	}
}

func TestDiffStyleForegroundEncodings(t *testing.T) {
	tests := []struct {
		name string
		cur  style
		want []int
	}{
		{"basic", style{fgMode: ColorPalette, fg: 3}, []int{33}},
		{"bright", style{fgMode: ColorPalette, fg: 9}, []int{91}},
		{"palette256", style{fgMode: ColorPalette, fg: 100}, []int{38, 5, 100}},
		{"rgb", style{fgMode: ColorRGB, fg: 0x336699}, []int{38, 2, 0x33, 0x66, 0x99}},
		{"rgbMode3", style{fgMode: 3, fg: 0x010203}, []int{38, 2, 1, 2, 3}},
		{"rgbModeNeg", style{fgMode: -1, fg: 0xffffff}, []int{38, 2, 255, 255, 255}},
	}
	prev := style{fgMode: ColorPalette, fg: 7, bold: true}
	for _, tt := range tests {
		cur := tt.cur
		cur.bold = true // keep flags equal so only fg shows up
		got := diffStyle(cur, prev, style{})
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: fg diff = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDiffStyleBackgroundEncodings(t *testing.T) {
	tests := []struct {
		name string
		cur  style
		want []int
	}{
		{"basic", style{bgMode: ColorPalette, bg: 4}, []int{44}},
		{"bright", style{bgMode: ColorPalette, bg: 15}, []int{107}},
		{"palette256", style{bgMode: ColorPalette, bg: 238}, []int{48, 5, 238}},
		{"rgb", style{bgMode: ColorRGB, bg: 0x101112}, []int{48, 2, 0x10, 0x11, 0x12}},
	}
	prev := style{bgMode: ColorPalette, bg: 0, italic: true}
	for _, tt := range tests {
		cur := tt.cur
		cur.italic = true
		got := diffStyle(cur, prev, style{})
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: bg diff = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDiffStyleDefaultColorResets(t *testing.T) {
	prev := style{fgMode: ColorPalette, fg: 1, bgMode: ColorPalette, bg: 2, bold: true}
	cur := style{bold: true}
	got := diffStyle(cur, prev, style{})
	if !reflect.DeepEqual(got, []int{39, 49}) {
		t.Errorf("colored -> default colors = %v, want [39 49]", got)
	}
}

func TestClassifyUnknownModePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("classify(7) did not panic")
		}
	}()
	classify(7)
}
