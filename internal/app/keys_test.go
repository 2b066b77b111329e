package app

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), "h"},
		{tcell.NewEventKey(tcell.KeyRune, ':', tcell.ModNone), ":"},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space"},
		{tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModAlt), "alt+x"},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "esc"},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "backspace"},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "tab"},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "left"},
		{tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModCtrl), "ctrl+home"},
		{tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModNone), "ctrl+s"},
		{tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModNone), "ctrl+q"},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), ""},
	}
	for _, tt := range tests {
		if got := keyString(tt.ev); got != tt.want {
			t.Fatalf("keyString(%v) = %q, want %q", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	if got := parseColor("#0A0E14", tcell.ColorRed); got != tcell.NewRGBColor(0x0A, 0x0E, 0x14) {
		t.Fatalf("hex color = %v", got)
	}
	if got := parseColor("", tcell.ColorRed); got != tcell.ColorRed {
		t.Fatalf("empty = %v, want fallback", got)
	}
	if got := parseColor("#zzzzzz", tcell.ColorRed); got != tcell.ColorRed {
		t.Fatalf("bad hex = %v, want fallback", got)
	}
	if got := parseColor("Green", tcell.ColorRed); got != tcell.ColorGreen {
		t.Fatalf("named = %v", got)
	}
	if got := parseColor("default", tcell.ColorRed); got != tcell.ColorDefault {
		t.Fatalf("default = %v", got)
	}
}

func TestComposeStatusLine(t *testing.T) {
	if got := composeStatusLine(" EDIT ", " Ln 1 ", 14); got != " EDIT    Ln 1 " {
		t.Fatalf("padded = %q", got)
	}
	if got := composeStatusLine(" EDIT | long name ", " Ln 1 ", 10); got != " EDI Ln 1 " {
		t.Fatalf("truncated = %q", got)
	}
	if got := composeStatusLine("left", "right", 3); got != "ght" {
		t.Fatalf("narrow = %q", got)
	}
}
