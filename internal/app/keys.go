package app

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// keyString renders a key event the way keymap entries are written:
// "esc", "ctrl+s", "left", or the rune itself.
func keyString(ev *tcell.EventKey) string {
	// Named keys first: Enter, Tab and Backspace share codes with ctrl+m,
	// ctrl+i and ctrl+h.
	switch ev.Key() {
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		if ev.Modifiers()&tcell.ModShift != 0 {
			return "shift+tab"
		}
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyUp:
		return withCtrl(ev, "up")
	case tcell.KeyDown:
		return withCtrl(ev, "down")
	case tcell.KeyLeft:
		return withCtrl(ev, "left")
	case tcell.KeyRight:
		return withCtrl(ev, "right")
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdn"
	case tcell.KeyHome:
		return withCtrl(ev, "home")
	case tcell.KeyEnd:
		return withCtrl(ev, "end")
	case tcell.KeyDelete:
		return "del"
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return "alt+" + strings.ToLower(string(r))
		}
		if r == ' ' {
			return "space"
		}
		return string(r)
	}
	if name := ctrlKeyName(ev.Key()); name != "" {
		return name
	}
	return ""
}

func withCtrl(ev *tcell.EventKey, name string) string {
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		return "ctrl+" + name
	}
	return name
}

func ctrlKeyName(key tcell.Key) string {
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+int(key-tcell.KeyCtrlA)))
	}
	return ""
}
