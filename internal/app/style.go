package app

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/ded/internal/config"
)

type styles struct {
	text    tcell.Style
	gutter  tcell.Style
	status  tcell.Style
	warning tcell.Style
	command tcell.Style
}

func newStyles(t config.Theme) styles {
	fg := parseColor(t.Foreground, tcell.ColorDefault)
	bg := parseColor(t.Background, tcell.ColorDefault)
	statusBg := parseColor(t.StatuslineBackground, bg)
	return styles{
		text: tcell.StyleDefault.Foreground(fg).Background(bg),
		gutter: tcell.StyleDefault.
			Foreground(parseColor(t.LineNumberForeground, fg)).
			Background(parseColor(t.LineNumberBackground, bg)),
		status: tcell.StyleDefault.
			Foreground(parseColor(t.StatuslineForeground, fg)).
			Background(statusBg),
		warning: tcell.StyleDefault.
			Foreground(parseColor(t.WarningForeground, tcell.ColorRed)).
			Background(statusBg),
		command: tcell.StyleDefault.
			Foreground(parseColor(t.CommandlineForeground, fg)).
			Background(parseColor(t.CommandlineBackground, bg)),
	}
}

// parseColor accepts "#rrggbb" or a tcell color name.
func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		v, err := strconv.ParseInt(name[1:], 16, 32)
		if err != nil {
			return fallback
		}
		return tcell.NewHexColor(int32(v))
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
