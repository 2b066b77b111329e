package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/ded/internal/command"
	"github.com/kobzarvs/ded/internal/config"
	"github.com/kobzarvs/ded/internal/editor"
	"github.com/kobzarvs/ded/internal/fileio"
	"github.com/kobzarvs/ded/internal/gitinfo"
	"github.com/kobzarvs/ded/internal/layout"
	"github.com/kobzarvs/ded/internal/logger"
)

const actionEnterCommand = "enter_command"

// Window binds one engine to the terminal: it decodes keys through the
// keymap, runs the command line, and remembers the scroll offset.
type Window struct {
	engine *editor.Engine
	keymap config.Keymap
	opts   layout.Options
	styles styles
	path   string
	branch string

	top int

	commandMode bool
	cmd         []rune

	message string
	warning bool
}

func NewWindow(engine *editor.Engine, cfg config.Config, path string) *Window {
	return &Window{
		engine: engine,
		keymap: cfg.Keymap,
		opts: layout.Options{
			LineNumbers:   cfg.Editor.ShowLineNumbers(),
			WrapIndicator: cfg.Editor.WrapRune(),
		},
		styles: newStyles(cfg.Theme),
		path:   path,
		branch: branchOf(path),
	}
}

func branchOf(path string) string {
	if path == "" {
		return ""
	}
	return gitinfo.Branch(path)
}

func (w *Window) Engine() *editor.Engine {
	return w.engine
}

// Top is the first logical line on screen.
func (w *Window) Top() int {
	return w.top
}

func (w *Window) SetTop(top int) {
	w.top = max(0, min(top, w.engine.Store().LineCount()-1))
}

func (w *Window) Path() string {
	return w.path
}

// Message is the text currently shown in the status line, if any.
func (w *Window) Message() string {
	return w.message
}

// HandleKey feeds one key press through the window and reports whether the
// engine has terminated.
func (w *Window) HandleKey(ev *tcell.EventKey) bool {
	if w.commandMode {
		w.handleCommand(ev)
		return w.done()
	}

	keymap := w.keymap.Editing
	if w.engine.State() == editor.StateNormal {
		keymap = w.keymap.Normal
	}
	key := keyString(ev)
	if action, ok := keymap[key]; ok {
		w.runAction(action)
		return w.done()
	}
	if w.engine.State() != editor.StateEditing {
		return w.done()
	}
	switch ev.Key() {
	case tcell.KeyRune:
		w.apply(editor.Insert(ev.Rune()))
	case tcell.KeyTab:
		w.apply(editor.Insert('\t'))
	}
	return w.done()
}

func (w *Window) runAction(action string) {
	if action == actionEnterCommand {
		if w.engine.State() == editor.StateNormal {
			w.commandMode = true
			w.cmd = w.cmd[:0]
		}
		return
	}
	kind, ok := editor.EventByName(action)
	if !ok {
		logger.Debug("unknown action", "action", action)
		w.setWarning(fmt.Sprintf("unknown action: %s", action))
		return
	}
	w.apply(editor.Key(kind))
}

func (w *Window) handleCommand(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		w.commandMode = false
		w.cmd = w.cmd[:0]
	case tcell.KeyEnter:
		line := string(w.cmd)
		w.commandMode = false
		w.cmd = w.cmd[:0]
		w.execCommand(line)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(w.cmd) == 0 {
			w.commandMode = false
			return
		}
		w.cmd = w.cmd[:len(w.cmd)-1]
	case tcell.KeyCtrlU:
		w.cmd = w.cmd[:0]
	case tcell.KeyRune:
		w.cmd = append(w.cmd, ev.Rune())
	}
}

func (w *Window) execCommand(line string) {
	cmd, err := command.Parse(line)
	if errors.Is(err, command.ErrEmpty) {
		return
	}
	if err != nil {
		w.setWarning(err.Error())
		return
	}
	ev, err := cmd.Event(w.engine.Dirty())
	if err != nil {
		w.setWarning(err.Error())
		return
	}
	if cmd.Path == "" {
		w.apply(ev)
		return
	}
	// The new name only sticks once something was written under it.
	path, branch, saver := w.path, w.branch, w.engine.Saver()
	w.path = cmd.Path
	w.branch = branchOf(cmd.Path)
	w.engine.SetSaver(fileio.File{Path: cmd.Path})
	if res := w.apply(ev); !res.Saved {
		w.path, w.branch = path, branch
		w.engine.SetSaver(saver)
	}
}

func (w *Window) apply(ev editor.Event) editor.Result {
	res := w.engine.Apply(ev)
	switch {
	case res.Warning != "":
		w.setWarning(res.Warning)
	case res.Saved:
		w.message = fmt.Sprintf("%q written, %d lines", w.displayName(), w.engine.Store().LineCount())
		w.warning = false
	case res.Changed:
		w.message = ""
		w.warning = false
	}
	return res
}

func (w *Window) setWarning(msg string) {
	w.message = msg
	w.warning = true
}

func (w *Window) done() bool {
	return w.engine.State() == editor.StateTerminated
}

func (w *Window) displayName() string {
	if w.path == "" {
		return "[No Name]"
	}
	return filepath.Base(w.path)
}
