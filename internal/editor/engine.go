package editor

import (
	"errors"
	"fmt"

	"github.com/kobzarvs/ded/internal/buffer"
	"github.com/kobzarvs/ded/internal/logger"
)

type State int

const (
	StateEditing State = iota
	StateNormal
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "EDIT"
	case StateNormal:
		return "NORMAL"
	case StateTerminated:
		return "TERMINATED"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// WarnEditRejected is shown when the store refused an edit.
const WarnEditRejected = "edit could not be applied"

// ErrNoFileName is returned by a save with no Saver attached.
var ErrNoFileName = errors.New("no file name")

// Saver receives the serialized document on Save.
type Saver interface {
	Save(data []byte) error
}

// Result describes what one Apply did.
type Result struct {
	State  State
	Cursor Cursor
	// Changed is set when the document content was modified.
	Changed bool
	// Ignored is set when the event has no meaning in the current state.
	Ignored bool
	Saved   bool
	Warning string
	Err     error
}

// Engine applies decoded events to a LineStore and its cursor. It is the only
// writer of both and runs on the caller's goroutine.
type Engine struct {
	store  *buffer.LineStore
	cursor Cursor
	state  State
	saver  Saver
	dirty  bool
}

func New(store *buffer.LineStore, saver Saver) *Engine {
	return &Engine{store: store, saver: saver}
}

func (e *Engine) Store() *buffer.LineStore {
	return e.store
}

func (e *Engine) Cursor() Cursor {
	return e.cursor
}

// SetCursor moves the cursor to c, clamped to the document.
func (e *Engine) SetCursor(c Cursor) {
	e.cursor = c.Clamp(e.store)
}

func (e *Engine) State() State {
	return e.state
}

// Dirty reports whether there are edits since the last successful save.
func (e *Engine) Dirty() bool {
	return e.dirty
}

func (e *Engine) Saver() Saver {
	return e.saver
}

func (e *Engine) SetSaver(s Saver) {
	e.saver = s
}

func (e *Engine) Apply(ev Event) Result {
	if e.state == StateTerminated {
		return e.ignored()
	}
	switch ev.Kind {
	case EventInsertChar, EventBackspace, EventEnter:
		if e.state != StateEditing {
			return e.ignored()
		}
		return e.edit(ev)
	case EventMoveLeft:
		e.cursor = e.cursor.MoveLeft(e.store)
	case EventMoveRight:
		e.cursor = e.cursor.MoveRight(e.store)
	case EventMoveUp:
		e.cursor = e.cursor.MoveUp(e.store)
	case EventMoveDown:
		e.cursor = e.cursor.MoveDown(e.store)
	case EventEscape:
		e.state = StateNormal
	case EventEnterEditing:
		e.state = StateEditing
	case EventSave:
		return e.save()
	case EventQuit:
		e.state = StateTerminated
		logger.Info("quit", "dirty", e.dirty)
	case EventSaveAndQuit:
		res := e.save()
		if res.Err != nil {
			return res
		}
		e.state = StateTerminated
		res.State = e.state
		return res
	default:
		return e.ignored()
	}
	return e.result()
}

func (e *Engine) edit(ev Event) Result {
	c := e.cursor
	var err error
	switch ev.Kind {
	case EventInsertChar:
		if err = e.store.InsertChar(c.Line, c.Col, ev.Ch); err == nil {
			c.Col++
		}
	case EventBackspace:
		switch {
		case c.Col > 0:
			e.store.DeleteCharBefore(c.Line, c.Col)
			c.Col--
		case c.Line > 0:
			var col int
			if col, err = e.store.JoinWithPrevious(c.Line); err == nil {
				c = Cursor{Line: c.Line - 1, Col: col}
			}
		default:
			return e.result()
		}
	case EventEnter:
		if err = e.store.SplitAt(c.Line, c.Col); err == nil {
			c = LineStart(c.Line + 1)
		}
	}
	if err != nil {
		logger.Warn("edit rejected", "event", ev.Kind.String(), "line", c.Line, "col", c.Col, "err", err)
		res := e.result()
		res.Warning = WarnEditRejected
		res.Err = err
		return res
	}
	e.cursor = c
	e.dirty = true
	res := e.result()
	res.Changed = true
	return res
}

func (e *Engine) save() Result {
	res := e.result()
	if e.saver == nil {
		res.Err = ErrNoFileName
		res.Warning = ErrNoFileName.Error()
		return res
	}
	data := buffer.Save(e.store)
	if err := e.saver.Save(data); err != nil {
		logger.Error("save failed", "err", err)
		res.Err = err
		res.Warning = err.Error()
		return res
	}
	logger.Info("saved", "bytes", len(data), "lines", e.store.LineCount())
	e.dirty = false
	res.Saved = true
	return res
}

func (e *Engine) result() Result {
	return Result{State: e.state, Cursor: e.cursor}
}

func (e *Engine) ignored() Result {
	res := e.result()
	res.Ignored = true
	return res
}
