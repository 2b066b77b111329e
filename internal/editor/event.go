package editor

import "fmt"

// EventKind enumerates the decoded input events the engine understands.
type EventKind int

const (
	EventInsertChar EventKind = iota
	EventBackspace
	EventEnter
	EventMoveLeft
	EventMoveRight
	EventMoveUp
	EventMoveDown
	EventEscape
	EventEnterEditing
	EventSave
	EventQuit
	EventSaveAndQuit
)

var eventNames = map[EventKind]string{
	EventInsertChar:   "insert_char",
	EventBackspace:    "backspace",
	EventEnter:        "enter",
	EventMoveLeft:     "move_left",
	EventMoveRight:    "move_right",
	EventMoveUp:       "move_up",
	EventMoveDown:     "move_down",
	EventEscape:       "escape",
	EventEnterEditing: "enter_editing",
	EventSave:         "save",
	EventQuit:         "quit",
	EventSaveAndQuit:  "save_and_quit",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// EventByName resolves a keymap action name to an event kind.
func EventByName(name string) (EventKind, bool) {
	for k, n := range eventNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

type Event struct {
	Kind EventKind
	// Ch is the character for EventInsertChar.
	Ch rune
}

func Insert(ch rune) Event {
	return Event{Kind: EventInsertChar, Ch: ch}
}

func Key(kind EventKind) Event {
	return Event{Kind: kind}
}
