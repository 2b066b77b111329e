// Package command parses the line typed after ':' into editor events.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kobzarvs/ded/internal/editor"
)

var (
	ErrEmpty   = errors.New("empty command")
	ErrUnsaved = errors.New("unsaved changes (use :q!)")
)

type Kind int

const (
	Write Kind = iota
	Quit
	ForceQuit
	WriteQuit
)

type Command struct {
	Kind Kind
	// Path is the optional target of :w / :wq.
	Path string
}

var names = map[string]Kind{
	"w":  Write,
	"q":  Quit,
	"q!": ForceQuit,
	"wq": WriteQuit,
	"x":  WriteQuit,
}

func Parse(line string) (Command, error) {
	line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), ":"))
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}
	kind, ok := names[fields[0]]
	if !ok {
		return Command{}, fmt.Errorf("unknown command: %s", fields[0])
	}
	cmd := Command{Kind: kind}
	if len(fields) > 1 {
		if kind != Write && kind != WriteQuit {
			return Command{}, fmt.Errorf("%s takes no argument", fields[0])
		}
		cmd.Path = strings.Join(fields[1:], " ")
	}
	return cmd, nil
}

// Event maps the command to the engine event to raise. A plain quit is
// refused while there are unsaved changes.
func (c Command) Event(dirty bool) (editor.Event, error) {
	switch c.Kind {
	case Write:
		return editor.Key(editor.EventSave), nil
	case Quit:
		if dirty {
			return editor.Event{}, ErrUnsaved
		}
		return editor.Key(editor.EventQuit), nil
	case ForceQuit:
		return editor.Key(editor.EventQuit), nil
	case WriteQuit:
		return editor.Key(editor.EventSaveAndQuit), nil
	default:
		return editor.Event{}, fmt.Errorf("command %d has no event", int(c.Kind))
	}
}
