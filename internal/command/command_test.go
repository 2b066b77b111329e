package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobzarvs/ded/internal/editor"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{":w", Command{Kind: Write}},
		{"w", Command{Kind: Write}},
		{":q", Command{Kind: Quit}},
		{":q!", Command{Kind: ForceQuit}},
		{":wq", Command{Kind: WriteQuit}},
		{"  :x  ", Command{Kind: WriteQuit}},
		{":w other file.txt", Command{Kind: Write, Path: "other file.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(":")
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = Parse(":frob")
	assert.EqualError(t, err, "unknown command: frob")
	_, err = Parse(":q now")
	assert.Error(t, err)
}

func TestEvent(t *testing.T) {
	ev, err := Command{Kind: Write}.Event(true)
	require.NoError(t, err)
	assert.Equal(t, editor.EventSave, ev.Kind)

	_, err = Command{Kind: Quit}.Event(true)
	assert.ErrorIs(t, err, ErrUnsaved)

	ev, err = Command{Kind: Quit}.Event(false)
	require.NoError(t, err)
	assert.Equal(t, editor.EventQuit, ev.Kind)

	ev, err = Command{Kind: ForceQuit}.Event(true)
	require.NoError(t, err)
	assert.Equal(t, editor.EventQuit, ev.Kind)

	ev, err = Command{Kind: WriteQuit}.Event(true)
	require.NoError(t, err)
	assert.Equal(t, editor.EventSaveAndQuit, ev.Kind)
}
