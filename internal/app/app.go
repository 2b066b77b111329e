package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/kobzarvs/ded/internal/buffer"
	"github.com/kobzarvs/ded/internal/config"
	"github.com/kobzarvs/ded/internal/editor"
	"github.com/kobzarvs/ded/internal/fileio"
	"github.com/kobzarvs/ded/internal/logger"
	"github.com/kobzarvs/ded/internal/session"
)

// ErrNotTerminal is returned when stdin is not attached to a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

type Options struct {
	Debug bool
	// LineNumbers overrides [editor] line-numbers when set.
	LineNumbers string
}

// App is the top-level runtime for ded.
type App struct {
	path string
	opts Options
}

func New(path string, opts Options) *App {
	return &App{path: path, opts: opts}
}

func (a *App) Run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotTerminal
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if a.opts.LineNumbers != "" {
		cfg.Editor.LineNumbers = a.opts.LineNumbers
	}
	if err := logger.Init(a.opts.Debug); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Close()

	w, err := Open(a.path, cfg)
	if err != nil {
		return err
	}

	sess := a.startSession()
	if sess != nil {
		defer func() {
			if err := sess.Stop(); err != nil {
				logger.Warn("session save failed", "err", err)
			}
		}()
		restoreState(sess, w)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	loop(s, w)
	if sess != nil {
		storeState(sess, w)
	}
	return nil
}

// Open reads path (a missing file starts an empty document that is created
// on first save) and builds a window around it.
func Open(path string, cfg config.Config) (*Window, error) {
	limits := cfg.Editor.Limits()
	if path == "" {
		return NewWindow(editor.New(buffer.New(limits), nil), cfg, ""), nil
	}
	data, exists, err := fileio.Read(path)
	if err != nil {
		logger.Error("open failed", "path", path, "err", err)
		return nil, err
	}
	store, err := buffer.Load(data, limits)
	if err != nil {
		logger.Error("load failed", "path", path, "err", err)
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	logger.Info("opened", "path", path, "exists", exists, "lines", store.LineCount(), "bytes", len(data))
	return NewWindow(editor.New(store, fileio.File{Path: path}), cfg, path), nil
}

func loop(s tcell.Screen, w *Window) {
	for {
		w.Render(s)
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if w.HandleKey(ev) {
				return
			}
		}
	}
}

func (a *App) startSession() *session.Manager {
	if a.path == "" {
		return nil
	}
	path, err := session.DefaultPath()
	if err != nil {
		logger.Warn("session disabled", "err", err)
		return nil
	}
	m, err := session.NewManager(path)
	if err != nil {
		logger.Warn("session disabled", "err", err)
		return nil
	}
	return m
}

func sessionKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func restoreState(m *session.Manager, w *Window) {
	state, ok := m.FileState(sessionKey(w.Path()))
	if !ok {
		return
	}
	w.Engine().SetCursor(editor.Cursor{Line: state.CursorLine, Col: state.CursorCol})
	w.SetTop(state.Top)
	logger.Debug("session restored", "path", w.Path(), "line", state.CursorLine, "col", state.CursorCol)
}

func storeState(m *session.Manager, w *Window) {
	if w.Path() == "" {
		return
	}
	c := w.Engine().Cursor()
	m.SetFileState(sessionKey(w.Path()), session.FileState{
		CursorLine: c.Line,
		CursorCol:  c.Col,
		Top:        w.Top(),
	})
}
