package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileState is the remembered view of one file.
type FileState struct {
	CursorLine int `json:"cursor_line"`
	CursorCol  int `json:"cursor_col"`
	Top        int `json:"top"`
}

// Session is the persisted document, keyed by absolute file path.
type Session struct {
	Files     map[string]FileState `json:"files"`
	LastSaved time.Time            `json:"last_saved"`
}

// Manager keeps the session in memory and writes it back periodically and
// on Stop.
type Manager struct {
	mu       sync.RWMutex
	session  Session
	path     string
	dirty    bool
	stopChan chan struct{}
	stopOnce sync.Once
}

// AutosaveInterval is how often a dirty session is flushed.
var AutosaveInterval = 15 * time.Second

// DefaultPath is $XDG_STATE_HOME/ded/session.json (~/.local/state by default).
func DefaultPath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "ded", "session.json"), nil
}

// NewManager loads the session at path (a missing or corrupt file starts an
// empty one) and starts autosaving.
func NewManager(path string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	m := &Manager{
		session:  Session{Files: make(map[string]FileState)},
		path:     path,
		stopChan: make(chan struct{}),
	}
	m.load()
	go m.autosaveLoop()
	return m, nil
}

func (m *Manager) load() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return
	}
	if session.Files == nil {
		session.Files = make(map[string]FileState)
	}
	m.session = session
}

// Save persists the session if it changed since the last write.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.dirty {
		return nil
	}
	m.session.LastSaved = time.Now()
	data, err := json.MarshalIndent(m.session, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return err
	}
	m.dirty = false
	return nil
}

func (m *Manager) FileState(absPath string) (FileState, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.session.Files[absPath]
	return state, ok
}

func (m *Manager) SetFileState(absPath string, state FileState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.session.Files[absPath]; ok && prev == state {
		return
	}
	m.session.Files[absPath] = state
	m.dirty = true
}

func (m *Manager) autosaveLoop() {
	ticker := time.NewTicker(AutosaveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = m.Save()
		case <-m.stopChan:
			return
		}
	}
}

// Stop ends autosaving and flushes pending changes.
func (m *Manager) Stop() error {
	m.stopOnce.Do(func() { close(m.stopChan) })
	return m.Save()
}
