package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPathEnv(t *testing.T) {
	t.Setenv("DED_LOG_FILE", "/tmp/custom.log")
	if p, _ := Path(); p != "/tmp/custom.log" {
		t.Fatalf("Path = %q", p)
	}
	t.Setenv("DED_LOG_FILE", "")
	t.Setenv("DED_CONFIG_HOME", "/tmp/ded-home")
	if p, _ := Path(); p != "/tmp/ded-home/ded.log" {
		t.Fatalf("Path = %q", p)
	}
	t.Setenv("DED_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if p, _ := Path(); p != "/tmp/xdg/ded/ded.log" {
		t.Fatalf("Path = %q", p)
	}
}

func TestHelpersBeforeInitAreNoops(t *testing.T) {
	prevL, prevS := L, S
	L, S = nil, nil
	defer func() { L, S = prevL, prevS }()
	Debug("x")
	Info("x")
	Warn("x")
	Error("x")
}

func TestHelpersRouteToLogger(t *testing.T) {
	prevL, prevS := L, S
	defer func() { L, S = prevL, prevS }()
	core, logs := observer.New(zapcore.DebugLevel)
	install(zap.New(core))

	Warn("edit rejected", "line", 3)
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Message != "edit rejected" || entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("entry = %+v", entries[0])
	}
	if got := entries[0].ContextMap()["line"]; got != int64(3) {
		t.Fatalf("line field = %v", got)
	}
}

func TestInitWritesFile(t *testing.T) {
	prevL, prevS := L, S
	defer func() { L, S = prevL, prevS }()
	path := filepath.Join(t.TempDir(), "nested", "ded.log")
	t.Setenv("DED_LOG_FILE", path)
	if err := Init(true); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Debug("hello from test")
	Close()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Fatalf("log missing message: %s", data)
	}
}
