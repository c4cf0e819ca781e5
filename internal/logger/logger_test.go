package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFileAndVerboseStderr(t *testing.T) {
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)

	var stderr bytes.Buffer
	closeFn := Init(&stderr, true)
	Debug("record appended", "exercise", "pushup", "reps", 20)
	closeFn()

	data, err := os.ReadFile(filepath.Join(state, "training", "training.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"record appended"`) {
		t.Fatalf("log file missing entry: %s", data)
	}
	if !strings.Contains(stderr.String(), `"exercise":"pushup"`) {
		t.Fatalf("verbose stderr missing entry: %s", stderr.String())
	}
}

func TestInitQuietSkipsDebug(t *testing.T) {
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)

	var stderr bytes.Buffer
	closeFn := Init(&stderr, false)
	Debug("hidden")
	Info("shown")
	closeFn()

	if stderr.Len() != 0 {
		t.Fatalf("non-verbose logger wrote to stderr: %s", stderr.String())
	}
	data, err := os.ReadFile(filepath.Join(state, "training", "training.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Fatalf("unexpected log contents: %s", data)
	}
}

func TestCloseSilencesLogger(t *testing.T) {
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)

	closeFn := Init(&bytes.Buffer{}, false)
	Error("command failed", "exit_code", 3)
	closeFn()
	Info("after close")

	data, err := os.ReadFile(filepath.Join(state, "training", "training.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"level":"ERROR"`) {
		t.Fatalf("log file missing error entry: %s", data)
	}
	if strings.Contains(string(data), "after close") {
		t.Fatalf("logger wrote after close: %s", data)
	}
}
