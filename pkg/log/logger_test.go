package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	SetLevel(Notice)
	defer SetLevel(Notice)

	logger := New("test")
	logger.Info("hidden info")
	logger.Notice("visible notice")

	out := buf.String()
	if strings.Contains(out, "hidden info") {
		t.Error("Info should be filtered at Notice level")
	}
	if !strings.Contains(out, "visible notice") {
		t.Errorf("Expected notice in output, got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("debug %d", 42)
	if !strings.Contains(buf.String(), "debug 42") {
		t.Errorf("Expected debug output after raising verbosity, got %q", buf.String())
	}
}

func TestSetSinkKeepsLevel(t *testing.T) {
	SetLevel(Warning)
	defer SetLevel(Notice)

	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	New("test").Notice("filtered")
	if buf.Len() != 0 {
		t.Errorf("Expected level to survive a sink change, got %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	Discard().Error("dropped")
	if buf.Len() != 0 {
		t.Errorf("Discard logger should not write, got %q", buf.String())
	}
}

func TestSetLevelIgnoresUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	SetLevel(Info)
	defer SetLevel(Notice)
	SetLevel(Level(42))

	New("test").Info("still visible")
	if !strings.Contains(buf.String(), "still visible") {
		t.Errorf("Unknown level should leave Info in place, got %q", buf.String())
	}
}
