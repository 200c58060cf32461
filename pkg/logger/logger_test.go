package logger

import (
	"context"
	"testing"
)

func TestCloseIsIdempotent(t *testing.T) {
	l, err := NewLogger(context.Background(), WithOutputDir(t.TempDir()))
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	l.Close()
	// A second close, as happens when both a shutdown hook and a deferred
	// cleanup run, must not panic on the already-closed quit channel.
	l.Close()
}

func TestNewLoggerCreatesOutputDir(t *testing.T) {
	dir := t.TempDir() + "/nested/logs"
	l, err := NewLogger(context.Background(), WithOutputDir(dir))
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer l.Close()

	if l.OutputDir != dir {
		t.Errorf("output dir = %q, want %q", l.OutputDir, dir)
	}
	if l.File == nil {
		t.Fatal("log file not opened")
	}
}
