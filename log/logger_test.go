package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("test", Warn, &buf)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below level were written: %q", out)
	}
	if !strings.Contains(out, "shown 3") || !strings.Contains(out, "shown 4") {
		t.Errorf("expected warn and error lines, got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("expected logger name in output, got %q", out)
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("session", Debug, &buf)
	l.JSON = true

	l.Info("created user '%s'", "alice")

	var entry logEntry
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry.Level != "INFO" || entry.Service != "session" || entry.Message != "created user 'alice'" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestLogger_Named(t *testing.T) {
	var buf bytes.Buffer
	root := NewWriterLogger("vperm", Debug, &buf)
	child := root.Named("cmd")

	child.Info("hello")
	if !strings.Contains(buf.String(), "[vperm/cmd]") {
		t.Errorf("expected nested name, got %q", buf.String())
	}
	if root.Name != "vperm" {
		t.Errorf("Named modified the parent: %q", root.Name)
	}
}

func TestLogger_FatalCallsExit(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("", Debug, &buf)

	code := -1
	l.exit = func(c int) { code = c }
	l.Fatal("boom")

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", Debug, false},
		{"INFO", Info, false},
		{"", Info, false},
		{"warning", Warn, false},
		{"Error", Error, false},
		{"fatal", Fatal, false},
		{"verbose", Info, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorize(t *testing.T) {
	out := Colorize(Error, "failed")
	if !strings.Contains(out, "failed") || out == "failed" {
		t.Errorf("expected coloured output, got %q", out)
	}
	if got := Colorize(LogLevel(42), "plain"); got != "plain" {
		t.Errorf("unknown level should not be coloured, got %q", got)
	}
}
