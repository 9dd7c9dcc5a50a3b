package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_TextIsSortedAndFiltered(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, App: "medtap", Output: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"path": "/auth/me"}).Info("api call", map[string]any{"status": 200})

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry should be filtered, got %q", out)
	}
	if !strings.Contains(out, "app=medtap level=info msg=api call path=/auth/me status=200") {
		t.Fatalf("unexpected text line: %q", out)
	}
}

func TestLogger_JSONRendersErrors(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, Output: &buf})

	l.Warn("session expired", map[string]any{"err": errors.New("unauthorized")})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json line: %v (%q)", err, buf.String())
	}
	if entry["level"] != "warn" || entry["err"] != "unauthorized" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if ParseLevel(" WARNING ") != Warn {
		t.Fatalf("expected warn")
	}
	if ParseLevel("nope") != Info {
		t.Fatalf("unknown level should default to info")
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("unexpected format parsing")
	}
}
