// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Level
	}{
		{name: "debug", want: LevelDebug},
		{name: "INFO", want: LevelInfo},
		{name: "", want: LevelInfo},
		{name: " warn ", want: LevelWarn},
		{name: "warning", want: LevelWarn},
		{name: "error", want: LevelError},
	}

	for _, tc := range tests {
		got, err := ParseLevel(tc.name)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", tc.name, err)
		}

		if got != tc.want {
			t.Fatalf("ParseLevel(%q)=%d, want %d", tc.name, got, tc.want)
		}
	}

	if _, err := ParseLevel("trace"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("ParseLevel(trace) err=%v, want %v", err, ErrUnknownLevel)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	if got, err := ParseFormat("JSON"); err != nil || got != FormatJSON {
		t.Fatalf("ParseFormat(JSON)=%d, %v", got, err)
	}

	if got, err := ParseFormat(""); err != nil || got != FormatText {
		t.Fatalf("ParseFormat(\"\")=%d, %v", got, err)
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("ParseFormat(xml) err=%v, want %v", err, ErrUnknownFormat)
	}
}

func TestNewLoggerJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelInfo, FormatJSON)
	logger.Debug("hidden")
	logger.Info("segmented", "file", "a.txt", "segments", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if entry["msg"] != "segmented" || entry["file"] != "a.txt" || entry["segments"] != float64(3) {
		t.Fatalf("unexpected entry: %v", entry)
	}

	ts, ok := entry["time"].(string)
	if !ok {
		t.Fatalf("time=%v, want string", entry["time"])
	}

	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Fatalf("time %q is not RFC3339: %v", ts, err)
	}
}

func TestNewLoggerTextLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelWarn, FormatText)
	logger.Info("hidden")
	logger.Warn("shown", "rule_set", "ja")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record leaked at warn level: %q", out)
	}

	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "rule_set=ja") {
		t.Fatalf("unexpected text output: %q", out)
	}
}
