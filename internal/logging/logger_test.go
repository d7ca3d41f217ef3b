package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{" error ", zerolog.ErrorLevel, false},
		{"loud", zerolog.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(Config{Level: "info", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("NewWithWriter() error = %v", err)
	}

	logger.Debug().Msg("hidden")
	logger.Info().Str("token", "jira").Msg("visible")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}
	var event map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &event); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if event["message"] != "visible" || event["token"] != "jira" || event["level"] != "info" {
		t.Errorf("unexpected event %v", event)
	}
	if _, ok := event["time"]; !ok {
		t.Error("event has no timestamp")
	}
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(Config{Level: "debug", Format: "console"}, &buf)
	if err != nil {
		t.Fatalf("NewWithWriter() error = %v", err)
	}
	logger.Debug().Msg("hello console")
	if !strings.Contains(buf.String(), "hello console") {
		t.Errorf("console output = %q, want message", buf.String())
	}
}

func TestNewWithWriter_Errors(t *testing.T) {
	if _, err := NewWithWriter(Config{Level: "nope"}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for invalid level")
	}
	if _, err := NewWithWriter(Config{Format: "xml"}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := NewWithWriter(Config{Format: "json"}, &buf)
	ctx := WithContext(context.Background(), WithComponent(logger, "http"))

	FromContext(ctx).Info().Msg("from context")
	if !strings.Contains(buf.String(), `"component":"http"`) {
		t.Errorf("output = %q, want component field", buf.String())
	}
}
