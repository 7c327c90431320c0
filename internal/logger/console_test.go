package logger

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
)

// TestNewConsoleLogger verifies logger construction.
func TestNewConsoleLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if logger.writer != buf {
		t.Error("expected writer to be set")
	}
	if logger.colorOutput {
		t.Error("expected color output disabled for a buffer")
	}
}

// TestLogFormat verifies the "[HH:MM:SS] [LEVEL] message" layout.
func TestLogFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "trace")

	logger.LogWarn("skipped: error accessing /x: permission denied")

	output := buf.String()
	if !strings.HasPrefix(output, "[") || output[9] != ']' {
		t.Errorf("expected timestamp prefix, got %q", output)
	}
	if !strings.HasSuffix(output, "[WARN] skipped: error accessing /x: permission denied\n") {
		t.Errorf("unexpected log line %q", output)
	}
}

// TestColorOutput verifies colored level tags when color is forced on.
func TestColorOutput(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")
	logger.SetColor(true)

	logger.LogError("boom")

	output := buf.String()
	if !strings.Contains(output, "\x1b[") {
		t.Errorf("expected ANSI escape codes, got %q", output)
	}
	if !strings.Contains(output, "boom") {
		t.Errorf("expected message in output, got %q", output)
	}
}

func TestTimestampFormat(t *testing.T) {
	ts := timestamp()

	// Verify format is HH:MM:SS (8 characters total with colons)
	if len(ts) != 8 {
		t.Errorf("expected timestamp length 8, got %d: %s", len(ts), ts)
	}

	if ts[2] != ':' || ts[5] != ':' {
		t.Errorf("expected colons at positions 2 and 5, got %s", ts)
	}

	for i, part := range strings.Split(ts, ":") {
		if len(part) != 2 {
			t.Errorf("expected part %d to have length 2, got %d", i, len(part))
		}
		for _, ch := range part {
			if ch < '0' || ch > '9' {
				t.Errorf("expected digit in timestamp, got %c", ch)
			}
		}
	}
}

// TestConcurrentLogging verifies thread safety with concurrent logging.
func TestConcurrentLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "debug")

	numGoroutines := 10
	wg := sync.WaitGroup{}
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(index int) {
			defer wg.Done()
			logger.LogSearchStart(fmt.Sprintf("search %d", index), "/root")
			logger.LogDebug(fmt.Sprintf("debug %d", index))
			logger.LogSearchComplete(index, "files", time.Millisecond)
		}(i)
	}

	wg.Wait()

	output := buf.String()
	for i := 0; i < numGoroutines; i++ {
		if !strings.Contains(output, fmt.Sprintf("Searching search %d under /root", i)) {
			t.Errorf("expected output to contain search %d", i)
		}
		if !strings.Contains(output, fmt.Sprintf("debug %d\n", i)) {
			t.Errorf("expected output to contain debug %d", i)
		}
	}

	if lines := strings.Count(output, "\n"); lines != 3*numGoroutines {
		t.Errorf("expected %d lines, got %d", 3*numGoroutines, lines)
	}
}

// TestNilWriter verifies that nil writer is handled gracefully.
func TestNilWriter(t *testing.T) {
	logger := NewConsoleLogger(nil, "trace")

	// These should not panic
	logger.LogTrace("trace")
	logger.LogError("error")
	logger.LogSearchStart("string tables in any locale", "/tmp")
	logger.LogSearchComplete(0, "files", time.Second)
}

// TestDurationFormatting verifies duration formatting for various time ranges.
func TestDurationFormatting(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{850 * time.Microsecond, "850µs"},
		{12 * time.Millisecond, "12ms"},
		{1500 * time.Millisecond, "1.5s"},
		{2 * time.Minute, "2m"},
		{2*time.Minute + 5*time.Second, "2m5s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatDuration(tt.duration); got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}
