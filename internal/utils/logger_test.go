package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestLogActionWritesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	InitLogger(path)
	t.Cleanup(func() { InitLogger("") })

	if !LoggingEnabled() {
		t.Fatal("LoggingEnabled() = false after InitLogger")
	}
	if err := LogVerdict("abc-123", false, "short_stay"); err != nil {
		t.Fatalf("LogVerdict() error = %v", err)
	}
	if err := LogLabReportMissing("abc-123", "HbA1c"); err != nil {
		t.Fatalf("LogLabReportMissing() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2: %q", len(lines), data)
	}

	entry := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] INTAKE:abc-123 \| ACTION:VERDICT \| DETAILS:Eliminated \| Rule: short_stay$`)
	if !entry.MatchString(lines[0]) {
		t.Errorf("unexpected verdict entry %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "ACTION:LAB_REPORT_MISSING | DETAILS:Lab: HbA1c | Recorded as Unknown") {
		t.Errorf("unexpected lab entry %q", lines[1])
	}
}

func TestLogActionDisabled(t *testing.T) {
	InitLogger("")
	if LoggingEnabled() {
		t.Fatal("LoggingEnabled() = true with empty path")
	}
	if err := LogSessionStart(false); err != nil {
		t.Errorf("LogSessionStart() error = %v, want nil when disabled", err)
	}
}

func TestLogActionOpenError(t *testing.T) {
	InitLogger(filepath.Join(t.TempDir(), "missing", "audit.log"))
	t.Cleanup(func() { InitLogger("") })

	if err := LogError("SYSTEM", "LEDGER", "boom"); err == nil {
		t.Error("LogError() error = nil, want open failure")
	}
}
