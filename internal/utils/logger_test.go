package utils

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := InitLogger("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLogEventFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	LogEvent(" req-1 ", "docs", "generate_fare_report", "from=1 to=2")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["module"] != "DOCS" || ctx["action"] != "generate_fare_report" || ctx["request_id"] != "req-1" {
		t.Fatalf("unexpected fields: %v", ctx)
	}
}

func TestFormatDollars(t *testing.T) {
	if got := FormatDollars(99); got != "$99.00" {
		t.Fatalf("got %q", got)
	}
}
