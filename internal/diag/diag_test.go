package diag

import (
	"strings"
	"testing"

	"github.com/willibrandon/mtlog/selflog"
)

func TestLoggerWritesToSelflog(t *testing.T) {
	var messages []string
	selflog.EnableFunc(func(msg string) {
		messages = append(messages, msg)
	})
	defer selflog.Disable()

	log := New("xperience-test")
	log.Debug("no contact for %s", "request")
	log.Warn("missing %d", 1)

	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d: %v", len(messages), messages)
	}
	if !strings.Contains(messages[0], "[xperience-test] DEBUG no contact for request") {
		t.Errorf("Unexpected message: %s", messages[0])
	}
	if !strings.Contains(messages[1], "[xperience-test] WARN missing 1") {
		t.Errorf("Unexpected message: %s", messages[1])
	}
}

func TestLoggerSilentWhenDisabled(t *testing.T) {
	selflog.Disable()

	// Must not panic when disabled.
	New("xperience-test").Error("ignored %v", struct{}{})
}
