// Package testutil holds helpers shared by the enricher tests.
package testutil

import (
	"testing"

	"github.com/willibrandon/mtlog/core"
)

// PropertyFactory is a core.LogEventPropertyFactory that counts the
// properties it creates.
type PropertyFactory struct {
	Created int
}

// CreateProperty creates a new log event property.
func (f *PropertyFactory) CreateProperty(name string, value any) *core.LogEventProperty {
	f.Created++
	return &core.LogEventProperty{Name: name, Value: value}
}

// NewEvent returns an empty event ready for enrichment.
func NewEvent() *core.LogEvent {
	return &core.LogEvent{Properties: make(map[string]any)}
}

// AssertProperties fails the test unless the event carries exactly the expected properties.
func AssertProperties(t *testing.T, event *core.LogEvent, expected map[string]any) {
	t.Helper()

	if len(event.Properties) != len(expected) {
		t.Errorf("Expected %d properties, got %d: %v", len(expected), len(event.Properties), event.Properties)
	}
	for name, want := range expected {
		AssertProperty(t, event.Properties, name, want)
	}
}

// AssertProperty fails the test unless properties[name] == want.
func AssertProperty(t *testing.T, properties map[string]any, name string, want any) {
	t.Helper()

	got, ok := properties[name]
	if !ok {
		t.Errorf("Expected %s property", name)
		return
	}
	if got != want {
		t.Errorf("Expected %s=%v, got %v", name, want, got)
	}
}

// AssertAbsent fails the test if any of the named properties is present.
func AssertAbsent(t *testing.T, properties map[string]any, names ...string) {
	t.Helper()

	for _, name := range names {
		if value, ok := properties[name]; ok {
			t.Errorf("Did not expect %s property, got %v", name, value)
		}
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error, message string) {
	t.Helper()
	if err != nil {
		if message != "" {
			t.Fatalf("%s: %v", message, err)
		} else {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
}
