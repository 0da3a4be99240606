// Package property builds Xperience property names and attaches values to
// log events only when they carry meaningful data.
package property

import "github.com/willibrandon/mtlog/core"

// Prefix namespaces every property this module emits.
const Prefix = "Xperience"

// Key returns the namespaced property name for field, e.g. "Xperience.ContactId".
func Key(field string) string {
	return Prefix + "." + field
}

// TryEnrich adds key=value to the event when meaningful(value) holds.
// Existing properties are never overwritten.
func TryEnrich[T any](event *core.LogEvent, factory core.LogEventPropertyFactory, key string, value T, meaningful func(T) bool) bool {
	if event == nil || event.Properties == nil || factory == nil {
		return false
	}
	if meaningful != nil && !meaningful(value) {
		return false
	}
	if _, exists := event.Properties[key]; exists {
		return false
	}

	event.AddPropertyIfAbsent(factory.CreateProperty(key, value))
	return true
}

// NonEmpty reports whether s carries a value.
func NonEmpty(s string) bool { return s != "" }

// Positive reports whether id is a set surrogate key.
func Positive(id int) bool { return id > 0 }

// Always treats every value as meaningful. Booleans have no absent state.
func Always[T any](T) bool { return true }

// String adds a non-empty string property.
func String(event *core.LogEvent, factory core.LogEventPropertyFactory, field, value string) bool {
	return TryEnrich(event, factory, Key(field), value, NonEmpty)
}

// Int adds a positive integer property.
func Int(event *core.LogEvent, factory core.LogEventPropertyFactory, field string, value int) bool {
	return TryEnrich(event, factory, Key(field), value, Positive)
}

// Bool adds a boolean property unconditionally.
func Bool(event *core.LogEvent, factory core.LogEventPropertyFactory, field string, value bool) bool {
	return TryEnrich(event, factory, Key(field), value, Always[bool])
}
