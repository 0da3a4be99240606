// Package enrichers provides mtlog enrichers that attach Xperience platform
// context to log events.
//
// Each enricher reads one capability from the platform package and adds
// "Xperience.*" properties for the fields that carry data. Empty strings and
// unset (zero or negative) identifiers are skipped; boolean flags are always
// written. Properties already present on the event are never overwritten.
//
// The enrichers hold no mutable state and are safe for concurrent use as long
// as the capabilities they read are.
package enrichers
