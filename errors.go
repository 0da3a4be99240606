package xperience

import (
	"errors"
	"fmt"
)

var (
	// ErrNilEnrichment is returned when a registration function receives a nil Enrichment.
	ErrNilEnrichment = errors.New("xperience: enrichment configuration is nil")

	// ErrNilServices is returned when a registration function receives nil services.
	ErrNilServices = errors.New("xperience: services are nil")

	// ErrMissingCapability is returned when a required capability is not set on the services.
	ErrMissingCapability = errors.New("xperience: required capability is missing")
)

// MissingCapabilityError names the capability an enricher could not be registered without.
type MissingCapabilityError struct {
	Enricher   string
	Capability string
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("xperience: %s enricher requires %s", e.Enricher, e.Capability)
}

// Unwrap returns ErrMissingCapability.
func (e *MissingCapabilityError) Unwrap() error {
	return ErrMissingCapability
}
