package xperience

import (
	"github.com/willibrandon/mtlog"
	"github.com/willibrandon/mtlog/core"
)

// Enrichment collects enrichers destined for a logger.
// It is a configuration-time builder and not safe for concurrent use.
type Enrichment struct {
	enrichers []core.LogEventEnricher
}

// NewEnrichment creates an empty enrichment configuration.
func NewEnrichment() *Enrichment {
	return &Enrichment{}
}

// With appends enrichers and returns e for chaining.
func (e *Enrichment) With(enrichers ...core.LogEventEnricher) *Enrichment {
	for _, enricher := range enrichers {
		if enricher != nil {
			e.enrichers = append(e.enrichers, enricher)
		}
	}
	return e
}

// Enrichers returns a copy of the registered enrichers in registration order.
func (e *Enrichment) Enrichers() []core.LogEventEnricher {
	result := make([]core.LogEventEnricher, len(e.enrichers))
	copy(result, e.enrichers)
	return result
}

// Len returns the number of registered enrichers.
func (e *Enrichment) Len() int {
	return len(e.enrichers)
}

// Enrich runs every registered enricher in registration order, which lets
// an Enrichment stand in wherever mtlog expects a single enricher.
func (e *Enrichment) Enrich(event *core.LogEvent, propertyFactory core.LogEventPropertyFactory) {
	for _, enricher := range e.enrichers {
		enricher.Enrich(event, propertyFactory)
	}
}

// Options returns one mtlog.WithEnricher option per registered enricher.
func (e *Enrichment) Options() []mtlog.Option {
	opts := make([]mtlog.Option, 0, len(e.enrichers))
	for _, enricher := range e.enrichers {
		opts = append(opts, mtlog.WithEnricher(enricher))
	}
	return opts
}
