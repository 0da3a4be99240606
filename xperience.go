package xperience

import (
	"github.com/willibrandon/mtlog"

	"github.com/willibrandon/mtlog-xperience/enrichers"
	"github.com/willibrandon/mtlog-xperience/platform"
)

// WithXperienceEnrichers registers the contact, website channel and web page
// enrichers. The web farm enricher is registered separately.
func WithXperienceEnrichers(enrichment *Enrichment, services *platform.Services) (*Enrichment, error) {
	if err := validate(enrichment, services); err != nil {
		return enrichment, err
	}
	if err := requireContacts(services); err != nil {
		return enrichment, err
	}
	if err := requireChannel(services); err != nil {
		return enrichment, err
	}

	return enrichment.With(
		enrichers.NewContactEnricher(services.Contacts),
		enrichers.NewWebsiteChannelEnricher(services.Channel),
		enrichers.NewWebPageEnricher(services.Pages),
	), nil
}

// WithXperienceContactEnricher registers the contact enricher.
func WithXperienceContactEnricher(enrichment *Enrichment, services *platform.Services) (*Enrichment, error) {
	if err := validate(enrichment, services); err != nil {
		return enrichment, err
	}
	if err := requireContacts(services); err != nil {
		return enrichment, err
	}
	return enrichment.With(enrichers.NewContactEnricher(services.Contacts)), nil
}

// WithXperienceWebsiteChannelEnricher registers the website channel enricher.
func WithXperienceWebsiteChannelEnricher(enrichment *Enrichment, services *platform.Services) (*Enrichment, error) {
	if err := validate(enrichment, services); err != nil {
		return enrichment, err
	}
	if err := requireChannel(services); err != nil {
		return enrichment, err
	}
	return enrichment.With(enrichers.NewWebsiteChannelEnricher(services.Channel)), nil
}

// WithXperienceWebPageEnricher registers the web page enricher. A nil
// page retriever is allowed; the enricher then adds nothing.
func WithXperienceWebPageEnricher(enrichment *Enrichment, services *platform.Services) (*Enrichment, error) {
	if err := validate(enrichment, services); err != nil {
		return enrichment, err
	}
	return enrichment.With(enrichers.NewWebPageEnricher(services.Pages)), nil
}

// WithXperienceWebFarmEnricher registers the web farm server enricher.
func WithXperienceWebFarmEnricher(enrichment *Enrichment, services *platform.Services) (*Enrichment, error) {
	if err := validate(enrichment, services); err != nil {
		return enrichment, err
	}
	if err := requireWebFarm(services); err != nil {
		return enrichment, err
	}
	return enrichment.With(enrichers.NewWebFarmServerEnricher(services.WebFarm)), nil
}

// Options returns the bundled Xperience enrichers as mtlog options.
//
//	opts, err := xperience.Options(services)
//	logger := mtlog.New(append(opts, mtlog.WithConsole())...)
func Options(services *platform.Services) ([]mtlog.Option, error) {
	enrichment, err := WithXperienceEnrichers(NewEnrichment(), services)
	if err != nil {
		return nil, err
	}
	return enrichment.Options(), nil
}

func validate(enrichment *Enrichment, services *platform.Services) error {
	if enrichment == nil {
		return ErrNilEnrichment
	}
	if services == nil {
		return ErrNilServices
	}
	return nil
}

func requireContacts(services *platform.Services) error {
	if services.Contacts == nil {
		return &MissingCapabilityError{Enricher: "contact", Capability: "a contact provider"}
	}
	return nil
}

func requireChannel(services *platform.Services) error {
	if services.Channel == nil {
		return &MissingCapabilityError{Enricher: "website channel", Capability: "a website channel context"}
	}
	return nil
}

func requireWebFarm(services *platform.Services) error {
	if services.WebFarm == nil {
		return &MissingCapabilityError{Enricher: "web farm server", Capability: "a web farm service"}
	}
	return nil
}
