// Package xperience registers Xperience enrichers on an mtlog logger.
//
// The enrichers attach platform context (current contact, website channel,
// web page and web farm node) to every log event as "Xperience.*"
// properties. Register them through an Enrichment and pass its options to
// mtlog.New:
//
//	services := &platform.Services{
//	    Contacts: contacts,
//	    Channel:  channel,
//	    Pages:    pages,
//	    WebFarm:  platform.StaticWebFarm{Name: "web-01", Enabled: true},
//	}
//
//	enrichment, err := xperience.WithXperienceEnrichers(xperience.NewEnrichment(), services)
//	if err == nil {
//	    enrichment, err = xperience.WithXperienceWebFarmEnricher(enrichment, services)
//	}
//	if err != nil {
//	    return err
//	}
//
//	logger := mtlog.New(append(enrichment.Options(), mtlog.WithConsole())...)
//
// The web farm enricher is opt-in and not part of WithXperienceEnrichers.
package xperience
