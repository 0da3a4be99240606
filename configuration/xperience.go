// Package configuration makes the Xperience enrichers available to mtlog's
// JSON configuration under their facade names:
//
//	{
//	  "Mtlog": {
//	    "Enrich": ["WithXperienceEnrichers"],
//	    "EnrichWith": [
//	      { "Name": "WithXperienceWebFarmEnricher", "Args": { "fromEnvironment": true } }
//	    ]
//	  }
//	}
package configuration

import (
	"errors"
	"strings"

	mtlogconfig "github.com/willibrandon/mtlog/configuration"
	"github.com/willibrandon/mtlog/core"

	xperience "github.com/willibrandon/mtlog-xperience"
	"github.com/willibrandon/mtlog-xperience/internal/diag"
	"github.com/willibrandon/mtlog-xperience/platform"
	"github.com/willibrandon/mtlog-xperience/webfarm"
)

// Enricher names registered by Register.
const (
	XperienceEnrichers     = "WithXperienceEnrichers"
	ContactEnricher        = "WithXperienceContactEnricher"
	WebsiteChannelEnricher = "WithXperienceWebsiteChannelEnricher"
	WebPageEnricher        = "WithXperienceWebPageEnricher"
	WebFarmEnricher        = "WithXperienceWebFarmEnricher"
)

// ErrNilBuilder is returned by Register when the builder is nil.
var ErrNilBuilder = errors.New("xperience: logger builder is nil")

var configLog = diag.New("xperience-config")

type registration func(*xperience.Enrichment, *platform.Services) (*xperience.Enrichment, error)

// Register adds the Xperience enricher factories to lb. Capabilities are
// checked when a configuration naming the enricher is built, so a missing
// required capability fails LoggerBuilder.Build.
func Register(lb *mtlogconfig.LoggerBuilder, services *platform.Services) error {
	if lb == nil {
		return ErrNilBuilder
	}
	if services == nil {
		return xperience.ErrNilServices
	}

	factories := []struct {
		name    string
		factory mtlogconfig.EnricherFactory
	}{
		{XperienceEnrichers, factory(services, xperience.WithXperienceEnrichers)},
		{ContactEnricher, factory(services, xperience.WithXperienceContactEnricher)},
		{WebsiteChannelEnricher, factory(services, xperience.WithXperienceWebsiteChannelEnricher)},
		{WebPageEnricher, factory(services, xperience.WithXperienceWebPageEnricher)},
		{WebFarmEnricher, webFarmFactory(services)},
	}

	names := make([]string, 0, len(factories))
	for _, f := range factories {
		lb.RegisterEnricher(f.name, f.factory)
		names = append(names, f.name)
	}

	configLog.Info("registered enrichers: %s", strings.Join(names, ", "))
	return nil
}

// NewLoggerBuilder returns mtlog's default builder with the Xperience
// enrichers registered.
func NewLoggerBuilder(services *platform.Services) (*mtlogconfig.LoggerBuilder, error) {
	lb := mtlogconfig.NewLoggerBuilder()
	if err := Register(lb, services); err != nil {
		return nil, err
	}
	return lb, nil
}

// CreateLoggerFromJSON builds a logger from JSON configuration that may
// reference the Xperience enrichers.
func CreateLoggerFromJSON(jsonData []byte, services *platform.Services) (core.Logger, error) {
	config, err := mtlogconfig.LoadFromJSON(jsonData)
	if err != nil {
		return nil, err
	}

	lb, err := NewLoggerBuilder(services)
	if err != nil {
		return nil, err
	}
	return lb.Build(config)
}

func factory(services *platform.Services, register registration) mtlogconfig.EnricherFactory {
	return func(args map[string]interface{}) (core.LogEventEnricher, error) {
		enrichment, err := register(xperience.NewEnrichment(), services)
		if err != nil {
			return nil, err
		}
		return enrichment, nil
	}
}

// webFarmFactory honours optional args:
//
//	serverName, enabled   fixed identity, overriding the configured service
//	fromEnvironment       load identity with webfarm.Load when true
//	envFile               .env file read before the environment (default ".env")
func webFarmFactory(services *platform.Services) mtlogconfig.EnricherFactory {
	return func(args map[string]interface{}) (core.LogEventEnricher, error) {
		scoped := *services

		switch {
		case mtlogconfig.GetString(args, "serverName", "") != "":
			scoped.WebFarm = platform.StaticWebFarm{
				Name:    mtlogconfig.GetString(args, "serverName", ""),
				Enabled: mtlogconfig.GetBool(args, "enabled", false),
			}
		case mtlogconfig.GetBool(args, "fromEnvironment", false):
			svc, err := webfarm.FromEnv(mtlogconfig.GetString(args, "envFile", ".env"))
			if err != nil {
				configLog.Error("failed to load web farm identity: %v", err)
				return nil, err
			}
			scoped.WebFarm = svc
		}

		enrichment, err := xperience.WithXperienceWebFarmEnricher(xperience.NewEnrichment(), &scoped)
		if err != nil {
			return nil, err
		}
		return enrichment, nil
	}
}
