package enrichers

import (
	"github.com/willibrandon/mtlog/core"

	"github.com/willibrandon/mtlog-xperience/internal/property"
	"github.com/willibrandon/mtlog-xperience/platform"
)

// WebFarmServerEnricher adds the identity of the current web farm node.
type WebFarmServerEnricher struct {
	webFarm platform.WebFarmService
}

// NewWebFarmServerEnricher creates an enricher reading from webFarm.
func NewWebFarmServerEnricher(webFarm platform.WebFarmService) *WebFarmServerEnricher {
	return &WebFarmServerEnricher{webFarm: webFarm}
}

// Enrich adds Xperience.WebFarmServerName and Xperience.WebFarmEnabled.
func (e *WebFarmServerEnricher) Enrich(event *core.LogEvent, propertyFactory core.LogEventPropertyFactory) {
	if e.webFarm == nil {
		webFarmLog.Debug("no web farm service")
		return
	}

	property.String(event, propertyFactory, "WebFarmServerName", e.webFarm.ServerName())
	property.Bool(event, propertyFactory, "WebFarmEnabled", e.webFarm.WebFarmEnabled())
}
