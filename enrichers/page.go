package enrichers

import (
	"github.com/willibrandon/mtlog/core"

	"github.com/willibrandon/mtlog-xperience/internal/property"
	"github.com/willibrandon/mtlog-xperience/platform"
)

// WebPageEnricher adds the web page being rendered. The retriever is
// optional: requests outside of page routing produce no properties.
type WebPageEnricher struct {
	pages platform.WebPageDataContextRetriever
}

// NewWebPageEnricher creates an enricher reading from pages, which may be nil.
func NewWebPageEnricher(pages platform.WebPageDataContextRetriever) *WebPageEnricher {
	return &WebPageEnricher{pages: pages}
}

// Enrich adds Xperience.WebPageItemID, Xperience.ContentTypeName and
// Xperience.LanguageName.
func (e *WebPageEnricher) Enrich(event *core.LogEvent, propertyFactory core.LogEventPropertyFactory) {
	if e.pages == nil {
		pageLog.Debug("no web page data context retriever")
		return
	}

	page, ok := e.pages.Retrieve()
	if !ok || page == nil {
		return
	}

	property.Int(event, propertyFactory, "WebPageItemID", page.ItemID)
	property.String(event, propertyFactory, "ContentTypeName", page.ContentTypeName)
	property.String(event, propertyFactory, "LanguageName", page.LanguageName)
}
