package enrichers

import (
	"github.com/willibrandon/mtlog/core"

	"github.com/willibrandon/mtlog-xperience/internal/property"
	"github.com/willibrandon/mtlog-xperience/platform"
)

// WebsiteChannelEnricher adds the website channel the request is served under.
type WebsiteChannelEnricher struct {
	channel platform.WebsiteChannelContext
}

// NewWebsiteChannelEnricher creates an enricher reading from channel.
func NewWebsiteChannelEnricher(channel platform.WebsiteChannelContext) *WebsiteChannelEnricher {
	return &WebsiteChannelEnricher{channel: channel}
}

// Enrich adds Xperience.WebsiteChannelName, Xperience.WebsiteChannelID and
// Xperience.IsPreview.
func (e *WebsiteChannelEnricher) Enrich(event *core.LogEvent, propertyFactory core.LogEventPropertyFactory) {
	if e.channel == nil {
		channelLog.Debug("no website channel context")
		return
	}

	channel := e.current()
	property.String(event, propertyFactory, "WebsiteChannelName", channel.Name)
	property.Int(event, propertyFactory, "WebsiteChannelID", channel.ID)
	property.Bool(event, propertyFactory, "IsPreview", channel.Preview)
}

// current reads the channel once per event when the context supports it.
func (e *WebsiteChannelEnricher) current() platform.WebsiteChannel {
	if provider, ok := e.channel.(platform.WebsiteChannelProvider); ok {
		return provider.CurrentWebsiteChannel()
	}
	return platform.WebsiteChannel{
		Name:    e.channel.WebsiteChannelName(),
		ID:      e.channel.WebsiteChannelID(),
		Preview: e.channel.IsPreview(),
	}
}
