package platform

// WebsiteChannel describes the website channel a request is served under.
type WebsiteChannel struct {
	Name    string
	ID      int
	Preview bool
}

// WebsiteChannelContext exposes the current website channel.
type WebsiteChannelContext interface {
	WebsiteChannelName() string
	WebsiteChannelID() int
	IsPreview() bool
}

// WebsiteChannelProvider is implemented by contexts that can hand out the
// whole current channel at once. Enrichers prefer it over the individual
// accessors so every property of an event comes from the same channel.
type WebsiteChannelProvider interface {
	CurrentWebsiteChannel() WebsiteChannel
}

// WebsiteChannelFunc adapts a function returning the current channel to
// WebsiteChannelContext. Each accessor calls the function;
// CurrentWebsiteChannel calls it once for all fields.
type WebsiteChannelFunc func() WebsiteChannel

// CurrentWebsiteChannel calls f.
func (f WebsiteChannelFunc) CurrentWebsiteChannel() WebsiteChannel { return f() }

// WebsiteChannelName returns the name of the current channel.
func (f WebsiteChannelFunc) WebsiteChannelName() string { return f().Name }

// WebsiteChannelID returns the ID of the current channel.
func (f WebsiteChannelFunc) WebsiteChannelID() int { return f().ID }

// IsPreview reports whether the current request is a preview request.
func (f WebsiteChannelFunc) IsPreview() bool { return f().Preview }

// StaticWebsiteChannel is a WebsiteChannelContext with fixed values.
type StaticWebsiteChannel WebsiteChannel

func (s StaticWebsiteChannel) CurrentWebsiteChannel() WebsiteChannel { return WebsiteChannel(s) }
func (s StaticWebsiteChannel) WebsiteChannelName() string            { return s.Name }
func (s StaticWebsiteChannel) WebsiteChannelID() int                 { return s.ID }
func (s StaticWebsiteChannel) IsPreview() bool                       { return s.Preview }
