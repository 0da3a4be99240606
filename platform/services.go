package platform

// Services bundles the capabilities the Xperience enrichers consume.
//
// Contacts, Channel and WebFarm are required by their enrichers; Pages is
// optional and may be left nil outside of page-routed requests.
type Services struct {
	Contacts ContactProvider
	Channel  WebsiteChannelContext
	Pages    WebPageDataContextRetriever
	WebFarm  WebFarmService
}
