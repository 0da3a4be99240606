package platform

// WebPage is the data context of the web page being rendered.
type WebPage struct {
	// ItemID is the web page item's surrogate key. Zero or negative means unset.
	ItemID int

	// ContentTypeName is the code name of the page's content type.
	ContentTypeName string

	// LanguageName is the code name of the language the page is served in.
	LanguageName string
}

// WebPageDataContextRetriever retrieves the data context of the current page.
type WebPageDataContextRetriever interface {
	// Retrieve returns the current page, or false outside of page routing.
	Retrieve() (*WebPage, bool)
}

// WebPageRetrieverFunc adapts an ordinary function to WebPageDataContextRetriever.
type WebPageRetrieverFunc func() (*WebPage, bool)

// Retrieve calls f.
func (f WebPageRetrieverFunc) Retrieve() (*WebPage, bool) {
	return f()
}
