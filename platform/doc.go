// Package platform defines the Xperience capabilities the enrichers read from.
//
// Each capability is a narrow, read-only view into state owned by the
// content-management platform: the current contact, the website channel the
// request is served under, the web page being rendered and the identity of
// the current web farm node. Implementations are supplied by the host
// application; lifetime and consistency are theirs to manage.
//
// Every interface has a Func adapter for ad-hoc implementations:
//
//	contacts := platform.ContactProviderFunc(func() (*platform.Contact, bool) {
//	    return &platform.Contact{ID: 42, Email: "ada@example.com"}, true
//	})
package platform
