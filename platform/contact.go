package platform

// Contact is the tracked visitor identity for the current request.
type Contact struct {
	// ID is the contact's surrogate key. Zero or negative means unset.
	ID int

	// Email is the contact's e-mail address, if known.
	Email string
}

// ContactProvider resolves the contact associated with the current request.
type ContactProvider interface {
	// CurrentContact returns the current contact, or false when there is none.
	CurrentContact() (*Contact, bool)
}

// ContactProviderFunc adapts an ordinary function to ContactProvider.
type ContactProviderFunc func() (*Contact, bool)

// CurrentContact calls f.
func (f ContactProviderFunc) CurrentContact() (*Contact, bool) {
	return f()
}

// StaticContact always reports the same contact.
type StaticContact Contact

// CurrentContact returns a copy of the static contact.
func (s StaticContact) CurrentContact() (*Contact, bool) {
	c := Contact(s)
	return &c, true
}
