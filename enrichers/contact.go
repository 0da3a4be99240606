package enrichers

import (
	"github.com/willibrandon/mtlog/core"

	"github.com/willibrandon/mtlog-xperience/internal/property"
	"github.com/willibrandon/mtlog-xperience/platform"
)

// ContactEnricher adds the current contact's ID and e-mail.
type ContactEnricher struct {
	contacts platform.ContactProvider
}

// NewContactEnricher creates an enricher reading from contacts.
func NewContactEnricher(contacts platform.ContactProvider) *ContactEnricher {
	return &ContactEnricher{contacts: contacts}
}

// Enrich adds Xperience.ContactId and Xperience.ContactEmail.
func (e *ContactEnricher) Enrich(event *core.LogEvent, propertyFactory core.LogEventPropertyFactory) {
	if e.contacts == nil {
		contactLog.Debug("no contact provider")
		return
	}

	contact, ok := e.contacts.CurrentContact()
	if !ok || contact == nil {
		return
	}

	property.Int(event, propertyFactory, "ContactId", contact.ID)
	property.String(event, propertyFactory, "ContactEmail", contact.Email)
}
