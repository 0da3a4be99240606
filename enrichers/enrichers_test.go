package enrichers_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/willibrandon/mtlog/core"
	"github.com/willibrandon/mtlog/selflog"

	"github.com/willibrandon/mtlog-xperience/enrichers"
	"github.com/willibrandon/mtlog-xperience/platform"
	"github.com/willibrandon/mtlog-xperience/testutil"
)

func contacts(c *platform.Contact) platform.ContactProvider {
	return platform.ContactProviderFunc(func() (*platform.Contact, bool) {
		return c, c != nil
	})
}

func TestContactEnricher(t *testing.T) {
	tests := []struct {
		name     string
		provider platform.ContactProvider
		expected map[string]any
	}{
		{
			name:     "id and email",
			provider: platform.StaticContact{ID: 7, Email: "ada@example.com"},
			expected: map[string]any{
				"Xperience.ContactId":    7,
				"Xperience.ContactEmail": "ada@example.com",
			},
		},
		{
			name:     "id without email",
			provider: contacts(&platform.Contact{ID: 42}),
			expected: map[string]any{"Xperience.ContactId": 42},
		},
		{
			name:     "email without id",
			provider: contacts(&platform.Contact{Email: "anon@example.com"}),
			expected: map[string]any{"Xperience.ContactEmail": "anon@example.com"},
		},
		{
			name:     "negative id",
			provider: contacts(&platform.Contact{ID: -3}),
			expected: map[string]any{},
		},
		{
			name:     "no current contact",
			provider: contacts(nil),
			expected: map[string]any{},
		},
		{
			name: "nil contact reported as present",
			provider: platform.ContactProviderFunc(func() (*platform.Contact, bool) {
				return nil, true
			}),
			expected: map[string]any{},
		},
		{
			name:     "no provider",
			provider: nil,
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := testutil.NewEvent()
			enrichers.NewContactEnricher(tt.provider).Enrich(event, &testutil.PropertyFactory{})
			testutil.AssertProperties(t, event, tt.expected)
		})
	}
}

func TestWebsiteChannelEnricher(t *testing.T) {
	tests := []struct {
		name     string
		channel  platform.WebsiteChannel
		expected map[string]any
	}{
		{
			name:    "all fields",
			channel: platform.WebsiteChannel{Name: "Main", ID: 3, Preview: false},
			expected: map[string]any{
				"Xperience.WebsiteChannelName": "Main",
				"Xperience.WebsiteChannelID":   3,
				"Xperience.IsPreview":          false,
			},
		},
		{
			name:    "unset id in preview",
			channel: platform.WebsiteChannel{Name: "Main", ID: 0, Preview: true},
			expected: map[string]any{
				"Xperience.WebsiteChannelName": "Main",
				"Xperience.IsPreview":          true,
			},
		},
		{
			name:     "empty channel still reports preview flag",
			channel:  platform.WebsiteChannel{},
			expected: map[string]any{"Xperience.IsPreview": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := testutil.NewEvent()
			enrichers.NewWebsiteChannelEnricher(platform.StaticWebsiteChannel(tt.channel)).Enrich(event, &testutil.PropertyFactory{})
			testutil.AssertProperties(t, event, tt.expected)
		})
	}
}

func TestWebsiteChannelEnricher_Func(t *testing.T) {
	channel := platform.WebsiteChannelFunc(func() platform.WebsiteChannel {
		return platform.WebsiteChannel{Name: "Intranet", ID: 9, Preview: true}
	})

	event := testutil.NewEvent()
	enrichers.NewWebsiteChannelEnricher(channel).Enrich(event, &testutil.PropertyFactory{})

	testutil.AssertProperties(t, event, map[string]any{
		"Xperience.WebsiteChannelName": "Intranet",
		"Xperience.WebsiteChannelID":   9,
		"Xperience.IsPreview":          true,
	})
}

func TestWebsiteChannelEnricher_ReadsChannelOncePerEvent(t *testing.T) {
	rotation := []platform.WebsiteChannel{
		{Name: "A", ID: 1, Preview: false},
		{Name: "B", ID: 2, Preview: true},
		{Name: "C", ID: 3, Preview: true},
	}
	calls := 0
	channel := platform.WebsiteChannelFunc(func() platform.WebsiteChannel {
		c := rotation[calls%len(rotation)]
		calls++
		return c
	})

	event := testutil.NewEvent()
	enrichers.NewWebsiteChannelEnricher(channel).Enrich(event, &testutil.PropertyFactory{})

	if calls != 1 {
		t.Errorf("Expected channel to be read once, got %d calls", calls)
	}
	testutil.AssertProperties(t, event, map[string]any{
		"Xperience.WebsiteChannelName": "A",
		"Xperience.WebsiteChannelID":   1,
		"Xperience.IsPreview":          false,
	})
}

// accessorChannel implements only the per-field accessors.
type accessorChannel struct{}

func (accessorChannel) WebsiteChannelName() string { return "Accessors" }
func (accessorChannel) WebsiteChannelID() int      { return 4 }
func (accessorChannel) IsPreview() bool            { return true }

func TestWebsiteChannelEnricher_AccessorsOnly(t *testing.T) {
	event := testutil.NewEvent()
	enrichers.NewWebsiteChannelEnricher(accessorChannel{}).Enrich(event, &testutil.PropertyFactory{})

	testutil.AssertProperties(t, event, map[string]any{
		"Xperience.WebsiteChannelName": "Accessors",
		"Xperience.WebsiteChannelID":   4,
		"Xperience.IsPreview":          true,
	})
}

func TestWebsiteChannelEnricher_NilContext(t *testing.T) {
	event := testutil.NewEvent()
	enrichers.NewWebsiteChannelEnricher(nil).Enrich(event, &testutil.PropertyFactory{})
	testutil.AssertProperties(t, event, map[string]any{})
}

func TestWebPageEnricher(t *testing.T) {
	pages := func(p *platform.WebPage) platform.WebPageDataContextRetriever {
		return platform.WebPageRetrieverFunc(func() (*platform.WebPage, bool) {
			return p, p != nil
		})
	}

	tests := []struct {
		name      string
		retriever platform.WebPageDataContextRetriever
		expected  map[string]any
	}{
		{
			name:      "all fields",
			retriever: pages(&platform.WebPage{ItemID: 12, ContentTypeName: "DancingGoat.ArticlePage", LanguageName: "en"}),
			expected: map[string]any{
				"Xperience.WebPageItemID":   12,
				"Xperience.ContentTypeName": "DancingGoat.ArticlePage",
				"Xperience.LanguageName":    "en",
			},
		},
		{
			name:      "language only",
			retriever: pages(&platform.WebPage{LanguageName: "es"}),
			expected:  map[string]any{"Xperience.LanguageName": "es"},
		},
		{
			name:      "no page context",
			retriever: pages(nil),
			expected:  map[string]any{},
		},
		{
			name:      "retriever absent",
			retriever: nil,
			expected:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := testutil.NewEvent()
			enrichers.NewWebPageEnricher(tt.retriever).Enrich(event, &testutil.PropertyFactory{})
			testutil.AssertProperties(t, event, tt.expected)
		})
	}
}

func TestWebFarmServerEnricher(t *testing.T) {
	tests := []struct {
		name     string
		webFarm  platform.WebFarmService
		expected map[string]any
	}{
		{
			name:    "enabled node",
			webFarm: platform.StaticWebFarm{Name: "web-01", Enabled: true},
			expected: map[string]any{
				"Xperience.WebFarmServerName": "web-01",
				"Xperience.WebFarmEnabled":    true,
			},
		},
		{
			name:     "unnamed node",
			webFarm:  platform.StaticWebFarm{},
			expected: map[string]any{"Xperience.WebFarmEnabled": false},
		},
		{
			name:     "no service",
			webFarm:  nil,
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := testutil.NewEvent()
			enrichers.NewWebFarmServerEnricher(tt.webFarm).Enrich(event, &testutil.PropertyFactory{})
			testutil.AssertProperties(t, event, tt.expected)
		})
	}
}

func TestEnrichersAreIdempotent(t *testing.T) {
	event := testutil.NewEvent()
	factory := &testutil.PropertyFactory{}

	first := enrichers.NewContactEnricher(platform.StaticContact{ID: 1, Email: "first@example.com"})
	second := enrichers.NewContactEnricher(platform.StaticContact{ID: 2, Email: "second@example.com"})

	first.Enrich(event, factory)
	first.Enrich(event, factory)
	second.Enrich(event, factory)

	testutil.AssertProperties(t, event, map[string]any{
		"Xperience.ContactId":    1,
		"Xperience.ContactEmail": "first@example.com",
	})
}

func TestEnrichersKeepExistingProperties(t *testing.T) {
	event := testutil.NewEvent()
	event.Properties["Xperience.IsPreview"] = "set by caller"

	channel := platform.StaticWebsiteChannel{Name: "Main", ID: 1, Preview: true}
	enrichers.NewWebsiteChannelEnricher(channel).Enrich(event, &testutil.PropertyFactory{})

	if event.Properties["Xperience.IsPreview"] != "set by caller" {
		t.Errorf("Expected caller value to survive, got %v", event.Properties["Xperience.IsPreview"])
	}
}

func TestEnrichersConcurrent(t *testing.T) {
	all := []core.LogEventEnricher{
		enrichers.NewContactEnricher(platform.StaticContact{ID: 42, Email: "ada@example.com"}),
		enrichers.NewWebsiteChannelEnricher(platform.StaticWebsiteChannel{Name: "Main", ID: 1}),
		enrichers.NewWebPageEnricher(platform.WebPageRetrieverFunc(func() (*platform.WebPage, bool) {
			return &platform.WebPage{ItemID: 5, ContentTypeName: "Article", LanguageName: "en"}, true
		})),
		enrichers.NewWebFarmServerEnricher(platform.StaticWebFarm{Name: "web-01", Enabled: true}),
	}

	const goroutines = 50
	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			event := testutil.NewEvent()
			factory := &testutil.PropertyFactory{}
			for _, e := range all {
				e.Enrich(event, factory)
			}
			if len(event.Properties) != 10 {
				errs <- fmt.Errorf("expected 10 properties, got %d", len(event.Properties))
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

// captureSelflog collects selflog output until the test ends.
func captureSelflog(t *testing.T) func() []string {
	t.Helper()

	var mu sync.Mutex
	var messages []string
	selflog.EnableFunc(func(msg string) {
		mu.Lock()
		messages = append(messages, msg)
		mu.Unlock()
	})
	t.Cleanup(selflog.Disable)

	return func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), messages...)
	}
}

func TestEnrichersReportMissingCapability(t *testing.T) {
	tests := []struct {
		component string
		enricher  core.LogEventEnricher
	}{
		{"[xperience-contact]", enrichers.NewContactEnricher(nil)},
		{"[xperience-channel]", enrichers.NewWebsiteChannelEnricher(nil)},
		{"[xperience-page]", enrichers.NewWebPageEnricher(nil)},
		{"[xperience-webfarm]", enrichers.NewWebFarmServerEnricher(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.component, func(t *testing.T) {
			messages := captureSelflog(t)

			tt.enricher.Enrich(testutil.NewEvent(), &testutil.PropertyFactory{})

			got := messages()
			if len(got) != 1 || !strings.Contains(got[0], tt.component) {
				t.Errorf("Expected one %s message, got %v", tt.component, got)
			}
		})
	}
}

func TestEnrichersQuietWhenRequestHasNoContext(t *testing.T) {
	messages := captureSelflog(t)

	noContact := enrichers.NewContactEnricher(contacts(nil))
	noPage := enrichers.NewWebPageEnricher(platform.WebPageRetrieverFunc(func() (*platform.WebPage, bool) {
		return nil, false
	}))

	for i := 0; i < 3; i++ {
		noContact.Enrich(testutil.NewEvent(), &testutil.PropertyFactory{})
		noPage.Enrich(testutil.NewEvent(), &testutil.PropertyFactory{})
	}

	if got := messages(); len(got) != 0 {
		t.Errorf("Expected no selflog output, got %v", got)
	}
}
