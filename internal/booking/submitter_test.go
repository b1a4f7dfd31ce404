package booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bookmehq/bookme-server/internal/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		countryCode string
		want        string
	}{
		{"leading zero replaced", "0125976284", "60", "60125976284"},
		{"already international unchanged", "60125976284", "60", "60125976284"},
		{"punctuation stripped before zero check", "+6012-597 6284", "60", "60125976284"},
		{"spaces and dashes with leading zero", "012-597 6284", "60", "60125976284"},
		{"configured country code", "07911123456", "44", "447911123456"},
		{"empty country code falls back", "0125976284", "", "60125976284"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw, tt.countryCode))
		})
	}
}

func TestComposeMessage(t *testing.T) {
	cfg := business.DefaultConfig("60")
	draft := Draft{
		Service:      business.Service{ID: "1", Name: "Executive Haircut", Price: "45.00"},
		Date:         time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), // a Monday
		Time:         "10:30",
		CustomerName: "Aina",
		Notes:        "Window seat please",
	}

	msg := ComposeMessage(draft, cfg)

	assert.Contains(t, msg, "Hello Luxe Hair & Spa! I'd like to book an appointment.")
	assert.Contains(t, msg, "📝 *Service*: Executive Haircut")
	assert.Contains(t, msg, "📅 *Date*: Monday, Jan 5th")
	assert.Contains(t, msg, "⏰ *Time*: 10:30")
	assert.Contains(t, msg, "👤 *Name*: Aina")
	assert.Contains(t, msg, "💡 *Note*: Window seat please")
	assert.True(t, strings.HasSuffix(msg, "Please confirm if this works for you!"))
}

func TestComposeMessageOmitsEmptyNote(t *testing.T) {
	cfg := business.DefaultConfig("60")
	draft := Draft{
		Service:      business.Service{Name: "Classic Shave"},
		Date:         time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Time:         "09:00",
		CustomerName: "Ben",
	}

	msg := ComposeMessage(draft, cfg)

	assert.NotContains(t, msg, "*Note*")
}

func TestFormatLongDateOrdinals(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "Thursday, Jan 1st"},
		{2, "Friday, Jan 2nd"},
		{3, "Saturday, Jan 3rd"},
		{4, "Sunday, Jan 4th"},
		{11, "Sunday, Jan 11th"},
		{12, "Monday, Jan 12th"},
		{13, "Tuesday, Jan 13th"},
		{21, "Wednesday, Jan 21st"},
		{22, "Thursday, Jan 22nd"},
		{23, "Friday, Jan 23rd"},
		{31, "Saturday, Jan 31st"},
	}
	for _, tt := range tests {
		date := time.Date(2026, 1, tt.day, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.want, formatLongDate(date))
	}
}

func TestDeepLinkRoundTripsMessage(t *testing.T) {
	message := "Hello! Booking for Aina & co.\n\n📅 *Date*: Monday, Jan 5th\nSee you?"
	link := DeepLink("60125976284", message)

	require.True(t, strings.HasPrefix(link, "https://wa.me/60125976284?"))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, message, parsed.Query().Get("text"))
}

func TestSubmitDispatchesWebhookAndReturnsDeepLink(t *testing.T) {
	received := make(chan LogPayload, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload LogPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode webhook payload: %v", err)
		}
		received <- payload
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	webhook := NewWebhookClient(srv.URL, 2*time.Second, nil)
	submitter := NewSubmitter(webhook, nil, nil)
	submitter.now = func() time.Time {
		return time.Date(2026, 1, 4, 15, 4, 5, 0, time.UTC)
	}

	cfg := business.DefaultConfig("60")
	cfg.WhatsAppNumber = "0125976284"
	draft := Draft{
		Service:      business.Service{ID: "1", Name: "Executive Haircut", Price: "45.00"},
		Date:         time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Time:         "10:30",
		CustomerName: "Aina",
		Notes:        "first visit",
	}

	link := submitter.Submit(draft, cfg)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/60125976284?"), "got %s", link)

	select {
	case payload := <-received:
		assert.Equal(t, "Luxe Hair & Spa", payload.BusinessName)
		assert.Equal(t, "Aina", payload.CustomerName)
		assert.Equal(t, "Executive Haircut", payload.Service)
		assert.Equal(t, "45.00", payload.Price)
		assert.Equal(t, "2026-01-05", payload.Date)
		assert.Equal(t, "10:30", payload.Time)
		assert.Equal(t, "2026-01-04T15:04:05Z", payload.Timestamp)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never called")
	}
}

func TestSubmitWebhookFailureIsSwallowed(t *testing.T) {
	called := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called <- struct{}{}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	webhook := NewWebhookClient(srv.URL, 2*time.Second, nil)
	submitter := NewSubmitter(webhook, nil, nil)

	cfg := business.DefaultConfig("60")
	draft := Draft{
		Service:      business.Service{Name: "Classic Shave"},
		Date:         time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Time:         "09:00",
		CustomerName: "Ben",
	}

	// Must not panic or block on the failing endpoint.
	link := submitter.Submit(draft, cfg)
	assert.NotEmpty(t, link)

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never called")
	}
}

func TestSubmitWithoutWebhookConfigured(t *testing.T) {
	submitter := NewSubmitter(NewWebhookClient("", 0, nil), nil, nil)

	cfg := business.DefaultConfig("60")
	draft := Draft{
		Service:      business.Service{Name: "Classic Shave"},
		Date:         time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Time:         "09:00",
		CustomerName: "Ben",
	}

	link := submitter.Submit(draft, cfg)
	assert.Contains(t, link, "wa.me/60125976284")
}
