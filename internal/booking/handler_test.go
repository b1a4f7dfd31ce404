package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bookmehq/bookme-server/internal/business"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticConfig struct {
	cfg *business.Config
}

func (s *staticConfig) Get(ctx context.Context) (*business.Config, error) {
	if s.cfg == nil {
		return business.DefaultConfig("60"), nil
	}
	return s.cfg, nil
}

func newTestHandler(cfg *business.Config) http.Handler {
	h := NewHandler(&staticConfig{cfg: cfg}, NewSubmitter(nil, nil, nil), nil, nil)
	r := chi.NewRouter()
	r.Get("/booking/slots", h.GetSlots)
	r.Post("/booking/submit", h.SubmitBooking)
	return r
}

func TestGetSlotsOpenDay(t *testing.T) {
	r := newTestHandler(nil)

	// 2026-01-05 is a Monday; the seed profile is open 09:00-18:00.
	req := httptest.NewRequest(http.MethodGet, "/booking/slots?date=2026-01-05", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Monday", resp.Day)
	assert.Len(t, resp.Slots, 18)
	assert.Equal(t, "09:00", resp.Slots[0])
	assert.Equal(t, "17:30", resp.Slots[17])
}

func TestGetSlotsClosedDayIsEmptyArray(t *testing.T) {
	r := newTestHandler(nil)

	// 2026-01-04 is a Sunday; the seed profile is closed.
	req := httptest.NewRequest(http.MethodGet, "/booking/slots?date=2026-01-04", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"date":"2026-01-04","day":"Sunday","slots":[]}`, w.Body.String())
}

func TestGetSlotsRejectsBadDate(t *testing.T) {
	r := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/booking/slots?date=tomorrow", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitBookingReturnsDeepLink(t *testing.T) {
	r := newTestHandler(nil)

	body := bytes.NewBufferString(`{
		"service_id": "1",
		"date": "2026-01-05",
		"time": "10:30",
		"customer_name": "  Aina  ",
		"notes": "first visit"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/booking/submit", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	parsed, err := url.Parse(resp.WhatsAppURL)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/60125976284", parsed.Path)

	// The link's text parameter decodes back to the composed message.
	assert.Equal(t, resp.Message, parsed.Query().Get("text"))
	assert.Contains(t, resp.Message, "👤 *Name*: Aina")
	assert.Contains(t, resp.Message, "📝 *Service*: Executive Haircut")
}

func TestSubmitBookingValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"blank name", `{"service_id":"1","date":"2026-01-05","time":"10:00","customer_name":"   "}`},
		{"missing name", `{"service_id":"1","date":"2026-01-05","time":"10:00"}`},
		{"bad date", `{"service_id":"1","date":"05/01/2026","time":"10:00","customer_name":"Aina"}`},
		{"bad time", `{"service_id":"1","date":"2026-01-05","time":"10am","customer_name":"Aina"}`},
		{"unknown service", `{"service_id":"nope","date":"2026-01-05","time":"10:00","customer_name":"Aina"}`},
		{"invalid json", `{`},
	}

	r := newTestHandler(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/booking/submit", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
