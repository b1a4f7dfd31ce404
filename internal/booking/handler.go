package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/bookmehq/bookme-server/internal/business"
	"github.com/bookmehq/bookme-server/internal/observability/metrics"
	"github.com/bookmehq/bookme-server/internal/schedule"
	"github.com/bookmehq/bookme-server/pkg/logging"
)

// ConfigSource provides the current business profile.
type ConfigSource interface {
	Get(ctx context.Context) (*business.Config, error)
}

var timeOfDay = regexp.MustCompile(`^\d{2}:\d{2}$`)

// Handler serves the customer-facing booking endpoints.
type Handler struct {
	store     ConfigSource
	submitter *Submitter
	logger    *logging.Logger
	metrics   *metrics.BookingMetrics
}

// NewHandler creates a booking handler.
func NewHandler(store ConfigSource, submitter *Submitter, logger *logging.Logger, m *metrics.BookingMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		store:     store,
		submitter: submitter,
		logger:    logger,
		metrics:   m,
	}
}

// SlotsResponse lists the offerable times for one date.
type SlotsResponse struct {
	Date  string   `json:"date"`
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

// GetSlots returns the bookable slots for a date.
// GET /booking/slots?date=YYYY-MM-DD
func (h *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		http.Error(w, `{"error": "date must be YYYY-MM-DD"}`, http.StatusBadRequest)
		return
	}

	cfg, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to get business config", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	slots := schedule.Slots(date, cfg.Availability)
	if slots == nil {
		slots = []string{}
	}
	h.metrics.ObserveSlotQuery()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(SlotsResponse{
		Date:  date.Format("2006-01-02"),
		Day:   date.Weekday().String(),
		Slots: slots,
	}); err != nil {
		h.logger.Error("failed to encode slots", "error", err)
	}
}

// SubmitRequest is the booking draft a customer submits.
type SubmitRequest struct {
	ServiceID    string `json:"service_id"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"` // HH:MM
	CustomerName string `json:"customer_name"`
	Notes        string `json:"notes,omitempty"`
}

// SubmitResponse carries the deep link the client opens to complete the
// handoff.
type SubmitResponse struct {
	WhatsAppURL string `json:"whatsapp_url"`
	Message     string `json:"message"`
}

// SubmitBooking validates the draft, fires the booking log, and returns the
// WhatsApp deep link. The server records nothing; the handoff is the
// booking.
// POST /booking/submit
func (h *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.reject(w, "invalid JSON body")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		h.reject(w, "date must be YYYY-MM-DD")
		return
	}
	if !timeOfDay.MatchString(req.Time) {
		h.reject(w, "time must be HH:MM")
		return
	}
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		h.reject(w, "customer_name is required")
		return
	}

	cfg, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to get business config", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	svc, ok := cfg.FindService(req.ServiceID)
	if !ok {
		h.reject(w, "unknown service")
		return
	}

	draft := Draft{
		Service:      svc,
		Date:         date,
		Time:         req.Time,
		CustomerName: name,
		Notes:        strings.TrimSpace(req.Notes),
	}

	deepLink := h.submitter.Submit(draft, cfg)
	h.metrics.ObserveSubmission("accepted")
	h.logger.Info("booking submitted",
		"service", svc.Name,
		"date", draft.Date.Format("2006-01-02"),
		"time", draft.Time,
	)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(SubmitResponse{
		WhatsAppURL: deepLink,
		Message:     ComposeMessage(draft, cfg),
	}); err != nil {
		h.logger.Error("failed to encode submit response", "error", err)
	}
}

func (h *Handler) reject(w http.ResponseWriter, reason string) {
	h.metrics.ObserveSubmission("rejected")
	http.Error(w, `{"error": "`+reason+`"}`, http.StatusBadRequest)
}
