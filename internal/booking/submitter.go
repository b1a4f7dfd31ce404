// Package booking turns a customer's completed selection into the two
// outbound side effects: a best-effort log call and a WhatsApp deep link.
package booking

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bookmehq/bookme-server/internal/business"
	"github.com/bookmehq/bookme-server/internal/observability/metrics"
	"github.com/bookmehq/bookme-server/pkg/logging"
)

// Draft is the transient booking a customer assembled. It is never
// persisted; validation happens before Submit is called.
type Draft struct {
	Service      business.Service
	Date         time.Time
	Time         string // "HH:MM"
	CustomerName string
	Notes        string
}

// LogPayload is the record dispatched to the external booking log endpoint.
// Field names follow the endpoint's contract.
type LogPayload struct {
	BusinessName string `json:"businessName"`
	CustomerName string `json:"customerName"`
	Service      string `json:"service"`
	Price        string `json:"price"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"`
	Notes        string `json:"notes"`
	Timestamp    string `json:"timestamp"` // RFC 3339, UTC
}

// Submitter performs the booking submission side effects. It holds no state
// between submissions.
type Submitter struct {
	webhook *WebhookClient
	logger  *logging.Logger
	metrics *metrics.BookingMetrics
	now     func() time.Time
}

// NewSubmitter creates a booking submitter. webhook may be nil when no log
// endpoint is configured.
func NewSubmitter(webhook *WebhookClient, logger *logging.Logger, m *metrics.BookingMetrics) *Submitter {
	if logger == nil {
		logger = logging.Default()
	}
	return &Submitter{
		webhook: webhook,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// Submit dispatches the booking log (fire-and-forget, failures swallowed)
// and returns the wa.me deep link the caller hands off to. The link opens a
// WhatsApp conversation with the business, pre-filled with the booking
// message.
func (s *Submitter) Submit(draft Draft, cfg *business.Config) string {
	payload := LogPayload{
		BusinessName: cfg.Name,
		CustomerName: draft.CustomerName,
		Service:      draft.Service.Name,
		Price:        draft.Service.Price,
		Date:         draft.Date.Format("2006-01-02"),
		Time:         draft.Time,
		Notes:        draft.Notes,
		Timestamp:    s.now().UTC().Format(time.RFC3339),
	}

	if s.webhook != nil {
		// Best-effort side channel; never blocks or fails the submission.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), s.webhook.timeout)
			defer cancel()
			if err := s.webhook.Send(ctx, payload); err != nil {
				s.logger.Error("booking log dispatch failed", "error", err)
				s.metrics.ObserveWebhookDispatch(false)
				return
			}
			s.metrics.ObserveWebhookDispatch(true)
		}()
	}

	number := NormalizePhone(cfg.WhatsAppNumber, cfg.CountryCode)
	message := ComposeMessage(draft, cfg)
	return DeepLink(number, message)
}

// NormalizePhone strips every non-digit character and replaces a leading "0"
// with the business's country code, producing the bare international number
// wa.me expects.
func NormalizePhone(raw, countryCode string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	number := digits.String()
	if strings.HasPrefix(number, "0") {
		if countryCode == "" {
			countryCode = "60"
		}
		number = countryCode + number[1:]
	}
	return number
}

// ComposeMessage builds the multi-line booking message shown in WhatsApp.
func ComposeMessage(draft Draft, cfg *business.Config) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hello %s! I'd like to book an appointment.\n\n", cfg.Name)
	fmt.Fprintf(&sb, "📝 *Service*: %s\n", draft.Service.Name)
	fmt.Fprintf(&sb, "📅 *Date*: %s\n", formatLongDate(draft.Date))
	fmt.Fprintf(&sb, "⏰ *Time*: %s\n", draft.Time)
	fmt.Fprintf(&sb, "👤 *Name*: %s\n", draft.CustomerName)
	if draft.Notes != "" {
		fmt.Fprintf(&sb, "\n💡 *Note*: %s\n", draft.Notes)
	}
	sb.WriteString("\nPlease confirm if this works for you!")
	return sb.String()
}

// DeepLink builds the wa.me URL carrying the URL-encoded message.
func DeepLink(number, message string) string {
	query := url.Values{"text": {message}}
	return fmt.Sprintf("https://wa.me/%s?%s", number, query.Encode())
}

// formatLongDate renders a date like "Monday, Jan 5th".
func formatLongDate(t time.Time) string {
	return fmt.Sprintf("%s, %s %d%s", t.Weekday(), t.Format("Jan"), t.Day(), ordinalSuffix(t.Day()))
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
