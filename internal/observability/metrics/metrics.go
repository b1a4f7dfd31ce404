package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for the booking flow.
type BookingMetrics struct {
	slotQueriesTotal     prometheus.Counter
	submissionsTotal     *prometheus.CounterVec
	webhookDispatchTotal *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		slotQueriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bookme",
			Subsystem: "booking",
			Name:      "slot_queries_total",
			Help:      "Total slot availability queries",
		}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookme",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Total booking submissions by outcome",
		}, []string{"status"}),
		webhookDispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookme",
			Subsystem: "booking",
			Name:      "webhook_dispatch_total",
			Help:      "Total booking log webhook dispatches by outcome",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.slotQueriesTotal, m.submissionsTotal, m.webhookDispatchTotal)
	return m
}

func (m *BookingMetrics) ObserveSlotQuery() {
	if m == nil {
		return
	}
	m.slotQueriesTotal.Inc()
}

func (m *BookingMetrics) ObserveSubmission(status string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) ObserveWebhookDispatch(ok bool) {
	if m == nil {
		return
	}
	status := "error"
	if ok {
		status = "ok"
	}
	m.webhookDispatchTotal.WithLabelValues(status).Inc()
}
