package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymslot_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymslot_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymslot_registrations_total",
			Help: "Class registration attempts by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	AppointmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymslot_appointments_total",
			Help: "Appointment operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	SlotOccupancy = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gymslot_slot_occupancy",
			Help: "Current number of occupants per class slot",
		},
		[]string{"class_id", "slot"},
	)

	StoreWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymslot_store_writes_total",
			Help: "Entity store collection writes",
		},
		[]string{"kind", "status"},
	)

	StoreRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymslot_store_retries_total",
			Help: "Entity store operations retried after a transient failure",
		},
		[]string{"kind", "operation"},
	)

	EmailsQueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymslot_emails_queued_total",
			Help: "Total number of notification emails queued",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymslot_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordRegistration(operation, outcome string) {
	RegistrationsTotal.WithLabelValues(operation, outcome).Inc()
}

func RecordAppointment(operation, outcome string) {
	AppointmentsTotal.WithLabelValues(operation, outcome).Inc()
}

func SetSlotOccupancy(classID, slot string, occupants int) {
	SlotOccupancy.WithLabelValues(classID, slot).Set(float64(occupants))
}

func ForgetClass(classID string) {
	SlotOccupancy.DeletePartialMatch(prometheus.Labels{"class_id": classID})
}

func RecordStoreWrite(kind, status string) {
	StoreWritesTotal.WithLabelValues(kind, status).Inc()
}

func RecordStoreRetry(kind, operation string) {
	StoreRetriesTotal.WithLabelValues(kind, operation).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsQueuedTotal.WithLabelValues(emailType, status).Inc()
}
