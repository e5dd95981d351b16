package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/classes", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/classes", "200"))
	assert.Equal(t, float64(1), count)

	metric := HTTPRequestDuration.WithLabelValues("GET", "/classes").(prometheus.Histogram)
	metric.Observe(0.5)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/appointments", "201", 0.1)
	RecordHTTPRequest("POST", "/appointments", "201", 0.2)
	RecordHTTPRequest("POST", "/appointments", "409", 0.05)

	assert.Equal(t, float64(2), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/appointments", "201")))
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/appointments", "409")))
}

func TestRecordRegistration(t *testing.T) {
	RegistrationsTotal.Reset()

	RecordRegistration("register", "ok")
	RecordRegistration("register", "capacity_exceeded")
	RecordRegistration("register", "ok")

	assert.Equal(t, float64(2), testutil.ToFloat64(RegistrationsTotal.WithLabelValues("register", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(RegistrationsTotal.WithLabelValues("register", "capacity_exceeded")))
}

func TestRecordAppointment(t *testing.T) {
	AppointmentsTotal.Reset()

	RecordAppointment("book", "ok")
	RecordAppointment("book", "double_booking")
	RecordAppointment("cancel", "not_found")

	assert.Equal(t, float64(1), testutil.ToFloat64(AppointmentsTotal.WithLabelValues("book", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(AppointmentsTotal.WithLabelValues("book", "double_booking")))
	assert.Equal(t, float64(1), testutil.ToFloat64(AppointmentsTotal.WithLabelValues("cancel", "not_found")))
}

func TestSlotOccupancy(t *testing.T) {
	SlotOccupancy.Reset()

	SetSlotOccupancy("c1", "monday 09:00-10:00", 3)
	SetSlotOccupancy("c2", "monday 09:00-10:00", 1)
	assert.Equal(t, float64(3), testutil.ToFloat64(SlotOccupancy.WithLabelValues("c1", "monday 09:00-10:00")))

	ForgetClass("c1")
	assert.Equal(t, 1, testutil.CollectAndCount(SlotOccupancy))
}

func TestRecordStoreWriteAndRetry(t *testing.T) {
	StoreWritesTotal.Reset()
	StoreRetriesTotal.Reset()

	RecordStoreWrite("classes", "ok")
	RecordStoreWrite("classes", "error")
	RecordStoreRetry("appointments", "save")

	assert.Equal(t, float64(1), testutil.ToFloat64(StoreWritesTotal.WithLabelValues("classes", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(StoreWritesTotal.WithLabelValues("classes", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(StoreRetriesTotal.WithLabelValues("appointments", "save")))
}

func TestRecordEmail(t *testing.T) {
	EmailsQueuedTotal.Reset()

	RecordEmail("appointment_confirmation", "queued")
	RecordEmail("appointment_confirmation", "failed")

	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsQueuedTotal.WithLabelValues("appointment_confirmation", "queued")))
	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsQueuedTotal.WithLabelValues("appointment_confirmation", "failed")))
}

func TestEmailQueueLength(t *testing.T) {
	EmailQueueLength.Set(10)
	assert.Equal(t, float64(10), testutil.ToFloat64(EmailQueueLength))

	EmailQueueLength.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(EmailQueueLength))
}
