package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_BusinessCounters(t *testing.T) {
	m := NewWithRegisterer("stay-booking", prometheus.NewRegistry())

	m.BookingCreated()
	m.BookingCreated()
	m.BookingCancelled()
	m.BookingDeleted()
	m.ValidationFailed("below_minimum_stay")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsCancelledTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsDeletedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailedTotal.WithLabelValues("below_minimum_stay")))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.BookingCreated()
		m.BookingCancelled()
		m.BookingDeleted()
		m.ValidationFailed("missing_fields")
	})
}
