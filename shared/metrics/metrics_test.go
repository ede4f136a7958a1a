package metrics_test

import (
	"errors"
	"testing"

	"chefbook/shared/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	assert.Equal(t, metrics.ResultSuccess, metrics.Result(nil))
	assert.Equal(t, metrics.ResultFailure, metrics.Result(errors.New("boom")))
}

func TestBookingTransitions(t *testing.T) {
	counter := metrics.BookingTransitions.WithLabelValues("accept", metrics.ResultSuccess)
	before := testutil.ToFloat64(counter)

	counter.Inc()

	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0.0001)
}

func TestWizardSessionsActive(t *testing.T) {
	metrics.WizardSessionsActive.Set(0)
	metrics.WizardSessionsActive.Inc()
	metrics.WizardSessionsActive.Inc()
	metrics.WizardSessionsActive.Dec()

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.WizardSessionsActive), 0.0001)
}
