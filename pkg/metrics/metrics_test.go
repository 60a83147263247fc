package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsIsShared(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()
	require.Same(t, a, b)
}

func TestObserveHTTP(t *testing.T) {
	m := NewMetrics()
	before := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/lessons", "200"))

	m.ObserveHTTP("GET", "/api/v1/lessons", 200, 15*time.Millisecond)

	after := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/lessons", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordLessonView(t *testing.T) {
	m := NewMetrics()
	before := testutil.ToFloat64(m.LessonViews.WithLabelValues("true"))
	m.RecordLessonView(true)
	assert.Equal(t, before+1, testutil.ToFloat64(m.LessonViews.WithLabelValues("true")))
}

func TestRecordAuth(t *testing.T) {
	m := NewMetrics()
	before := testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", "error"))
	m.RecordAuth("login", errors.New("bad password"))
	assert.Equal(t, before+1, testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", "error")))
}
