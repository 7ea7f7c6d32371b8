package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.RegistrationCompleted("crypto", "success")
	m.RegistrationCompleted("crypto", "success")
	m.LoginAttempted("unpaid")
	m.PaymentProcessed("gateway", "verified")
	m.FollowUpFinished("referral_credit", "failure")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.registrations.WithLabelValues("crypto", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("unpaid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.payments.WithLabelValues("gateway", "verified")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.followUps.WithLabelValues("referral_credit", "failure")))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.LoginAttempted("success")

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, m.RegisterDBStats(db, "affiliate"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `affiliate_logins_total{result="success"} 1`)
	assert.Contains(t, body, "go_sql_open_connections")
	assert.Contains(t, body, "go_goroutines")
}
