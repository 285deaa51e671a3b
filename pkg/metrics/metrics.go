// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values
const (
	ResultSuccess   = "success"
	ResultInvalid   = "invalid"
	ResultDuplicate = "duplicate"
	ResultError     = "error"
	ResultLimited   = "rate_limited"
)

var (
	// Waitlist metrics
	WaitlistSignups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fokus_waitlist_signups_total",
		Help: "Waitlist signup attempts by outcome",
	}, []string{"result"})

	// Chat metrics
	ChatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fokus_chat_requests_total",
		Help: "Chat requests by outcome",
	}, []string{"result"})

	ChatReplyFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fokus_chat_reply_fallbacks_total",
		Help: "Model replies that were not valid structured JSON and were returned as plain text",
	})

	DBPoolAcquired = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fokus_db_pool_acquired_conns",
		Help: "Database connections currently acquired from the pool",
	})
)
