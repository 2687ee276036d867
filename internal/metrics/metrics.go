// Package metrics exposes Prometheus metrics for tokenize requests.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric labels
const (
	LabelAnalyzer = "analyzer"
	LabelStatus   = "status"
)

// TokenizeMetrics holds the counters and histograms recorded per tokenize request.
type TokenizeMetrics struct {
	requests *prometheus.CounterVec
	tokens   *prometheus.CounterVec
	runes    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewTokenizeMetrics creates the metrics and registers them with reg.
// A nil reg leaves them unregistered, which is useful in tests.
func NewTokenizeMetrics(reg prometheus.Registerer) *TokenizeMetrics {
	m := &TokenizeMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "filtertok_tokenize_requests_total",
			Help: "Total number of tokenize requests by analyzer and HTTP status.",
		}, []string{LabelAnalyzer, LabelStatus}),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "filtertok_tokens_emitted_total",
			Help: "Total number of tokens emitted by analyzer.",
		}, []string{LabelAnalyzer}),
		runes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "filtertok_runes_scanned_total",
			Help: "Total number of input characters scanned by analyzer.",
		}, []string{LabelAnalyzer}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "filtertok_tokenize_duration_seconds",
			Help:    "Time spent tokenizing a request body.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{LabelAnalyzer}),
	}

	if reg != nil {
		reg.MustRegister(m.requests, m.tokens, m.runes, m.duration)
	}
	return m
}

// ObserveTokenize records a successful tokenization.
func (m *TokenizeMetrics) ObserveTokenize(analyzer string, runes, tokens int, d time.Duration) {
	m.tokens.WithLabelValues(analyzer).Add(float64(tokens))
	m.runes.WithLabelValues(analyzer).Add(float64(runes))
	m.duration.WithLabelValues(analyzer).Observe(d.Seconds())
}

// IncRequest counts a finished request with its HTTP status code.
func (m *TokenizeMetrics) IncRequest(analyzer string, status int) {
	m.requests.WithLabelValues(analyzer, strconv.Itoa(status)).Inc()
}
